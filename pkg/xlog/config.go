package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration.
func NewConfig() Config {
	return Config{
		Level:      slog.LevelInfo,
		Format:     "text",
		Writer:     os.Stderr,
		MaxSize:    30,
		MaxAge:     0,
		MaxBackups: 0,
		Compress:   false,
	}
}

// Config describes how log records are formatted and where they go.
type Config struct {
	// Level is the minimum level emitted, defaults to LevelInfo.
	Level slog.Level
	// Format is the output format, one of ["text", "json"].
	Format string
	// Writer is the destination for log output, defaults to os.Stderr.
	Writer io.Writer

	// Path is a log file path. Empty means no file output.
	Path string
	// MaxSize is the maximum size of a single log file in MB before it is
	// rotated, defaults to 30 MB.
	MaxSize int
	// MaxAge is the maximum number of days to retain rotated files.
	MaxAge int
	// MaxBackups is the maximum number of rotated files to retain.
	MaxBackups int
	// Compress enables compression of rotated files.
	Compress bool
}

// BuildHandler creates a new slog.Handler backed by a dynamic level so the
// logger level can be changed after construction.
func (c *Config) BuildHandler() (slog.Handler, *slog.LevelVar) {
	leveler := &slog.LevelVar{}
	leveler.Set(c.Level)
	opts := &slog.HandlerOptions{Level: leveler}

	writer := c.Writer
	if writer == nil {
		writer = os.Stderr
	}
	if fw := c.buildFileWriter(); fw != nil {
		writer = io.MultiWriter(writer, fw)
	}

	if c.Format == "json" {
		return slog.NewJSONHandler(writer, opts), leveler
	}
	return slog.NewTextHandler(writer, opts), leveler
}

func (c *Config) buildFileWriter() io.Writer {
	if c.Path == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   c.Path,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxAge,
		MaxBackups: c.MaxBackups,
		Compress:   c.Compress,
	}
}
