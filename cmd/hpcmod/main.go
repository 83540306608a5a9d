// Package main is the entry of the application.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/hpcmod/hpcmod/pkg/cmdutil"
	"github.com/hpcmod/hpcmod/pkg/commands"
	"github.com/hpcmod/hpcmod/pkg/commands/module"
	"github.com/hpcmod/hpcmod/pkg/errdefs"
	"github.com/hpcmod/hpcmod/pkg/xlog"
)

const (
	appName = "hpcmod"
)

func main() {
	var (
		logLevel string
		logFile  string
	)
	app := cli.Command{
		Name:                  appName,
		Usage:                 "Install container images as environment modules",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       `log level, oneof ["debug", "info", "warn", "error"]`,
				Sources:     cli.EnvVars("HPCMOD_LOG_LEVEL"),
				Value:       "info",
				Destination: &logLevel,
				Persistent:  true,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "write logs to this file in addition to stderr",
				Sources:     cli.EnvVars("HPCMOD_LOG_FILE"),
				Destination: &logFile,
				Persistent:  true,
			},
		},
		Before: func(_ context.Context, _ *cli.Command) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return errdefs.Newf(errdefs.ErrInvalidParameter, "unknown log level %q", logLevel)
			}
			c := xlog.NewConfig()
			c.Level = level
			c.Path = logFile
			xlog.SetDefault(xlog.New(c))
			return nil
		},
		Commands: []*cli.Command{
			commands.NewVersionCommand().ToCLI(),
			commands.NewParseCommand().ToCLI(),
			module.New().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdutil.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
