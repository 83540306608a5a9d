package commands

import (
	"context"
	"encoding/json"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hpcmod/hpcmod/pkg/cmdutil"
	"github.com/hpcmod/hpcmod/pkg/container/name"
)

// NewParseCommand returns a parse command.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		Format: "text",
	}
}

// ParseCommand parses a container identifier into named parts.
type ParseCommand struct {
	Format string
}

// ToCLI returns a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse a container identifier into named parts",
		ArgsUsage: "<reference>",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdutil.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *ParseCommand) Run(_ context.Context, cmd *cli.Command) error {
	parsed, err := name.Parse(cmd.Args().First())
	if err != nil {
		return err
	}
	switch c.Format {
	case "json":
		enc := json.NewEncoder(cmd.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	case "yaml", "yml":
		return yaml.NewEncoder(cmd.Writer).Encode(parsed)
	}
	cmdutil.Fprintf(cmd.Writer, "registry:   %s\n", parsed.Registry)
	cmdutil.Fprintf(cmd.Writer, "repository: %s\n", parsed.Repository)
	cmdutil.Fprintf(cmd.Writer, "tool:       %s\n", parsed.Tool)
	cmdutil.Fprintf(cmd.Writer, "version:    %s\n", parsed.Version)
	cmdutil.Fprintf(cmd.Writer, "digest:     %s\n", parsed.Digest)
	return nil
}

// Flags returns a list of cli flags of the command.
func (c *ParseCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       c.Format,
			Destination: &c.Format,
		},
	}
}
