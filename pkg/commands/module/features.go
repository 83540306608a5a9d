package module

import (
	"context"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v3"

	"github.com/hpcmod/hpcmod/pkg/cmdutil"
	"github.com/hpcmod/hpcmod/pkg/errdefs"
)

// NewFeaturesCommand creates a new FeaturesCommand.
func NewFeaturesCommand(parent *ModuleCommand) *FeaturesCommand {
	return &FeaturesCommand{parent: parent}
}

// FeaturesCommand resolves container features against the site settings.
// Declared features come from --request flags, positional args are extra
// runtime flags layered beneath them.
type FeaturesCommand struct {
	parent   *ModuleCommand
	Requests []string
}

// ToCLI transforms to a *cli.Command.
func (c *FeaturesCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "features",
		Usage:     "Resolve container features against the site settings",
		ArgsUsage: "[extra]...",
		Flags:     c.Flags(),
		Action:    c.Run,
	}
}

// Flags returns a list of cli flags of the command.
func (c *FeaturesCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "request",
			Aliases:     []string{"r"},
			Usage:       "declared feature as key=value, may be repeated",
			Destination: &c.Requests,
			Value:       c.Requests,
		},
	}
}

// Run implements *cli.Command Action function.
func (c *FeaturesCommand) Run(_ context.Context, cmd *cli.Command) error {
	tech, err := c.parent.NewTechnology()
	if err != nil {
		return err
	}

	declared := map[string]any{}
	for _, request := range c.Requests {
		key, raw, found := strings.Cut(request, "=")
		if !found || key == "" {
			return errdefs.Newf(errdefs.ErrInvalidParameter, "request %q is not of the form key=value", request)
		}
		if value, err := cast.ToBoolE(raw); err == nil {
			declared[key] = value
		} else {
			declared[key] = raw
		}
	}

	resolved := tech.ResolveFeatures(declared, cmd.Args().Slice())
	keys := lo.Keys(resolved)
	sort.Strings(keys)
	for _, key := range keys {
		cmdutil.Fprintf(cmd.Writer, "%s = %s\n", key, cast.ToString(resolved[key]))
	}
	return nil
}
