// Package module holds the commands operating on installed container
// modules.
package module

import (
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/hpcmod/hpcmod/pkg/container"
	"github.com/hpcmod/hpcmod/pkg/container/apptainer"
	"github.com/hpcmod/hpcmod/pkg/container/podman"
	"github.com/hpcmod/hpcmod/pkg/errdefs"
	"github.com/hpcmod/hpcmod/pkg/settings"
)

// New creates a new ModuleCommand.
func New() *ModuleCommand {
	return &ModuleCommand{
		Tech: "apptainer",
	}
}

// ModuleCommand is a command for installed modules and retains the common
// flags for subcommands.
type ModuleCommand struct {
	SettingsFile string
	Tech         string
}

// ToCLI transforms to a *cli.Command.
func (c *ModuleCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:    "module",
		Aliases: []string{"mod"},
		Usage:   "Operate on installed container modules",
		Flags:   c.Flags(),
		Commands: []*cli.Command{
			NewTagsCommand(c).ToCLI(),
			NewEnvCommand(c).ToCLI(),
			NewFeaturesCommand(c).ToCLI(),
		},
	}
}

// Flags defines the flags related to the current command.
func (c *ModuleCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "settings-file",
			Usage:       "path to the site settings YAML file",
			Sources:     cli.EnvVars("HPCMOD_SETTINGS_FILE"),
			Destination: &c.SettingsFile,
			Value:       c.SettingsFile,
			Persistent:  true,
		},
		&cli.StringFlag{
			Name:        "container-tech",
			Usage:       `container technology, oneof ["apptainer", "podman"]`,
			Sources:     cli.EnvVars("HPCMOD_CONTAINER_TECH"),
			Destination: &c.Tech,
			Value:       c.Tech,
			Persistent:  true,
		},
	}
}

// NewTechnology returns the container technology selected by the flags,
// with settings loaded when a settings file was given.
func (c *ModuleCommand) NewTechnology() (container.Technology, error) {
	fsys := afero.NewOsFs()
	s := settings.New()
	if c.SettingsFile != "" {
		loaded, err := settings.Load(fsys, c.SettingsFile)
		if err != nil {
			return nil, err
		}
		s = loaded
	}
	switch c.Tech {
	case "apptainer":
		return apptainer.New(s), nil
	case "podman":
		return podman.New(s), nil
	}
	return nil, errdefs.Newf(errdefs.ErrInvalidParameter, "unknown container technology %q", c.Tech)
}
