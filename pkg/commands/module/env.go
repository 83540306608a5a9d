package module

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/urfave/cli/v3"

	"github.com/hpcmod/hpcmod/pkg/cmdutil"
	"github.com/hpcmod/hpcmod/pkg/container"
)

// NewEnvCommand creates a new EnvCommand.
func NewEnvCommand(parent *ModuleCommand) *EnvCommand {
	return &EnvCommand{parent: parent}
}

// EnvCommand resolves the environment file of an installed module.
type EnvCommand struct {
	parent *ModuleCommand
}

// ToCLI transforms to a *cli.Command.
func (c *EnvCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "env",
		Usage:     "Show the environment file path of an installed module",
		ArgsUsage: "<name[:tag]>",
		Before:    cli.BeforeFunc(cmdutil.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *EnvCommand) Run(_ context.Context, cmd *cli.Command) error {
	tech, err := c.parent.NewTechnology()
	if err != nil {
		return err
	}
	moduleName := cmd.Args().First()

	resolved, err := tech.GuessTag(moduleName, true)
	if err != nil {
		return err
	}
	if resolved == "" {
		// several tags installed, let the user pick one
		resolved, err = selectTag(tech, moduleName)
		if err != nil {
			return err
		}
	}

	path, err := tech.EnvironmentFile(resolved)
	if err != nil {
		return err
	}
	cmdutil.Fprintf(cmd.Writer, "%s\n", path)
	return nil
}

func selectTag(tech container.Technology, moduleName string) (string, error) {
	tags, err := tech.InstalledTags(moduleName)
	if err != nil {
		return "", err
	}
	prompt := promptui.Select{
		Label: fmt.Sprintf("Multiple tags installed for %s, choose one", moduleName),
		Items: tags,
	}
	_, tag, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return moduleName + ":" + tag, nil
}
