package module

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hpcmod/hpcmod/pkg/cmdutil"
)

// NewTagsCommand creates a new TagsCommand.
func NewTagsCommand(parent *ModuleCommand) *TagsCommand {
	return &TagsCommand{parent: parent}
}

// TagsCommand lists the installed tags of a module.
type TagsCommand struct {
	parent *ModuleCommand
}

// ToCLI transforms to a *cli.Command.
func (c *TagsCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "List installed tags of a module",
		ArgsUsage: "<name>",
		Before:    cli.BeforeFunc(cmdutil.ExactArgs(1)),
		Action:    c.Run,
	}
}

// Run implements *cli.Command Action function.
func (c *TagsCommand) Run(_ context.Context, cmd *cli.Command) error {
	tech, err := c.parent.NewTechnology()
	if err != nil {
		return err
	}
	tags, err := tech.InstalledTags(cmd.Args().First())
	if err != nil {
		return err
	}
	for _, tag := range tags {
		cmdutil.Fprintf(cmd.Writer, "%s\n", tag)
	}
	return nil
}
