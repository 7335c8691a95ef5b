package command

import (
	"github.com/spf13/cobra"
)

// NewSubcommandGroup returns a group command that only dispatches to its
// subcommands, printing usage when called bare
func NewSubcommandGroup(use string, subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use: use,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(subcommands...)

	return cmd
}
