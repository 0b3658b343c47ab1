package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open a service with the default handler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Open(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id>",
		Short: "Show a service in its containing folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Reveal(cmd.Context(), args[0])
		},
	}
}
