package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cache of stable roots",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Empty the cache so the next query walks the stable roots again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			location, err := c.app.CleanCache(c.settingsOptions())
			if err != nil {
				return err
			}
			if location == "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "caching is not configured")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", location)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Walk the stable roots and overwrite the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.app.RebuildCache(c.settingsOptions())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "cached %d services\n", n)
			return nil
		},
	})

	return cmd
}
