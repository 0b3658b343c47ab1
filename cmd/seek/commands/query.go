package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/app"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [text...]",
		Short: "Search the configured roots and print matching services",
		Long: "Search the configured roots and print matching services.\n\n" +
			"The words are joined with spaces. An empty query lists every service.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Query(strings.Join(args, " "), app.QueryOptions{
				SettingsOptions: c.settingsOptions(),
				Output:          c.v.GetString(keyOutput),
				Format:          c.v.GetString(keyFormat),
				Identifier:      c.v.GetString(keyIdentifier),
				Stdout:          cmd.OutOrStdout(),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringP(keyOutput, "o", "", "Write results to a file instead of stdout (env SEEK_OUTPUT, OUTPUT)")
	flags.StringP(keyFormat, "f", "ndjson", "Result format: ndjson, array or envelope (env SEEK_FORMAT)")
	flags.String(keyIdentifier, "", "Identifier echoed by the envelope format (env SEEK_IDENTIFIER, IDENTIFIER)")

	c.bind(keyOutput, flags, "SEEK_OUTPUT", "OUTPUT")
	c.bind(keyFormat, flags, "SEEK_FORMAT")
	c.bind(keyIdentifier, flags, "SEEK_IDENTIFIER", "IDENTIFIER")

	return cmd
}
