// Package commands implements the CLI commands for seek.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/build"
)

// Keys of the runtime settings resolved from flags and the environment.
const (
	keySettings   = "settings"
	keyCache      = "cache"
	keyOutput     = "output"
	keyFormat     = "format"
	keyIdentifier = "identifier"
	keyVerbose    = "verbose"
	keyLogJSON    = "log-json"
)

// CLI represents the command line interface for seek.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	v       *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	Query(text string, opts app.QueryOptions) error
	Open(ctx context.Context, id string) error
	Reveal(ctx context.Context, id string) error
	CleanCache(opts app.SettingsOptions) (string, error)
	RebuildCache(opts app.SettingsOptions) (int, error)
	ConfigureLogging(json, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "seek",
		Short:         "Find and launch installed applications",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	// Persistent flags come first so that -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringP(keySettings, "s", "", "Path to the settings file (env SEEK_SETTINGS, SETTINGS)")
	flags.String(keyCache, "", "Override the cache file location (env SEEK_CACHE)")
	flags.BoolP(keyVerbose, "v", false, "Enable debug logging")
	flags.Bool(keyLogJSON, false, "Write logs as JSON")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		v:       viper.New(),
	}

	c.bind(keySettings, flags, "SEEK_SETTINGS", "SETTINGS")
	c.bind(keyCache, flags, "SEEK_CACHE")
	c.bind(keyVerbose, flags)
	c.bind(keyLogJSON, flags)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.ConfigureLogging(c.v.GetBool(keyLogJSON), c.v.GetBool(keyVerbose))
	}

	rootCmd.AddCommand(c.newQueryCmd())
	rootCmd.AddCommand(c.newOpenCmd())
	rootCmd.AddCommand(c.newRevealCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// bind resolves key from the named flag first and then from envs, in order.
func (c *CLI) bind(key string, flags *pflag.FlagSet, envs ...string) {
	_ = c.v.BindPFlag(key, flags.Lookup(key))
	if len(envs) > 0 {
		_ = c.v.BindEnv(append([]string{key}, envs...)...)
	}
}

// settingsOptions returns the settings location shared by every command.
func (c *CLI) settingsOptions() app.SettingsOptions {
	return app.SettingsOptions{
		SettingsPath: c.v.GetString(keySettings),
		CacheFile:    c.v.GetString(keyCache),
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
