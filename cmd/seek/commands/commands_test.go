package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seek/cmd/seek/commands"
	"go.trai.ch/seek/internal/app"
)

// recorder captures the calls made by the CLI.
type recorder struct {
	text     string
	query    app.QueryOptions
	settings app.SettingsOptions
	opened   string
	revealed string
	json     bool
	verbose  bool

	location string
	rebuilt  int
	err      error
}

func (r *recorder) Query(text string, opts app.QueryOptions) error {
	r.text = text
	r.query = opts
	return r.err
}

func (r *recorder) Open(_ context.Context, id string) error {
	r.opened = id
	return r.err
}

func (r *recorder) Reveal(_ context.Context, id string) error {
	r.revealed = id
	return r.err
}

func (r *recorder) CleanCache(opts app.SettingsOptions) (string, error) {
	r.settings = opts
	return r.location, r.err
}

func (r *recorder) RebuildCache(opts app.SettingsOptions) (int, error) {
	r.settings = opts
	return r.rebuilt, r.err
}

func (r *recorder) ConfigureLogging(json, verbose bool) {
	r.json = json
	r.verbose = verbose
}

func execute(t *testing.T, r *recorder, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(r)
	out := new(bytes.Buffer)
	cli.SetArgs(args)
	cli.SetOutput(out, new(bytes.Buffer))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestQuery_JoinsWords(t *testing.T) {
	r := &recorder{}

	_, err := execute(t, r, "query", "activity", "mon")
	require.NoError(t, err)

	assert.Equal(t, "activity mon", r.text)
	assert.Equal(t, "ndjson", r.query.Format)
	assert.NotNil(t, r.query.Stdout)
}

func TestQuery_Flags(t *testing.T) {
	r := &recorder{}

	_, err := execute(t, r,
		"-s", "/etc/seek.yaml", "--cache", "/tmp/s.bin",
		"query", "-o", "out.json", "-f", "envelope", "--identifier", "req-1", "saf",
	)
	require.NoError(t, err)

	assert.Equal(t, app.SettingsOptions{SettingsPath: "/etc/seek.yaml", CacheFile: "/tmp/s.bin"}, r.query.SettingsOptions)
	assert.Equal(t, "out.json", r.query.Output)
	assert.Equal(t, "envelope", r.query.Format)
	assert.Equal(t, "req-1", r.query.Identifier)
}

func TestQuery_Environment(t *testing.T) {
	t.Setenv("SETTINGS", "/env/settings.yaml")
	t.Setenv("OUTPUT", "/env/out.json")
	t.Setenv("SEEK_FORMAT", "array")
	t.Setenv("IDENTIFIER", "env-id")
	t.Setenv("SEEK_CACHE", "/env/cache.bin")

	r := &recorder{}
	_, err := execute(t, r, "query", "x")
	require.NoError(t, err)

	assert.Equal(t, "/env/settings.yaml", r.query.SettingsPath)
	assert.Equal(t, "/env/cache.bin", r.query.CacheFile)
	assert.Equal(t, "/env/out.json", r.query.Output)
	assert.Equal(t, "array", r.query.Format)
	assert.Equal(t, "env-id", r.query.Identifier)
}

func TestQuery_PrefixedEnvironmentWins(t *testing.T) {
	t.Setenv("SEEK_SETTINGS", "/seek/settings.yaml")
	t.Setenv("SETTINGS", "/plain/settings.yaml")

	r := &recorder{}
	_, err := execute(t, r, "query")
	require.NoError(t, err)

	assert.Equal(t, "/seek/settings.yaml", r.query.SettingsPath)
}

func TestQuery_FlagBeatsEnvironment(t *testing.T) {
	t.Setenv("SETTINGS", "/env/settings.yaml")

	r := &recorder{}
	_, err := execute(t, r, "--settings", "/flag/settings.yaml", "query")
	require.NoError(t, err)

	assert.Equal(t, "/flag/settings.yaml", r.query.SettingsPath)
}

func TestConfigureLogging(t *testing.T) {
	r := &recorder{}

	_, err := execute(t, r, "-v", "--log-json", "query")
	require.NoError(t, err)

	assert.True(t, r.verbose)
	assert.True(t, r.json)
}

func TestVerboseShorthand(t *testing.T) {
	r := &recorder{}

	require.NotPanics(t, func() {
		_, err := execute(t, r, "query", "saf")
		require.NoError(t, err)
	})
	assert.False(t, r.verbose)

	require.NotPanics(t, func() {
		_, err := execute(t, r, "-v", "query", "saf")
		require.NoError(t, err)
	})
	assert.True(t, r.verbose)
	assert.Equal(t, "saf", r.text)

	out, err := execute(t, &recorder{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "seek version dev (commit: none, date: unknown)\n", out)
}

func TestOpenAndReveal(t *testing.T) {
	r := &recorder{}

	_, err := execute(t, r, "open", "/Applications/Safari.app")
	require.NoError(t, err)
	assert.Equal(t, "/Applications/Safari.app", r.opened)

	_, err = execute(t, r, "reveal", "/Applications/Notes.app")
	require.NoError(t, err)
	assert.Equal(t, "/Applications/Notes.app", r.revealed)

	_, err = execute(t, r, "open")
	require.Error(t, err)
}

func TestCacheClean(t *testing.T) {
	r := &recorder{location: "/tmp/services.bin"}

	out, err := execute(t, r, "-s", "s.yaml", "cache", "clean")
	require.NoError(t, err)
	assert.Equal(t, "cleared /tmp/services.bin\n", out)
	assert.Equal(t, "s.yaml", r.settings.SettingsPath)

	out, err = execute(t, &recorder{}, "cache", "clean")
	require.NoError(t, err)
	assert.Equal(t, "caching is not configured\n", out)
}

func TestCacheRebuild(t *testing.T) {
	r := &recorder{rebuilt: 12}

	out, err := execute(t, r, "cache", "rebuild")
	require.NoError(t, err)
	assert.Equal(t, "cached 12 services\n", out)

	_, err = execute(t, &recorder{err: errors.New("boom")}, "cache", "rebuild")
	require.EqualError(t, err, "boom")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, &recorder{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "seek version dev (commit: none, date: unknown)\n", out)
}
