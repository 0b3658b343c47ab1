// Package app implements the application layer for seek.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/seek/internal/adapters/checker" //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/adapters/sink"    //nolint:depguard // Wired in app layer
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/seek/internal/engine/query"
	"go.trai.ch/zerr"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

// WalkerFactory builds the walker for one settings value.
type WalkerFactory func(settings *domain.Settings) ports.Walker

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	caches       ports.CacheProvider
	launcher     ports.Launcher
	logger       ports.Logger
	newWalker    WalkerFactory
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	caches ports.CacheProvider,
	launcher ports.Launcher,
	log ports.Logger,
) *App {
	a := &App{
		configLoader: loader,
		caches:       caches,
		launcher:     launcher,
		logger:       log,
	}
	a.newWalker = a.defaultWalker
	return a
}

// WithWalkerFactory replaces the filesystem walker. Used for testing.
func (a *App) WithWalkerFactory(fn WalkerFactory) *App {
	a.newWalker = fn
	return a
}

func (a *App) defaultWalker(settings *domain.Settings) ports.Walker {
	return fs.NewWalker(checker.FromSettings(settings), a.logger)
}

// SettingsOptions locate the settings and the cache.
type SettingsOptions struct {
	// SettingsPath is the settings file.
	SettingsPath string
	// CacheFile overrides the cache location from the settings file.
	CacheFile string
}

// QueryOptions configuration for the Query method.
type QueryOptions struct {
	SettingsOptions
	// Output is a file receiving the results. Empty means Stdout.
	Output string
	// Format is the result framing: ndjson, array or envelope.
	Format string
	// Identifier is echoed by the envelope format.
	Identifier string
	// Stdout receives the results when Output is empty.
	Stdout io.Writer
}

// ConfigureLogging switches the logger to JSON output and/or debug level when
// the logger supports it.
func (a *App) ConfigureLogging(json, verbose bool) {
	l, ok := a.logger.(interface {
		SetJSON(enable bool)
		SetVerbose(enable bool)
	})
	if !ok {
		return
	}
	l.SetJSON(json)
	l.SetVerbose(verbose)
}

// Query searches the configured roots for text and writes the matches.
// Only configuration and output failures are returned.
func (a *App) Query(text string, opts QueryOptions) (err error) {
	format, err := sink.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	settings, err := a.loadSettings(opts.SettingsOptions)
	if err != nil {
		return err
	}

	cache := a.caches.Open(settings)
	defer a.closeCache(cache)

	services := query.New(settings, a.newWalker(settings), cache, a.logger).Search(text)

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	w, err := sink.Open(opts.Output, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, domain.ErrOutputWriteFailed.Error())
		}
	}()

	return sink.New(w, format, opts.Identifier).Write(services)
}

// Open launches the service with the given id.
func (a *App) Open(ctx context.Context, id string) error {
	return a.launcher.Launch(ctx, id, false)
}

// Reveal shows the service with the given id in its containing folder.
func (a *App) Reveal(ctx context.Context, id string) error {
	return a.launcher.Launch(ctx, id, true)
}

// CleanCache empties the stable cache so that the next query walks again.
// It returns the cleared location, or "" when caching is not configured.
func (a *App) CleanCache(opts SettingsOptions) (string, error) {
	settings, err := a.loadSettings(opts)
	if err != nil {
		return "", err
	}

	cache := a.caches.Open(settings)
	defer a.closeCache(cache)

	if err := cache.Clear(); err != nil {
		return "", err
	}
	return cache.Location(), nil
}

// RebuildCache walks the stable roots and overwrites the cache.
// It returns the number of cached services.
func (a *App) RebuildCache(opts SettingsOptions) (int, error) {
	settings, err := a.loadSettings(opts)
	if err != nil {
		return 0, err
	}

	cache := a.caches.Open(settings)
	defer a.closeCache(cache)

	services, err := query.New(settings, a.newWalker(settings), cache, a.logger).Rebuild()
	if err != nil {
		return 0, err
	}
	return len(services), nil
}

func (a *App) loadSettings(opts SettingsOptions) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(opts.SettingsPath)
	if err != nil {
		return nil, err
	}

	if opts.CacheFile != "" {
		if settings.CacheFile, err = config.ExpandPath(opts.CacheFile); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

func (a *App) closeCache(cache ports.ServiceCache) {
	if err := cache.Close(); err != nil {
		a.logger.Warn("failed to close cache", "path", cache.Location(), "error", err)
	}
}
