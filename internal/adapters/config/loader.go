// Package config provides the settings loader for seek.
package config

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader reads a YAML (or JSON) settings file and expands every path in it.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new settings loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the settings file at path.
// An absent internal group leaves no stable roots, so every root is walked fresh.
// The flat paths list is always treated as volatile.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	if path == "" {
		return nil, domain.ErrSettingsPathMissing
	}

	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.build(&file)
}

func (l *Loader) build(file *SettingsFile) (*domain.Settings, error) {
	ignorePaths, err := expandAll(file.Configurable.IgnorePaths.Values)
	if err != nil {
		return nil, err
	}

	settings := &domain.Settings{
		IgnorePaths:    ignorePaths,
		IgnorePatterns: slices.Clone(file.Configurable.IgnorePatterns.Values),
		NameOverrides:  make(map[string]string, len(file.Configurable.NameOverrides)),
	}
	for k, v := range file.Configurable.NameOverrides {
		settings.NameOverrides[k] = v
	}

	var volatile []string
	if file.Internal != nil {
		if settings.Cached, err = l.resolveRoots(file.Internal.Cached); err != nil {
			return nil, err
		}
		volatile = file.Internal.Updated
	}
	volatile = append(slices.Clone(volatile), file.Paths...)
	if settings.Updated, err = l.resolveRoots(volatile); err != nil {
		return nil, err
	}

	if settings.CacheFile, err = ExpandPath(file.Cache.File); err != nil {
		return nil, err
	}
	if settings.CacheDir, err = ExpandPath(file.Cache.Dir); err != nil {
		return nil, err
	}

	return settings, nil
}

// resolveRoots expands each root and globs the ones that contain metacharacters.
// A glob without matches is dropped. A plain root is kept even when it does not
// exist; the walker treats it as empty. Duplicates keep their first position.
func (l *Loader) resolveRoots(roots []string) ([]string, error) {
	var resolved []string
	seen := make(map[string]bool, len(roots))
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			resolved = append(resolved, p)
		}
	}

	for _, root := range roots {
		expanded, err := ExpandPath(root)
		if err != nil {
			return nil, err
		}
		if expanded == "" {
			l.debug("dropping empty root", "root", root)
			continue
		}
		if !IsGlob(expanded) {
			add(expanded)
			continue
		}

		matches, err := filepath.Glob(expanded)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPathExpansionFailed.Error()), "path", root)
		}
		if len(matches) == 0 {
			l.debug("root pattern matched nothing", "pattern", expanded)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return resolved, nil
}

func expandAll(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		expanded, err := ExpandPath(p)
		if err != nil {
			return nil, err
		}
		if expanded != "" {
			out = append(out, expanded)
		}
	}
	return out, nil
}

func (l *Loader) debug(msg string, args ...any) {
	if l.Logger != nil {
		l.Logger.Debug(msg, args...)
	}
}
