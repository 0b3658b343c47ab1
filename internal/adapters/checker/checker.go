// Package checker classifies paths into traversal outcomes.
package checker

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"go.trai.ch/seek/internal/core/domain"
)

// Check is a single path predicate. Match reports whether path satisfies the criterion.
type Check struct {
	Name  string
	Match func(path string) bool
}

// Hidden matches paths whose final component starts with a dot, and paths of length one or less.
func Hidden() Check {
	return Check{
		Name: "hidden",
		Match: func(path string) bool {
			return len(path) <= 1 || strings.HasPrefix(domain.Stem(path), ".")
		},
	}
}

// Symlink matches entries whose own metadata reports a symbolic link.
// The link target is never inspected.
func Symlink() Check {
	return Check{
		Name: "symlink",
		Match: func(path string) bool {
			info, err := os.Lstat(path)
			if err != nil {
				return false
			}
			return info.Mode()&os.ModeSymlink != 0
		},
	}
}

// Ignore matches paths that are exact members of paths.
// Membership is exact: a child of an ignored path is not matched.
func Ignore(paths []string) Check {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[filepath.Clean(p)] = struct{}{}
	}
	return Check{
		Name: "ignore",
		Match: func(path string) bool {
			_, ok := set[filepath.Clean(path)]
			return ok
		},
	}
}

// IgnorePatterns matches paths against gitignore-style patterns.
// A pattern without an inner slash is tested against the base name. A pattern
// with one is tested against the full path: "Library/Caches" matches at any
// depth and "/opt/legacy" only at the filesystem root.
func IgnorePatterns(patterns []string) Check {
	var names, paths []string
	for _, p := range patterns {
		trimmed := strings.TrimSuffix(strings.TrimSpace(p), "/")
		if strings.Contains(trimmed, "/") {
			paths = append(paths, trimmed)
		} else {
			names = append(names, trimmed)
		}
	}

	nameMatcher := ignore.CompileIgnoreLines(names...)
	pathMatcher := ignore.CompileIgnoreLines(paths...)
	return Check{
		Name: "pattern",
		Match: func(path string) bool {
			if nameMatcher.MatchesPath(filepath.Base(path)) {
				return true
			}
			return len(paths) > 0 && pathMatcher.MatchesPath(filepath.ToSlash(filepath.Clean(path)))
		},
	}
}

// Bundle matches paths whose extension is one of extensions.
func Bundle(extensions []string) Check {
	exts := slices.Clone(extensions)
	return Check{
		Name: "bundle",
		Match: func(path string) bool {
			return slices.Contains(exts, domain.Extension(path))
		},
	}
}

// Chain is a flat, ordered list of terminal checks followed by the bundle check.
// It is safe for concurrent use as long as its checks are.
type Chain struct {
	terminal []Check
	bundle   Check
}

// New creates a Chain from explicit checks.
func New(bundle Check, terminal ...Check) *Chain {
	return &Chain{
		terminal: terminal,
		bundle:   bundle,
	}
}

// FromSettings builds the default chain for settings.
// Ignore and pattern checks are only added when they have something to match.
func FromSettings(settings *domain.Settings) *Chain {
	terminal := []Check{Hidden(), Symlink()}
	if len(settings.IgnorePaths) > 0 {
		terminal = append(terminal, Ignore(settings.IgnorePaths))
	}
	if len(settings.IgnorePatterns) > 0 {
		terminal = append(terminal, IgnorePatterns(settings.IgnorePatterns))
	}
	return New(Bundle(domain.BundleExtensions), terminal...)
}

// Classify evaluates the chain against path, short-circuiting on the first terminal match.
func (c *Chain) Classify(path string) domain.Outcome {
	for _, check := range c.terminal {
		if check.Match(path) {
			return domain.Unwanted
		}
	}
	if c.bundle.Match != nil && c.bundle.Match(path) {
		return domain.Bundle
	}
	return domain.Normal
}

// Terminal returns the names of the terminal checks in evaluation order.
func (c *Chain) Terminal() []string {
	names := make([]string, len(c.terminal))
	for i, check := range c.terminal {
		names[i] = check.Name
	}
	return names
}
