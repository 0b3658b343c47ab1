package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

const globMeta = "*?["

// ExpandPath resolves a leading "~" to the home directory and substitutes
// $VAR and ${VAR} references. Unset variables expand to the empty string.
// A non-empty result is cleaned.
func ExpandPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return "", nil
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrPathExpansionFailed.Error()), "path", p)
		}
		p = home + p[1:]
	}

	if strings.Contains(p, "$") {
		expanded, err := shell.Expand(p, os.Getenv)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrPathExpansionFailed.Error()), "path", p)
		}
		p = expanded
	}

	if p == "" {
		return "", nil
	}
	return filepath.Clean(p), nil
}

// IsGlob reports whether p contains glob metacharacters.
func IsGlob(p string) bool {
	return strings.ContainsAny(p, globMeta)
}
