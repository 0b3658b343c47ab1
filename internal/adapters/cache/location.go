package cache

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/seek/internal/core/domain"
)

// Location returns the cache file for settings.
// An explicit CacheFile wins. Otherwise the file lives in CacheDir under a name
// derived from everything that shapes the cached records, so editing the
// stable roots, the ignore rules or the name overrides never serves a stale
// listing. An empty result disables caching.
func Location(settings *domain.Settings) string {
	if settings == nil {
		return ""
	}
	if settings.CacheFile != "" {
		return filepath.Clean(settings.CacheFile)
	}
	if settings.CacheDir == "" {
		return ""
	}
	name := domain.CacheFilePrefix + Fingerprint(settings) + domain.CacheFileExt
	return filepath.Join(settings.CacheDir, name)
}

// Fingerprint hashes the settings that affect what the stable roots produce,
// including the overrides baked into cached titles.
// Order within each list does not matter.
func Fingerprint(settings *domain.Settings) string {
	hasher := xxhash.New()

	hashSection(hasher, settings.Cached)
	hashSection(hasher, settings.IgnorePaths)
	hashSection(hasher, settings.IgnorePatterns)
	hashSection(hasher, overridePairs(settings.NameOverrides))

	return fmt.Sprintf("%016x", hasher.Sum64())
}

func overridePairs(overrides map[string]string) []string {
	pairs := make([]string, 0, len(overrides))
	for stem, name := range overrides {
		pairs = append(pairs, stem+"\x00"+name)
	}
	return pairs
}

func hashSection(hasher *xxhash.Digest, values []string) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	for _, v := range sorted {
		_, _ = hasher.WriteString(v)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator
}
