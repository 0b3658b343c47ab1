package domain

// Settings is the fully resolved configuration of one query.
// It is built once at startup and must not be mutated afterwards.
type Settings struct {
	// IgnorePaths are excluded from traversal by exact path match.
	IgnorePaths []string
	// IgnorePatterns are gitignore-style patterns matched against base names.
	IgnorePatterns []string
	// Cached are the stable roots whose walk output is persisted.
	Cached []string
	// Updated are the volatile roots walked on every query.
	Updated []string
	// NameOverrides maps opaque bundle stems to display names.
	NameOverrides map[string]string
	// CacheFile is an explicit cache location. It takes precedence over CacheDir.
	CacheFile string
	// CacheDir holds fingerprinted cache files when CacheFile is empty.
	// Caching is disabled when both are empty.
	CacheDir string
}
