package domain

import "go.trai.ch/zerr"

var (
	// ErrSettingsPathMissing is returned when no settings file was given by flag or environment.
	ErrSettingsPathMissing = zerr.New("settings path not provided, set --settings or SETTINGS")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrPathExpansionFailed is returned when a configured path cannot be expanded.
	ErrPathExpansionFailed = zerr.New("failed to expand configured path")

	// ErrUnknownFormat is returned when the requested output format is not supported.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'ndjson', 'array' or 'envelope'")

	// ErrDirectoryReadFailed is returned when a directory listing fails during traversal.
	ErrDirectoryReadFailed = zerr.New("failed to read directory")

	// ErrCacheOpenFailed is returned when the cache file cannot be opened or created.
	ErrCacheOpenFailed = zerr.New("failed to open cache file")

	// ErrCacheReadFailed is returned when the cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrCacheCorrupt is returned when a cache frame is truncated or cannot be decoded.
	ErrCacheCorrupt = zerr.New("cache file is corrupt")

	// ErrCacheEncodeFailed is returned when a record cannot be encoded for the cache.
	ErrCacheEncodeFailed = zerr.New("failed to encode cache record")

	// ErrRecordTooLarge is returned when an encoded record does not fit the length prefix.
	ErrRecordTooLarge = zerr.New("cache record exceeds maximum frame size")

	// ErrOutputWriteFailed is returned when results cannot be written to the output sink.
	ErrOutputWriteFailed = zerr.New("failed to write results")

	// ErrOutputOpenFailed is returned when the output file cannot be created.
	ErrOutputOpenFailed = zerr.New("failed to open output file")

	// ErrLaunchFailed is returned when the host open command fails.
	ErrLaunchFailed = zerr.New("failed to launch service")

	// ErrEmptyID is returned when open or reveal is invoked without an id.
	ErrEmptyID = zerr.New("service id is empty")
)
