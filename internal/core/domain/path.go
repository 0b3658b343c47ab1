package domain

import (
	"path/filepath"
	"strings"
)

// Bundle extensions, without the leading dot.
const (
	AppExtension      = "app"
	PrefPaneExtension = "prefPane"
)

// BundleExtensions lists every extension treated as an opaque bundle.
var BundleExtensions = []string{AppExtension, PrefPaneExtension}

// OverrideExtension marks the bundle kind whose stems are looked up in Settings.NameOverrides.
const OverrideExtension = PrefPaneExtension

// Extension returns the extension of the final path component without the dot.
// A leading dot does not start an extension, so ".hidden" has none.
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx+1:]
}

// Stem returns the final path component with its extension removed.
func Stem(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return base
	}
	return base[:idx]
}
