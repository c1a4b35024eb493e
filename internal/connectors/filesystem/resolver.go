package filesystem

import (
	"path/filepath"
	"strings"
)

// supportedExtensions lists the plain-text extensions that participate in
// indexing. Everything else is skipped silently.
var supportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".rst":      true,
	".py":       true,
	".go":       true,
}

// IsSupported reports whether the file at path has a recognised
// plain-text extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return supportedExtensions[ext]
}

// SupportedExtensions returns the recognised extensions, for help text.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	return exts
}
