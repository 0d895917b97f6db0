package app

import (
	"path/filepath"
	"strings"
)

// DefaultDisplayName derives a fallback display name from a torrent file
// path: the base filename without its .torrent extension.
func DefaultDisplayName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, ".torrent")
}
