// Package util holds small helpers shared across packages.
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading "~" or "~/" against the current user's
// home directory. Paths without a tilde prefix are returned unchanged,
// as is any path when the home directory cannot be determined.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
