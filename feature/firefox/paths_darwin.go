//go:build darwin

package firefox

import (
	"os"
	"path/filepath"
)

// DefaultRoots returns the directories that hold profiles.ini for Firefox and Zen.
func DefaultRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	support := filepath.Join(home, "Library", "Application Support")
	return []string{
		filepath.Join(support, "Firefox"),
		filepath.Join(support, "zen"),
	}
}
