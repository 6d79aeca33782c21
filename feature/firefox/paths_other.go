//go:build !linux && !darwin && !windows

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
	return []string{
		filepath.Join(home, ".mozilla", "firefox"),
		filepath.Join(home, ".zen"),
	}
}
