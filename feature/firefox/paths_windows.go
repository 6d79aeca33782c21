//go:build windows

package firefox

import (
	"os"
	"path/filepath"
)

// DefaultRoots returns the directories that hold profiles.ini for Firefox and Zen.
func DefaultRoots() []string {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return nil
	}
	return []string{
		filepath.Join(appData, "Mozilla", "Firefox"),
		filepath.Join(appData, "zen"),
	}
}
