package firefox

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cookie-importer/core/fsutil"

	"github.com/spf13/afero"
	"github.com/go-ini/ini"
)

// CookieDBName is the cookie database file inside a profile directory.
const CookieDBName = "cookies.sqlite"

// ErrProfileNotFound is returned when a profile name matches nothing.
var ErrProfileNotFound = errors.New("profile not found")

// Profile is one entry of a profiles.ini file.
type Profile struct {
	// Name is the display name, or the directory name when unset.
	Name string `json:"name"`
	// Path is the absolute profile directory.
	Path string `json:"path"`
	// Root is the directory holding profiles.ini.
	Root string `json:"root"`
	// Default is set for the profile marked Default=1.
	Default bool `json:"default"`
	// HasCookies tells whether cookies.sqlite exists in Path.
	HasCookies bool `json:"has_cookies"`
}

// CookieDB returns the cookie database path of p.
func (p Profile) CookieDB() string {
	return filepath.Join(p.Path, CookieDBName)
}

// DiscoverProfiles reads profiles.ini under every root. Roots without a
// readable profiles.ini are skipped. Relative paths are resolved against
// their root.
func DiscoverProfiles(fsys afero.Fs, roots []string) []Profile {
	var out []Profile
	for _, root := range roots {
		data, err := afero.ReadFile(fsys, filepath.Join(root, "profiles.ini"))
		if err != nil {
			continue
		}
		cfg, err := ini.Load(data)
		if err != nil {
			continue
		}

		for _, sec := range cfg.Sections() {
			if !strings.HasPrefix(sec.Name(), "Profile") {
				continue
			}
			pathStr := filepath.FromSlash(sec.Key("Path").String())
			if pathStr == "" {
				continue
			}
			if sec.Key("IsRelative").String() == "1" {
				pathStr = filepath.Join(root, pathStr)
			}

			name := sec.Key("Name").String()
			if name == "" {
				name = filepath.Base(pathStr)
			}

			hasCookies, isDir, _ := fsutil.Exists(fsys, filepath.Join(pathStr, CookieDBName))
			out = append(out, Profile{
				Name:       name,
				Path:       pathStr,
				Root:       root,
				Default:    sec.Key("Default").String() == "1",
				HasCookies: hasCookies && !isDir,
			})
		}
	}
	return out
}

// ResolveProfile turns a profile argument into a profile directory. An
// existing directory is returned as is; anything else is matched against the
// profile names and directory names found under roots.
func ResolveProfile(fsys afero.Fs, arg string, roots []string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("%w: empty profile", ErrProfileNotFound)
	}

	if ok, isDir, err := fsutil.Exists(fsys, arg); err == nil && ok && isDir {
		return arg, nil
	}

	for _, p := range DiscoverProfiles(fsys, roots) {
		if p.Name == arg || filepath.Base(p.Path) == arg {
			return p.Path, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrProfileNotFound, arg)
}
