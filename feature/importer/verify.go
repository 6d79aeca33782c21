package importer

import (
	"context"
	"path/filepath"

	"cookie-importer/core/fsutil"
	"cookie-importer/feature/firefox"
)

// Verification describes the state of a profile's cookie store.
type Verification struct {
	Profile  string `json:"profile"`
	Database string `json:"database"`
	Rows     int64  `json:"rows"`
}

// Verify opens the store of profile read-only, checks its schema and counts
// its rows. It never writes.
func (s *Service) Verify(ctx context.Context, profile string) (*Verification, error) {
	if profile == "" {
		profile = s.cfg.Profile
	}
	dir, err := s.ResolveProfile(profile)
	if err != nil {
		return nil, err
	}

	v := &Verification{Profile: dir, Database: filepath.Join(dir, firefox.CookieDBName)}
	if ok, isDir, err := fsutil.Exists(s.fs, v.Database); err != nil || !ok || isDir {
		if err == nil {
			err = ErrStoreNotFound
		}
		return v, &SetupError{Op: "locate store", Path: v.Database, Err: err}
	}

	unit, err := firefox.ParseExpiryUnit(s.cfg.ExpiryUnit)
	if err != nil {
		return v, &SetupError{Op: "configure", Err: err}
	}
	store, err := s.openStore(v.Database, "ro", unit)
	if err != nil {
		return v, err
	}
	defer store.Close()

	v.Rows, err = store.Count(ctx)
	return v, err
}
