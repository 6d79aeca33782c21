// Package fsutil holds the file operations performed on a store before it is
// written: removing stale journal sidecars and taking a backup copy.
//
// All functions take an afero.Fs so tests run against an in-memory filesystem.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/spf13/afero"
)

// SidecarSuffixes are the SQLite journal files that sit next to a database.
var SidecarSuffixes = []string{"-wal", "-shm"}

// RemoveSidecars deletes the journal sidecars of dbPath that exist and returns
// the paths it removed.
func RemoveSidecars(fsys afero.Fs, dbPath string) ([]string, error) {
	var removed []string
	for _, suffix := range SidecarSuffixes {
		path := dbPath + suffix
		err := fsys.Remove(path)
		switch {
		case err == nil:
			removed = append(removed, path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return removed, nil
}

// BackupPath returns the backup name for dbPath at now: "<db>.backup.<unix-ms>".
func BackupPath(dbPath string, now time.Time) string {
	return dbPath + ".backup." + strconv.FormatInt(now.UnixMilli(), 10)
}

// Backup copies dbPath to BackupPath(dbPath, now) and returns the new path and
// its size. An existing file at the target is never overwritten.
func Backup(fsys afero.Fs, dbPath string, now time.Time) (string, int64, error) {
	target := BackupPath(dbPath, now)

	src, err := fsys.Open(dbPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open %s for backup: %w", dbPath, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat %s: %w", dbPath, err)
	}

	dst, err := fsys.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return "", 0, fmt.Errorf("failed to create backup %s: %w", target, err)
	}

	n, err := io.Copy(dst, src)
	if err == nil {
		err = dst.Sync()
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = fsys.Remove(target)
		return "", 0, fmt.Errorf("failed to write backup %s: %w", target, err)
	}

	return target, n, nil
}

// Exists reports whether path exists; isDir tells whether it is a directory.
func Exists(fsys afero.Fs, path string) (exists, isDir bool, err error) {
	info, err := fsys.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, info.IsDir(), nil
}
