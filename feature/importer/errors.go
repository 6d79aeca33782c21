package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreNotFound is returned when the profile has no cookies.sqlite.
	ErrStoreNotFound = errors.New("cookie database not found")
	// ErrSourceNotFound is returned when the export file does not exist.
	ErrSourceNotFound = errors.New("cookie export file not found")
	// ErrEmptySource is returned for an empty export.
	ErrEmptySource = errors.New("cookie export is empty")
)

// SetupError reports a failure before any record was written: a missing
// store or export, an unreadable path, a foreign schema.
type SetupError struct {
	Op   string
	Path string
	Err  error
}

func (e *SetupError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}
