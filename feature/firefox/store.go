package firefox

import (
	"context"
	"errors"
	"fmt"

	"cookie-importer/core/cookie"
	"cookie-importer/core/database"
	"cookie-importer/feature/firefox/models"

	"gorm.io/gorm"
)

// ExpiryUnit is the unit moz_cookies.expiry is written in.
type ExpiryUnit string

const (
	// ExpiryMillis writes normalized expiries unchanged.
	ExpiryMillis ExpiryUnit = "ms"
	// ExpirySeconds divides normalized expiries by 1000.
	ExpirySeconds ExpiryUnit = "s"
)

// ParseExpiryUnit validates a configured unit. Empty means milliseconds.
func ParseExpiryUnit(s string) (ExpiryUnit, error) {
	switch ExpiryUnit(s) {
	case "", ExpiryMillis:
		return ExpiryMillis, nil
	case ExpirySeconds:
		return ExpirySeconds, nil
	default:
		return "", fmt.Errorf("unknown expiry unit %q (want %q or %q)", s, ExpiryMillis, ExpirySeconds)
	}
}

// Convert turns a millisecond expiry into this unit.
func (u ExpiryUnit) Convert(ms int64) int64 {
	if u == ExpirySeconds {
		return ms / 1000
	}
	return ms
}

// ErrRowVanished is returned when an update matches no row.
var ErrRowVanished = errors.New("cookie row no longer exists")

// Store is the reconcile.Adapter and reconcile.Maintainer for a Firefox
// cookies.sqlite file.
type Store struct {
	db   *gorm.DB
	unit ExpiryUnit
}

// NewStore wraps an open connection.
func NewStore(db *gorm.DB, unit ExpiryUnit) *Store {
	return &Store{db: db, unit: unit}
}

// Open connects to the store at cfg.Path and verifies its schema.
func Open(cfg database.Config, unit ExpiryUnit) (*Store, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := VerifySchema(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return NewStore(db, unit), nil
}

// DB exposes the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close releases the connection.
func (s *Store) Close() error {
	return database.Close(s.db)
}

// Name returns the adapter name.
func (s *Store) Name() string {
	return "firefox"
}

// Lookup finds the row id for key.
func (s *Store) Lookup(ctx context.Context, key cookie.Key) (int64, bool, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Table(models.TableName).
		Where("name = ? AND host = ? AND path = ? AND originAttributes = ?",
			key.Name, key.Host, key.Path, key.OriginAttributes).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up cookie %s: %w", key, err)
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// Update overwrites the mutable columns of row id.
func (s *Store) Update(ctx context.Context, id int64, c cookie.Cookie, now int64) error {
	result := s.db.WithContext(ctx).
		Table(models.TableName).
		Where("id = ?", id).
		Updates(models.UpdateColumns(c, s.unit.Convert(c.Expiry), now))
	if result.Error != nil {
		return fmt.Errorf("failed to update cookie row %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update cookie row %d: %w", id, ErrRowVanished)
	}
	return nil
}

// Insert creates a row for c.
func (s *Store) Insert(ctx context.Context, c cookie.Cookie, now int64) (int64, error) {
	row := models.NewMozCookie(c, s.unit.Convert(c.Expiry), now)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to insert cookie %s: %w", c.Key(), err)
	}
	return row.ID, nil
}

// Vacuum rebuilds the database file.
func (s *Store) Vacuum(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("VACUUM").Error
}

// Reindex rebuilds every index.
func (s *Store) Reindex(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("REINDEX").Error
}

// Count returns the number of rows in moz_cookies.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Table(models.TableName).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count cookies: %w", err)
	}
	return n, nil
}
