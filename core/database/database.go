package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the SQLite database at cfg.Path.
// It returns a *gorm.DB connection or an error if the file cannot be opened.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("failed to connect to database: empty path")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}

	// Suppress GORM logging; callers log through zap.
	gormConfig := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	}

	db, err := gorm.Open(sqlite.Open(DSN(cfg)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// One writer; VACUUM needs the only connection.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.Path, err)
	}

	return db, nil
}

// DSN builds the go-sqlite3 URI for cfg.
func DSN(cfg Config) string {
	params := url.Values{}
	if cfg.Mode != "" {
		params.Set("mode", cfg.Mode)
	}
	if cfg.BusyTimeoutMS > 0 {
		params.Set("_busy_timeout", fmt.Sprint(cfg.BusyTimeoutMS))
	}
	if cfg.JournalMode != "" {
		params.Set("_journal_mode", strings.ToUpper(cfg.JournalMode))
	}

	dsn := "file:" + escapePath(cfg.Path)
	if len(params) > 0 {
		dsn += "?" + params.Encode()
	}
	return dsn
}

// escapePath keeps URI delimiters in file names from being read as query syntax.
func escapePath(p string) string {
	return strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(p)
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
