package importer

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"cookie-importer/core/cookie"
	"cookie-importer/core/cookiefile"
	"cookie-importer/core/database"
	"cookie-importer/core/fsutil"
	"cookie-importer/core/reconcile"
	"cookie-importer/core/storage"
	"cookie-importer/feature/firefox"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Request describes one import.
type Request struct {
	// Profile is a profile directory or a profile name from profiles.ini.
	Profile string
	// Source is a local path or an s3:// URL. Ignored when Data is set.
	Source string
	// Data is the export content when it was received rather than read.
	Data []byte
	// SourceName labels Data in reports.
	SourceName string
	// DryRun only counts what would be written.
	DryRun bool
	// SkipTerminate leaves running browsers alone.
	SkipTerminate bool
	// SkipMaintenance skips VACUUM and REINDEX.
	SkipMaintenance bool
	// Observer receives engine events in addition to the service logger.
	Observer reconcile.Observer
}

// Terminator stops running browsers.
type Terminator func(ctx context.Context, names []string, wait time.Duration) error

// Service runs imports. Runs are serialized so a store is never written by
// two runs at once.
type Service struct {
	cfg        Config
	dbCfg      database.Config
	storageCfg storage.Config
	client     storage.Client
	logger     *zap.Logger

	fs        afero.Fs
	clock     func() time.Time
	terminate Terminator
	roots     []string

	mu sync.Mutex
}

// Option customizes a Service.
type Option func(*Service)

// WithFs replaces the filesystem used for file operations.
func WithFs(fsys afero.Fs) Option {
	return func(s *Service) { s.fs = fsys }
}

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithTerminator replaces firefox.Terminate.
func WithTerminator(t Terminator) Option {
	return func(s *Service) { s.terminate = t }
}

// WithRoots replaces the profiles.ini search roots.
func WithRoots(roots []string) Option {
	return func(s *Service) { s.roots = roots }
}

// NewService creates a new import service. client may be nil when object
// storage is not configured.
func NewService(cfg Config, dbCfg database.Config, storageCfg storage.Config, client storage.Client, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg,
		dbCfg:      dbCfg,
		storageCfg: storageCfg,
		client:     client,
		logger:     logger,
		fs:         afero.NewOsFs(),
		clock:      time.Now,
		terminate:  firefox.Terminate,
		roots:      firefox.DefaultRoots(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profiles lists the profiles found under the search roots.
func (s *Service) Profiles() []firefox.Profile {
	return firefox.DiscoverProfiles(s.fs, s.roots)
}

// ResolveProfile turns a directory or profile name into a profile directory.
func (s *Service) ResolveProfile(arg string) (string, error) {
	dir, err := firefox.ResolveProfile(s.fs, arg, s.roots)
	if err != nil {
		return "", &SetupError{Op: "resolve profile", Path: arg, Err: err}
	}
	return dir, nil
}

// Run performs an import. The export is read and its format detected before
// the browser is stopped or any file is touched. The returned report is never
// nil and holds whatever was done before a failure.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.clock()
	report := &Report{DryRun: req.DryRun, StartedAt: started}
	defer func() { report.FinishedAt = s.clock() }()

	unit, err := firefox.ParseExpiryUnit(s.cfg.ExpiryUnit)
	if err != nil {
		return report, &SetupError{Op: "configure", Err: err}
	}

	profileArg := req.Profile
	if profileArg == "" {
		profileArg = s.cfg.Profile
	}
	profileDir, err := s.ResolveProfile(profileArg)
	if err != nil {
		return report, err
	}
	dbPath := filepath.Join(profileDir, firefox.CookieDBName)
	report.Profile = profileDir
	report.Database = dbPath

	if ok, isDir, err := fsutil.Exists(s.fs, dbPath); err != nil || !ok || isDir {
		if err == nil {
			err = ErrStoreNotFound
		}
		return report, &SetupError{Op: "locate store", Path: dbPath, Err: err}
	}

	data, name, err := s.readSource(ctx, req)
	report.Source = name
	if err != nil {
		return report, err
	}

	format, records, err := cookiefile.DetectAndParse(data)
	if err != nil {
		return report, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	report.Format = format

	l := s.logger.With(zap.String("profile", profileDir), zap.String("source", name), zap.String("format", string(format)))
	observer := chainObservers(eventLogger(l), req.Observer)

	if req.DryRun {
		return s.plan(ctx, report, dbPath, unit, records, observer)
	}

	if s.cfg.Terminate && !req.SkipTerminate {
		l.Info("Terminating browser", zap.Strings("processes", s.cfg.ProcessNames))
		if err := s.terminate(ctx, s.cfg.ProcessNames, s.cfg.TerminateWait); err != nil {
			var warning *firefox.TerminationWarning
			if !errors.As(err, &warning) {
				return report, err
			}
			l.Warn("Browser termination failed, continuing", zap.Error(err))
			report.warn(err.Error())
		}
	}

	removed, err := fsutil.RemoveSidecars(s.fs, dbPath)
	report.RemovedSidecars = removed
	if err != nil {
		return report, &SetupError{Op: "remove sidecars", Path: dbPath, Err: err}
	}
	if len(removed) > 0 {
		l.Info("Removed journal sidecars", zap.Strings("files", removed))
	}

	if s.cfg.Backup {
		backup, size, err := fsutil.Backup(s.fs, dbPath, started)
		if err != nil {
			return report, &SetupError{Op: "backup", Path: dbPath, Err: err}
		}
		report.Backup = backup
		l.Info("Backup created", zap.String("path", backup), zap.Int64("bytes", size))
		s.uploadBackup(ctx, report, backup, size, l)
	}

	store, err := s.openStore(dbPath, "rw", unit)
	if err != nil {
		return report, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			l.Warn("Failed to close store", zap.Error(err))
		}
	}()

	summary, err := reconcile.Upsert(ctx, store, records, reconcile.Options{Clock: s.clock, Observer: observer})
	report.Summary = summary
	if err != nil {
		return report, err
	}

	if s.cfg.Maintenance && !req.SkipMaintenance {
		if err := reconcile.Maintain(ctx, store); err != nil {
			l.Warn("Store maintenance failed", zap.Error(err))
			report.warn(err.Error())
		} else {
			report.Maintained = true
		}
	}

	return report, nil
}

func (s *Service) plan(ctx context.Context, report *Report, dbPath string, unit firefox.ExpiryUnit, records iter.Seq2[cookie.Cookie, error], observer reconcile.Observer) (*Report, error) {
	store, err := s.openStore(dbPath, "ro", unit)
	if err != nil {
		return report, err
	}
	defer store.Close()

	plan, err := reconcile.Plan(ctx, store, records, reconcile.Options{Clock: s.clock, Observer: observer})
	report.Plan = &plan
	return report, err
}

func (s *Service) openStore(dbPath, mode string, unit firefox.ExpiryUnit) (*firefox.Store, error) {
	cfg := s.dbCfg
	cfg.Path = dbPath
	cfg.Mode = mode

	store, err := firefox.Open(cfg, unit)
	if err != nil {
		var schemaErr *firefox.SchemaError
		if errors.Is(err, firefox.ErrMissingTable) || errors.As(err, &schemaErr) {
			return nil, &SetupError{Op: "verify schema", Path: dbPath, Err: err}
		}
		return nil, &SetupError{Op: "open store", Path: dbPath, Err: err}
	}
	return store, nil
}
