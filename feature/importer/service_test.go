package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cookie-importer/core/cookiefile"
	"cookie-importer/core/database"
	"cookie-importer/core/fsutil"
	"cookie-importer/core/reconcile"
	"cookie-importer/core/storage"
	"cookie-importer/core/storage/mocks"
	"cookie-importer/feature/firefox"
	"cookie-importer/feature/firefox/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const netscapeExport = "# Netscape HTTP Cookie File\n" +
	".example.com\tTRUE\t/\tTRUE\t1700000000\tsid\tabc\n" +
	"#HttpOnly_.example.com\tTRUE\t/\tFALSE\t0\ttoken\tv1\tv2\n" +
	"broken line\n"

const jsonExport = `[{"name":"a","domain":"x.com","expirationDate":1700000000},{"name":"b","domain":"x.com","value":"2"}]`

var fixedNow = time.UnixMilli(1_700_000_000_123)

type env struct {
	profile string
	dbPath  string
	export  string
	killed  int
}

func newEnv(t *testing.T, export string) *env {
	t.Helper()
	dir := t.TempDir()
	profile := filepath.Join(dir, "abc.default")
	require.NoError(t, os.MkdirAll(profile, 0o755))

	dbPath := filepath.Join(profile, firefox.CookieDBName)
	db, err := database.Connect(database.Config{Path: dbPath, Mode: "rwc"})
	require.NoError(t, err)
	require.NoError(t, db.Exec(models.CreateTableSQL).Error)
	require.NoError(t, database.Close(db))

	exportPath := filepath.Join(dir, "cookies.txt")
	require.NoError(t, os.WriteFile(exportPath, []byte(export), 0o600))

	return &env{profile: profile, dbPath: dbPath, export: exportPath}
}

func defaultConfig() Config {
	return Config{
		ProcessNames: []string{"firefox"},
		Terminate:    true,
		Maintenance:  true,
		Backup:       true,
		ExpiryUnit:   "ms",
	}
}

func (e *env) service(cfg Config, storageCfg storage.Config, client storage.Client) *Service {
	return NewService(cfg, database.Config{BusyTimeoutMS: 1000}, storageCfg, client, zap.NewNop(),
		WithClock(func() time.Time { return fixedNow }),
		WithRoots(nil),
		WithTerminator(func(context.Context, []string, time.Duration) error {
			e.killed++
			return nil
		}),
	)
}

func countRows(t *testing.T, dbPath string) int64 {
	t.Helper()
	db, err := database.Connect(database.Config{Path: dbPath, Mode: "ro"})
	require.NoError(t, err)
	defer database.Close(db)

	var n int64
	require.NoError(t, db.Table(models.TableName).Count(&n).Error)
	return n
}

func TestRun_Netscape(t *testing.T) {
	e := newEnv(t, netscapeExport)
	require.NoError(t, os.WriteFile(e.dbPath+"-wal", []byte("stale"), 0o600))
	svc := e.service(defaultConfig(), storage.Config{}, nil)

	report, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	require.NoError(t, err)

	assert.Equal(t, reconcile.Summary{Inserted: 2}, report.Summary)
	assert.Equal(t, cookiefile.FormatNetscape, report.Format)
	assert.Equal(t, 1, e.killed)
	assert.Equal(t, []string{e.dbPath + "-wal"}, report.RemovedSidecars)
	assert.Equal(t, fsutil.BackupPath(e.dbPath, fixedNow), report.Backup)
	assert.FileExists(t, report.Backup)
	assert.True(t, report.Maintained)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, int64(2), countRows(t, e.dbPath))

	// The clock is frozen, so a second backup would reuse the same name.
	_, err = svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export, SkipTerminate: true})
	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, "backup", setupErr.Op)
}

func TestRun_IdempotentRerun(t *testing.T) {
	e := newEnv(t, jsonExport)
	cfg := defaultConfig()
	cfg.Backup = false
	svc := e.service(cfg, storage.Config{}, nil)

	first, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Summary{Inserted: 2}, first.Summary)

	second, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	require.NoError(t, err)
	assert.Equal(t, reconcile.Summary{Updated: 2}, second.Summary)
	assert.Equal(t, int64(2), countRows(t, e.dbPath))
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	e := newEnv(t, jsonExport)
	require.NoError(t, os.WriteFile(e.dbPath+"-shm", []byte("shm"), 0o600))
	svc := e.service(defaultConfig(), storage.Config{}, nil)

	report, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export, DryRun: true})
	require.NoError(t, err)

	require.NotNil(t, report.Plan)
	assert.Equal(t, reconcile.PlanSummary{ToInsert: 2}, *report.Plan)
	assert.Zero(t, e.killed)
	assert.Empty(t, report.Backup)
	assert.FileExists(t, e.dbPath+"-shm")
	assert.Equal(t, int64(0), countRows(t, e.dbPath))
}

func TestRun_SetupErrors(t *testing.T) {
	e := newEnv(t, jsonExport)
	svc := e.service(defaultConfig(), storage.Config{}, nil)

	tests := []struct {
		name   string
		req    Request
		target error
		op     string
	}{
		{"Unknown profile", Request{Profile: "no-such-profile", Source: e.export}, firefox.ErrProfileNotFound, "resolve profile"},
		{"Missing export", Request{Profile: e.profile, Source: e.export + ".missing"}, ErrSourceNotFound, "read export"},
		{"No export", Request{Profile: e.profile}, ErrSourceNotFound, "read export"},
		{"Empty upload", Request{Profile: e.profile, Data: []byte("  \n")}, ErrEmptySource, "read export"},
		{"Object storage off", Request{Profile: e.profile, Source: "s3://exports/c.json"}, storage.ErrNotConfigured, "read export"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Run(context.Background(), tt.req)

			var setupErr *SetupError
			require.ErrorAs(t, err, &setupErr)
			assert.Equal(t, tt.op, setupErr.Op)
			assert.ErrorIs(t, err, tt.target)
		})
	}
	assert.Zero(t, e.killed, "nothing is touched on setup errors")
}

func TestRun_MissingStore(t *testing.T) {
	e := newEnv(t, jsonExport)
	require.NoError(t, os.Remove(e.dbPath))
	svc := e.service(defaultConfig(), storage.Config{}, nil)

	_, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Equal(t, 404, StatusFor(err))
}

func TestRun_UnrecognizedFormatTouchesNothing(t *testing.T) {
	e := newEnv(t, `{"cookies": []}`)
	svc := e.service(defaultConfig(), storage.Config{}, nil)

	report, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	assert.ErrorIs(t, err, cookiefile.ErrUnrecognizedFormat)
	assert.Zero(t, e.killed)
	assert.Empty(t, report.Backup)
	assert.NoFileExists(t, fsutil.BackupPath(e.dbPath, fixedNow))
}

func TestRun_ForeignSchema(t *testing.T) {
	e := newEnv(t, jsonExport)
	require.NoError(t, os.Remove(e.dbPath))
	db, err := database.Connect(database.Config{Path: e.dbPath, Mode: "rwc"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE cookies (host_key TEXT)").Error)
	require.NoError(t, database.Close(db))

	cfg := defaultConfig()
	cfg.Backup = false
	_, err = e.service(cfg, storage.Config{}, nil).Run(context.Background(), Request{Profile: e.profile, Source: e.export})

	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, "verify schema", setupErr.Op)
	assert.ErrorIs(t, err, firefox.ErrMissingTable)
}

func TestRun_TerminationWarningIsNotFatal(t *testing.T) {
	e := newEnv(t, jsonExport)
	cfg := defaultConfig()
	cfg.Backup = false
	svc := NewService(cfg, database.Config{}, storage.Config{}, nil, zap.NewNop(),
		WithRoots(nil),
		WithTerminator(func(context.Context, []string, time.Duration) error {
			return &firefox.TerminationWarning{Attempts: []string{"pkill -9 firefox"}, Err: errors.New("exit status 1")}
		}),
	)

	report, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Summary.Inserted)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "pkill")
}

func TestRun_ObserverSeesEvents(t *testing.T) {
	e := newEnv(t, jsonExport)
	cfg := defaultConfig()
	cfg.Backup = false
	svc := e.service(cfg, storage.Config{}, nil)

	var types []reconcile.EventType
	_, err := svc.Run(context.Background(), Request{
		Profile:         e.profile,
		Source:          e.export,
		SkipMaintenance: true,
		Observer:        func(ev reconcile.Event) { types = append(types, ev.Type) },
	})
	require.NoError(t, err)
	assert.Equal(t, []reconcile.EventType{
		reconcile.EventParsed, reconcile.EventInserted,
		reconcile.EventParsed, reconcile.EventInserted,
		reconcile.EventSummary,
	}, types)
}

func TestRun_ObjectStorage(t *testing.T) {
	e := newEnv(t, "")
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "exports", "cookies.json", mock.Anything).
		Return(nopCloser{strings.NewReader(jsonExport)}, nil)
	client.On("BucketExists", mock.Anything, "backups").Return(true, nil)
	client.On("PutObject", mock.Anything, "backups",
		"prefix/abc.default/"+filepath.Base(fsutil.BackupPath(e.dbPath, fixedNow)),
		mock.Anything, mock.AnythingOfType("int64"), minio.PutObjectOptions{ContentType: "application/vnd.sqlite3"}).
		Return(minio.UploadInfo{}, nil)

	storageCfg := storage.Config{Bucket: "backups", UploadBackups: true, BackupPrefix: "prefix/", MaxDownloadMB: 1}
	svc := e.service(defaultConfig(), storageCfg, client)

	report, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: "s3://exports/cookies.json"})
	require.NoError(t, err)

	assert.Equal(t, "s3://exports/cookies.json", report.Source)
	assert.Equal(t, 2, report.Summary.Inserted)
	assert.Equal(t, "s3://backups/prefix/abc.default/"+filepath.Base(report.Backup), report.BackupObject)
	client.AssertExpectations(t)
}

func TestRun_BackupUploadFailureIsWarning(t *testing.T) {
	e := newEnv(t, jsonExport)
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "backups").Return(false, errors.New("unreachable"))

	storageCfg := storage.Config{Bucket: "backups", UploadBackups: true}
	report, err := e.service(defaultConfig(), storageCfg, client).
		Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	require.NoError(t, err)

	assert.Empty(t, report.BackupObject)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "unreachable")
}

func TestRun_InvalidExpiryUnit(t *testing.T) {
	e := newEnv(t, jsonExport)
	cfg := defaultConfig()
	cfg.ExpiryUnit = "minutes"

	_, err := e.service(cfg, storage.Config{}, nil).Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	var setupErr *SetupError
	require.ErrorAs(t, err, &setupErr)
	assert.Equal(t, "configure", setupErr.Op)
}

func TestResolveProfile_ByName(t *testing.T) {
	e := newEnv(t, jsonExport)
	root := filepath.Dir(e.profile)
	require.NoError(t, os.WriteFile(filepath.Join(root, "profiles.ini"),
		[]byte("[Profile0]\nName=main\nIsRelative=1\nPath=abc.default\nDefault=1\n"), 0o600))

	svc := NewService(defaultConfig(), database.Config{}, storage.Config{}, nil, zap.NewNop(), WithRoots([]string{root}))

	dir, err := svc.ResolveProfile("main")
	require.NoError(t, err)
	assert.Equal(t, e.profile, dir)

	profiles := svc.Profiles()
	require.Len(t, profiles, 1)
	assert.True(t, profiles[0].HasCookies)
}

type nopCloser struct{ *strings.Reader }

func (nopCloser) Close() error { return nil }

func TestVerify(t *testing.T) {
	e := newEnv(t, jsonExport)
	cfg := defaultConfig()
	cfg.Backup = false
	svc := e.service(cfg, storage.Config{}, nil)

	_, err := svc.Run(context.Background(), Request{Profile: e.profile, Source: e.export})
	require.NoError(t, err)

	v, err := svc.Verify(context.Background(), e.profile)
	require.NoError(t, err)
	assert.Equal(t, e.dbPath, v.Database)
	assert.Equal(t, int64(2), v.Rows)

	require.NoError(t, os.Remove(e.dbPath))
	_, err = svc.Verify(context.Background(), e.profile)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
