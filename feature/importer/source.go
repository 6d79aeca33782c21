package importer

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"cookie-importer/core/storage"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// readSource returns the export content and a name for reports.
func (s *Service) readSource(ctx context.Context, req Request) ([]byte, string, error) {
	if req.Data != nil {
		name := req.SourceName
		if name == "" {
			name = "upload"
		}
		if len(bytes.TrimSpace(req.Data)) == 0 {
			return nil, name, &SetupError{Op: "read export", Path: name, Err: ErrEmptySource}
		}
		return req.Data, name, nil
	}

	src := strings.TrimSpace(req.Source)
	if src == "" {
		return nil, "", &SetupError{Op: "read export", Err: ErrSourceNotFound}
	}

	if storage.IsObjectURL(src) {
		return s.download(ctx, src)
	}

	data, err := afero.ReadFile(s.fs, src)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, src, &SetupError{Op: "read export", Path: src, Err: ErrSourceNotFound}
	}
	if err != nil {
		return nil, src, &SetupError{Op: "read export", Path: src, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, src, &SetupError{Op: "read export", Path: src, Err: ErrEmptySource}
	}
	return data, src, nil
}

func (s *Service) download(ctx context.Context, raw string) ([]byte, string, error) {
	u, err := storage.ParseObjectURL(raw)
	if err != nil {
		return nil, raw, &SetupError{Op: "read export", Path: raw, Err: err}
	}
	if s.client == nil {
		return nil, raw, &SetupError{Op: "read export", Path: raw, Err: storage.ErrNotConfigured}
	}

	data, err := storage.Download(ctx, s.client, u, s.storageCfg.MaxDownloadBytes())
	if err != nil {
		return nil, raw, &SetupError{Op: "read export", Path: raw, Err: err}
	}
	return data, raw, nil
}

// uploadBackup copies a local backup to object storage. Failures are warnings.
func (s *Service) uploadBackup(ctx context.Context, report *Report, backup string, size int64, l *zap.Logger) {
	if !s.storageCfg.UploadBackups {
		return
	}
	if s.client == nil {
		report.warn("backup upload skipped: " + storage.ErrNotConfigured.Error())
		return
	}

	u := storage.ObjectURL{
		Bucket: s.storageCfg.Bucket,
		Key:    path.Join(s.storageCfg.BackupPrefix, filepath.Base(report.Profile), filepath.Base(backup)),
	}

	err := storage.EnsureBucket(ctx, s.client, u.Bucket, s.storageCfg.Region)
	if err == nil {
		var f afero.File
		f, err = s.fs.Open(backup)
		if err == nil {
			_, err = storage.Upload(ctx, s.client, u, f, size, "application/vnd.sqlite3")
			_ = f.Close()
		}
	}
	if err != nil {
		l.Warn("Backup upload failed", zap.String("object", u.String()), zap.Error(err))
		report.warn("backup upload failed: " + err.Error())
		return
	}

	report.BackupObject = u.String()
	l.Info("Backup uploaded", zap.String("object", u.String()))
}
