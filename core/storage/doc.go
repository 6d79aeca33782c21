// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the few
// operations the importer needs: reading an export file from a bucket and
// uploading store backups. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Object URLs
//
// Objects are addressed as "s3://bucket/key". ParseObjectURL splits such a URL,
// Download reads it with a size cap, Upload writes one.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	u, err := storage.ParseObjectURL("s3://exports/cookies.json")
//	data, err := storage.Download(ctx, client, u, config.MaxDownloadBytes())
package storage
