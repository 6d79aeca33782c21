package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Scheme prefixes an object URL, e.g. "s3://exports/cookies.json".
const Scheme = "s3://"

var (
	// ErrNotConfigured is returned when an object operation is requested without an endpoint.
	ErrNotConfigured = errors.New("object storage is not configured")
	// ErrObjectTooLarge is returned when a download exceeds its limit.
	ErrObjectTooLarge = errors.New("object exceeds size limit")
)

// ObjectURL names one object in a bucket.
type ObjectURL struct {
	Bucket string
	Key    string
}

func (u ObjectURL) String() string {
	return Scheme + u.Bucket + "/" + u.Key
}

// IsObjectURL reports whether raw uses the s3:// scheme.
func IsObjectURL(raw string) bool {
	return strings.HasPrefix(raw, Scheme)
}

// ParseObjectURL splits "s3://bucket/key" into its parts.
func ParseObjectURL(raw string) (ObjectURL, error) {
	if !IsObjectURL(raw) {
		return ObjectURL{}, fmt.Errorf("invalid object URL %q: missing %s prefix", raw, Scheme)
	}
	bucket, key, ok := strings.Cut(strings.TrimPrefix(raw, Scheme), "/")
	if !ok || bucket == "" || key == "" {
		return ObjectURL{}, fmt.Errorf("invalid object URL %q: expected %sbucket/key", raw, Scheme)
	}
	return ObjectURL{Bucket: bucket, Key: key}, nil
}

// Download reads the whole object at u, failing with ErrObjectTooLarge past maxBytes.
func Download(ctx context.Context, client Client, u ObjectURL, maxBytes int64) ([]byte, error) {
	obj, err := client.GetObject(ctx, u.Bucket, u.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", u, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", u, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrObjectTooLarge, u, maxBytes)
	}
	return data, nil
}

// EnsureBucket creates bucket when it does not exist yet.
func EnsureBucket(ctx context.Context, client Client, bucket, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// Upload stores size bytes from r at u.
func Upload(ctx context.Context, client Client, u ObjectURL, r io.Reader, size int64, contentType string) (minio.UploadInfo, error) {
	info, err := client.PutObject(ctx, u.Bucket, u.Key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload %s: %w", u, err)
	}
	return info, nil
}
