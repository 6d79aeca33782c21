package storage

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service. Empty disables object storage.
	Endpoint string `mapstructure:"endpoint" default:""`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the bucket backups are uploaded to.
	Bucket string `mapstructure:"bucket" default:"cookie-backups"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UploadBackups copies every local store backup to Bucket.
	UploadBackups bool `mapstructure:"upload_backups" default:"false"`
	// BackupPrefix is prepended to uploaded backup object names.
	BackupPrefix string `mapstructure:"backup_prefix" default:"backups/"`
	// MaxDownloadMB caps the size of an export file read from storage.
	MaxDownloadMB int `mapstructure:"max_download_mb" default:"64"`
}

// Enabled reports whether an endpoint is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// MaxDownloadBytes returns the download cap in bytes.
func (c Config) MaxDownloadBytes() int64 {
	if c.MaxDownloadMB <= 0 {
		return 64 << 20
	}
	return int64(c.MaxDownloadMB) << 20
}
