package importer

import "time"

// Config holds the import section of the configuration.
type Config struct {
	// Profile is the default profile directory or name.
	Profile string `mapstructure:"profile" default:""`
	// ProcessNames are the browser processes killed before writing.
	ProcessNames []string `mapstructure:"process_names" default:"firefox,zen"`
	// Terminate enables killing the browser before writing.
	Terminate bool `mapstructure:"terminate" default:"true"`
	// TerminateWait is how long to wait after killing the browser.
	TerminateWait time.Duration `mapstructure:"terminate_wait" default:"2s"`
	// Maintenance runs VACUUM and REINDEX after the batch.
	Maintenance bool `mapstructure:"maintenance" default:"true"`
	// Backup copies cookies.sqlite before it is modified.
	Backup bool `mapstructure:"backup" default:"true"`
	// ExpiryUnit is the unit moz_cookies.expiry is written in (ms or s).
	ExpiryUnit string `mapstructure:"expiry_unit" default:"ms"`
}
