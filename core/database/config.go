package database

// Config holds configuration for the SQLite connection.
type Config struct {
	// Path is the database file. It is chosen per run and never read from the environment.
	Path string `mapstructure:"-"`
	// Mode is the SQLite open mode: "rw" refuses to create a missing file, "rwc" creates it.
	Mode string `mapstructure:"mode" default:"rw"`
	// BusyTimeoutMS is how long a statement waits on a locked database, in milliseconds.
	BusyTimeoutMS int `mapstructure:"busy_timeout_ms" default:"5000"`
	// JournalMode overrides the journal mode (DELETE, WAL, ...). Empty keeps the file's mode.
	JournalMode string `mapstructure:"journal_mode" default:""`
	// TimeoutSeconds bounds the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
