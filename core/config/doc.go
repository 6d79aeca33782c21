// Package config provides configuration management for the cookie importer.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional config file (config.yaml) and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Database: SQLite connection options for cookies.sqlite
//   - Storage: S3/MinIO credentials, export downloads and backup uploads
//   - Log: Logging level and format
//   - Import: default profile, browser termination, backup and maintenance switches
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Import.ProcessNames)
package config
