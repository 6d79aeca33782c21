package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"cookie-importer/core/database"
	"cookie-importer/core/logger"
	"cookie-importer/core/server"
	"cookie-importer/core/storage"
	"cookie-importer/feature/importer"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds the SQLite connection settings for cookies.sqlite.
	Database database.Config `mapstructure:"database"`
	// Import holds the import pipeline settings.
	Import importer.Config `mapstructure:"import"`
}

// LoadConfig loads configuration from an optional config file in path, the
// .env file and environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip untagged and runtime-only fields
		if tag == "" || tag == "-" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
