package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of an uploaded export file.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

// Address returns the listen address for Port, accepting "8080" or ":8080".
func (c Config) Address() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 32 << 20
	}
	return c.BodyLimitMB << 20
}

// AuthEnabled reports whether requests must carry an API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
