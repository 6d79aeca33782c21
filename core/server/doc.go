// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// configuration structure and helpers derived from it.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the upload size limit.
// An empty API key leaves the API open, which is only sensible on localhost.
package server
