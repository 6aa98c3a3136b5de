// Package server holds the HTTP server configuration.
//
// The Config struct defines the HTTP port, the API key, whether the in-process
// item store is mounted and how long shutdown waits for running extractions.
// IsPublicPath lists the routes served without an API key.
package server
