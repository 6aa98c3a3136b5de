package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// MockStore mounts the in-process item store API.
	MockStore bool `mapstructure:"mock_store" default:"false"`
	// MockLatencyMs delays every mock store response.
	MockLatencyMs int `mapstructure:"mock_latency_ms" default:"0"`
	// ShutdownSeconds bounds the wait for running extractions on shutdown.
	ShutdownSeconds int `mapstructure:"shutdown_seconds" default:"30"`
}

// IsPublicPath reports whether path is served without an API key. The mock
// item store is public when mounted: the item API client sends no key.
func (c Config) IsPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return c.MockStore && strings.HasPrefix(path, MockStorePrefix)
}

// MockStorePrefix is the route prefix of the mock item store.
const MockStorePrefix = "/items"

var publicPrefixes = []string{"/swagger", "/metrics", "/health"}
