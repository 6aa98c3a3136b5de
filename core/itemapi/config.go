package itemapi

// Config holds configuration for the remote item API client.
type Config struct {
	// BaseURL is the root URL of the item API (e.g., http://localhost:8080).
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8080"`
	// MaxBatchSize is the maximum number of items sent in one request.
	MaxBatchSize int `mapstructure:"max_batch_size" default:"100"`
	// MaxConcurrent caps simultaneous in-flight requests across all runs.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"100"`
	// RequestsPerSecond throttles request starts. Zero disables throttling.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"0"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
