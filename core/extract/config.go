package extract

// Config holds configuration for extraction runs.
type Config struct {
	// BatchSize is the number of distinct items that triggers a flush.
	BatchSize int `mapstructure:"batch_size" default:"100"`
	// UploadPrefix is the storage prefix uploaded extracts are staged under.
	UploadPrefix string `mapstructure:"upload_prefix" default:"uploads"`
	// CleanupUploads removes a staged extract once its run has finished.
	CleanupUploads bool `mapstructure:"cleanup_uploads" default:"true"`
}
