// Package config loads the application configuration.
//
// Values come from environment variables, optionally seeded from a .env file.
// Every key is registered with the default from its struct tag, so
// ITEMAPI_BASE_URL overrides itemapi.base_url without further wiring.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, mock item store switch
//   - Storage: S3/MinIO credentials and the staging bucket
//   - Log: level and format
//   - Database: mock item store database
//   - ItemAPI: remote item store endpoint, batch size and concurrency limits
//   - Ingest: extraction batch size and upload handling
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.ItemAPI.BaseURL)
package config
