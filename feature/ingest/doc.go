// Package ingest accepts extract uploads and runs them in the background.
//
// POST /extract stages the uploaded file in object storage and answers at
// once with the run id. Each run streams the staged object through its own
// extract.Driver; runs execute concurrently and share only the item API
// client. Run progress is kept in memory and served by GET /extract/:id.
package ingest
