// Package itemapi is the client side of the remote item store.
//
// The store exposes three logical operations: lookup by federated identifier,
// bulk create and bulk update. The Client interface is what the batch queue
// consumes; HTTPClient speaks the JSON protocol of the item API.
//
// # Chunking
//
// Callers pass logical lists of any length. HTTPClient slices every list to
// Config.MaxBatchSize and issues all chunks, returning the first error.
//
// # Admission
//
// Every request passes through a Limiter before it is sent. The limiter caps
// the number of in-flight requests (excess callers wait in FIFO order, nothing
// is dropped) and optionally throttles the request rate. One HTTPClient, and
// therefore one Limiter, is shared by all extraction runs of the process.
//
// # Usage
//
//	client := itemapi.NewHTTPClient(cfg.ItemAPI, logger)
//	existing, err := client.LookupByIDs(ctx, []string{"F1", "O1"})
package itemapi
