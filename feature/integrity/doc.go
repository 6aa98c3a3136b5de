// Package integrity reports whether the services an extraction depends on
// are usable.
//
// # Checks
//
//   - Storage: the staging bucket exists (optionally created with fix=true).
//   - Database: every column of the item store models exists.
//   - ItemAPI: the item store answers a lookup.
//
// GET /integrity runs all of them; each also has its own route.
package integrity
