// Package items serves an in-process item store API.
//
// It answers the same routes the reconciliation client calls on the remote
// store, backed by GORM, so extracts can be exercised end to end without the
// real service:
//
//	GET  /items/byFederatedIds?federatedIds=a,b
//	POST /items/batch
//	PUT  /items/batch
//	GET  /items/all
//
// Created items receive a fresh uuid. Federated ids are indexed but not unique,
// matching a store that never deduplicates on its own.
package items
