// Package reconcile provides the batch queue that reconciles transformed
// catalog items against the remote item store.
//
// The queue is designed to keep one extraction run cheap on the store by:
//   - Deduplicating items by federated id within an accumulation window (last write wins)
//   - Resolving every missing parent family once per run, never per row
//   - Diffing against stored records so unchanged items cost no write
//   - Issuing logical bulk calls that the item API client chunks and rate limits
//
// # Architecture
//
// The queue consists of three pieces:
//
// 1. Queue: the accumulation window (pending items, pending family ids) and the
//    Idle -> Filling -> Flushing -> Idle state machine. Add triggers a flush
//    synchronously once the window holds BatchSize distinct ids, which is what
//    stalls the producer while the store catches up.
//
// 2. Plan: one flush computes a Plan (creates, updates, summary) and
//    applying it sends updates before creates.
//
// 3. FamilyCache: the process-scoped known-family cache. It grows with the
//    number of distinct family ids of one run and is never evicted.
//
// # Failure
//
// A failed flush returns its error and leaves the window untouched, so the
// same items are retried by the next threshold crossing or the terminal flush.
//
// # Usage Example
//
//	q := reconcile.New(runID, client, reconcile.Options{BatchSize: 100}, logger)
//	defer q.Close()
//
//	for each item {
//	    if err := q.Add(ctx, item); err != nil {
//	        // window kept; retried later
//	    }
//	}
//	plan, err := q.Flush(ctx)
//
// A Queue is owned by a single worker and is not safe for concurrent use.
package reconcile
