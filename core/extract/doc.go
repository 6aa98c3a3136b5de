// Package extract drives one extraction run: it pulls decoded rows from a
// Source, transforms each row into a catalog item and feeds the batch queue,
// finishing with a terminal flush.
//
// # Backpressure
//
// The driver is pull based. The next row is decoded only after the previous
// row's Add, and any flush it triggered, has returned, so a slow item store
// slows decoding instead of growing memory.
//
// # Failure Handling
//
//   - A row without identifier is reported through Reporter.RowRejected and skipped.
//   - A failed threshold flush is reported through Reporter.FlushFailed; the
//     queue keeps the window and the run continues.
//   - A decode error, a cancelled context or a failed terminal flush fails the run.
//
// # Usage
//
//	driver := extract.NewDriver(client, extract.Options{BatchSize: 100}, extract.NewLogReporter(logger), logger)
//	result, err := driver.Run(ctx, runID, extract.NewCSVSource(file))
package extract
