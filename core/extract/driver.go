package extract

import (
	"context"
	"errors"
	"fmt"
	"io"

	"catalog-ingest/core/catalog"
	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/metrics"
	"catalog-ingest/core/reconcile"

	"go.uber.org/zap"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Options controls a run.
type Options struct {
	// BatchSize is passed to the run's queue.
	BatchSize int
}

// Result summarizes a finished run.
type Result struct {
	RunID string `json:"extract_id"`
	// Rows counts decoded rows, rejected ones included.
	Rows          int    `json:"rows"`
	Rejected      int    `json:"rejected"`
	FlushFailures int    `json:"flush_failures"`
	Status        string `json:"status"`
}

// Driver runs extractions against one item store client. A Driver may run
// several extractions concurrently; each run gets its own queue.
type Driver struct {
	client   itemapi.Client
	opts     Options
	reporter Reporter
	logger   *zap.Logger
}

// NewDriver creates a driver.
func NewDriver(client itemapi.Client, opts Options, reporter Reporter, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = NewLogReporter(logger)
	}
	return &Driver{
		client:   client,
		opts:     opts,
		reporter: reporter,
		logger:   logger,
	}
}

// Run processes src to completion. It returns an error when the run failed:
// a decode error, a cancelled context or a failed terminal flush.
func (d *Driver) Run(ctx context.Context, runID string, src Source) (Result, error) {
	result := Result{RunID: runID, Status: StatusRunning}

	queue := reconcile.New(runID, d.client, reconcile.Options{BatchSize: d.opts.BatchSize}, d.logger)
	defer queue.Close()

	d.reporter.RunStarted(runID)

	for {
		if err := ctx.Err(); err != nil {
			return d.fail(result, fmt.Errorf("extract cancelled: %w", err))
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return d.fail(result, fmt.Errorf("extract could not be decoded at row %d: %w", result.Rows, err))
		}

		position := result.Rows
		result.Rows++

		item, err := catalog.Transform(row)
		if err != nil {
			result.Rejected++
			metrics.RowsTotal.WithLabelValues("rejected").Inc()
			d.reporter.RowRejected(runID, position, err)
			continue
		}
		metrics.RowsTotal.WithLabelValues("accepted").Inc()

		if err := queue.Add(ctx, item); err != nil {
			// The queue kept its window; the next threshold or the terminal
			// flush retries it.
			result.FlushFailures++
			d.reporter.FlushFailed(runID, err)
		}
	}

	if _, err := queue.Flush(ctx); err != nil {
		result.FlushFailures++
		d.reporter.FlushFailed(runID, err)
		return d.fail(result, fmt.Errorf("terminal flush failed: %w", err))
	}

	result.Status = StatusCompleted
	metrics.RunsTotal.WithLabelValues(StatusCompleted).Inc()
	d.reporter.RunCompleted(runID, result.Rows)
	return result, nil
}

func (d *Driver) fail(result Result, err error) (Result, error) {
	result.Status = StatusFailed
	metrics.RunsTotal.WithLabelValues(StatusFailed).Inc()
	d.reporter.RunFailed(result.RunID, err)
	return result, err
}
