package extract

import (
	"catalog-ingest/core/logger"

	"go.uber.org/zap"
)

// Reporter receives the lifecycle events of extraction runs.
// Events of one run are delivered sequentially from the run's worker.
type Reporter interface {
	RunStarted(runID string)
	RowRejected(runID string, row int, err error)
	FlushFailed(runID string, err error)
	RunCompleted(runID string, rows int)
	RunFailed(runID string, err error)
}

// LogReporter writes run events to a zap logger.
type LogReporter struct {
	logger *zap.Logger
}

// NewLogReporter creates a reporter logging to l.
func NewLogReporter(l *zap.Logger) *LogReporter {
	return &LogReporter{logger: l}
}

func (r *LogReporter) RunStarted(runID string) {
	logger.WithRun(r.logger, runID).Info("Extract launched")
}

func (r *LogReporter) RowRejected(runID string, row int, err error) {
	logger.WithRun(r.logger, runID).Error("Could not transform record",
		zap.Int("line_number", row),
		zap.Error(err),
	)
}

func (r *LogReporter) FlushFailed(runID string, err error) {
	logger.WithRun(r.logger, runID).Error("Could not process records", zap.Error(err))
}

func (r *LogReporter) RunCompleted(runID string, rows int) {
	logger.WithRun(r.logger, runID).Info("Extract completed", zap.Int("records", rows))
}

func (r *LogReporter) RunFailed(runID string, err error) {
	logger.WithRun(r.logger, runID).Error("Extract could not complete", zap.Error(err))
}

// Reporters fans every event out to each reporter in order.
type Reporters []Reporter

func (rs Reporters) RunStarted(runID string) {
	for _, r := range rs {
		r.RunStarted(runID)
	}
}

func (rs Reporters) RowRejected(runID string, row int, err error) {
	for _, r := range rs {
		r.RowRejected(runID, row, err)
	}
}

func (rs Reporters) FlushFailed(runID string, err error) {
	for _, r := range rs {
		r.FlushFailed(runID, err)
	}
}

func (rs Reporters) RunCompleted(runID string, rows int) {
	for _, r := range rs {
		r.RunCompleted(runID, rows)
	}
}

func (rs Reporters) RunFailed(runID string, err error) {
	for _, r := range rs {
		r.RunFailed(runID, err)
	}
}
