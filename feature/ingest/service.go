package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"catalog-ingest/core/extract"
	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/logger"
	"catalog-ingest/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrShuttingDown is returned by Launch once Shutdown has begun.
var ErrShuttingDown = errors.New("ingest is shutting down")

// Service launches and tracks extraction runs.
type Service struct {
	uploads *storage.Uploads
	driver  *extract.Driver
	cfg     extract.Config
	logger  *zap.Logger
	runs    *registry

	// Runs outlive the request that launched them.
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closing bool
	wg      sync.WaitGroup
}

// NewService creates a new ingest service.
func NewService(uploads *storage.Uploads, client itemapi.Client, cfg extract.Config, log *zap.Logger) *Service {
	runs := newRegistry()
	reporter := extract.Reporters{extract.NewLogReporter(log), progress{runs: runs}}
	ctx, cancel := context.WithCancel(context.Background())

	return &Service{
		uploads: uploads,
		driver:  extract.NewDriver(client, extract.Options{BatchSize: cfg.BatchSize}, reporter, log),
		cfg:     cfg,
		logger:  log,
		runs:    runs,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Launch stages an extract and starts its run in the background. The run id
// is returned even when staging fails so the caller can report it.
func (s *Service) Launch(ctx context.Context, body io.Reader, size int64) (string, error) {
	runID := uuid.NewString()

	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return runID, ErrShuttingDown
	}
	s.wg.Add(1)
	s.mu.Unlock()

	key, err := s.uploads.Stage(ctx, runID, body, size)
	if err != nil {
		s.wg.Done()
		return runID, err
	}

	s.runs.start(runID, time.Now())
	go func() {
		defer s.wg.Done()
		s.execute(runID, key)
	}()

	return runID, nil
}

func (s *Service) execute(runID, key string) {
	l := logger.WithRun(s.logger, runID)

	result, err := s.process(runID, key)

	finished := time.Now()
	s.runs.update(runID, func(run *Run) {
		run.Status = result.Status
		run.Rows = result.Rows
		run.FinishedAt = &finished
		if err != nil {
			run.Status = extract.StatusFailed
			run.Error = err.Error()
		}
	})

	if s.cfg.CleanupUploads {
		// The run context may be cancelled by now.
		if err := s.uploads.Remove(context.Background(), key); err != nil {
			l.Warn("Could not remove staged extract", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *Service) process(runID, key string) (extract.Result, error) {
	body, err := s.uploads.Open(s.ctx, key)
	if err != nil {
		return extract.Result{RunID: runID, Status: extract.StatusFailed}, fmt.Errorf("extract could not be opened: %w", err)
	}
	defer body.Close()

	return s.driver.Run(s.ctx, runID, extract.NewCSVSource(body))
}

// Get returns the status of a run.
func (s *Service) Get(runID string) (Run, bool) {
	return s.runs.get(runID)
}

// List returns every run, oldest first.
func (s *Service) List() []Run {
	return s.runs.list()
}

// Wait blocks until every launched run has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

// Shutdown stops accepting runs and waits for running ones. When ctx expires
// first, running extractions are cancelled and ctx's error is returned.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-done
		return ctx.Err()
	}
}
