package ingest

import (
	"sort"
	"sync"
	"time"

	"catalog-ingest/core/extract"
)

// registry tracks runs of the process lifetime.
type registry struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

func newRegistry() *registry {
	return &registry{runs: make(map[string]*Run)}
}

func (r *registry) start(id string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[id] = &Run{ID: id, Status: extract.StatusRunning, StartedAt: at}
}

func (r *registry) update(id string, fn func(run *Run)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run, ok := r.runs[id]; ok {
		fn(run)
	}
}

func (r *registry) get(id string) (Run, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}

func (r *registry) list() []Run {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Run, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, *run)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// progress mirrors run events into the registry while the run is going.
type progress struct {
	runs *registry
}

func (p progress) RunStarted(runID string) {}

func (p progress) RowRejected(runID string, row int, err error) {
	p.runs.update(runID, func(run *Run) { run.Rejected++ })
}

func (p progress) FlushFailed(runID string, err error) {
	p.runs.update(runID, func(run *Run) { run.FlushFailures++ })
}

func (p progress) RunCompleted(runID string, rows int) {}

func (p progress) RunFailed(runID string, err error) {}
