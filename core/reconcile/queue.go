package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-ingest/core/catalog"
	"catalog-ingest/core/itemapi"
	"catalog-ingest/core/logger"
	"catalog-ingest/core/metrics"

	"go.uber.org/zap"
)

// ErrEmptyFederatedID is returned by Add for items without an identifier.
var ErrEmptyFederatedID = errors.New("item has no federated id")

// Queue accumulates items of one extraction run and reconciles them with the
// item store in batches.
type Queue struct {
	runID     string
	client    itemapi.Client
	batchSize int
	logger    *zap.Logger
	state     State

	// Accumulation window, reset by every successful flush.
	// The order slices keep first-seen order for deterministic plans.
	pending         map[string]catalog.Item
	pendingOrder    []string
	pendingFamilies map[string]struct{}
	familyOrder     []string

	// Lives for the whole run.
	families *FamilyCache
}

// New creates a queue for one run. runID is only used for log correlation.
func New(runID string, client itemapi.Client, opts Options, log *zap.Logger) *Queue {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if log == nil {
		log = zap.NewNop()
	}

	q := &Queue{
		runID:     runID,
		client:    client,
		batchSize: batchSize,
		logger:    logger.WithRun(log, runID),
		families:  NewFamilyCache(),
	}
	q.reset()
	return q
}

// Add inserts or overwrites the pending item for item.FederatedID and marks
// any family it needs resolved. When the window reaches the batch size the
// queue flushes before returning; a flush error is returned as is and the
// window is kept for a later retry.
func (q *Queue) Add(ctx context.Context, item catalog.Item) error {
	if item.FederatedID == "" {
		return ErrEmptyFederatedID
	}

	if item.HasRole(catalog.RoleFamily) {
		q.markFamily(item.FederatedID)
	}
	if item.HasRole(catalog.RoleOption) && item.Family != "" {
		q.markFamily(item.Family)
	}

	if _, ok := q.pending[item.FederatedID]; !ok {
		q.pendingOrder = append(q.pendingOrder, item.FederatedID)
	}
	q.pending[item.FederatedID] = item
	q.state = StateFilling

	if len(q.pending) >= q.batchSize {
		_, err := q.flush(ctx, TriggerThreshold)
		return err
	}
	return nil
}

// Flush reconciles the current window regardless of its size, including an
// empty window, and returns the applied plan.
func (q *Queue) Flush(ctx context.Context) (*Plan, error) {
	return q.flush(ctx, TriggerDrain)
}

// State returns the current queue state.
func (q *Queue) State() State {
	return q.state
}

// Pending returns the number of distinct pending items.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// PendingFamilies returns the number of family ids awaiting resolution.
func (q *Queue) PendingFamilies() int {
	return len(q.pendingFamilies)
}

// FamilyCacheSize returns the number of families known to this run.
func (q *Queue) FamilyCacheSize() int {
	return q.families.Len()
}

// Close releases the run's known-family cache.
func (q *Queue) Close() {
	q.families.release()
}

func (q *Queue) markFamily(federatedID string) {
	if q.families.Has(federatedID) {
		return
	}
	if _, ok := q.pendingFamilies[federatedID]; ok {
		return
	}
	q.pendingFamilies[federatedID] = struct{}{}
	q.familyOrder = append(q.familyOrder, federatedID)
}

func (q *Queue) flush(ctx context.Context, trigger Trigger) (*Plan, error) {
	start := time.Now()
	q.state = StateFlushing

	q.logger.Info("Flushing records from queue",
		zap.String("trigger", string(trigger)),
		zap.Int("pending", len(q.pending)),
		zap.Int("pending_families", len(q.pendingFamilies)),
	)

	plan, err := q.buildPlan(ctx)
	if err == nil {
		err = q.applyPlan(ctx, plan)
	}

	metrics.FlushDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.FlushesTotal.WithLabelValues(string(trigger), "error").Inc()
		if len(q.pending) > 0 {
			q.state = StateFilling
		} else {
			q.state = StateIdle
		}
		return nil, fmt.Errorf("flush of %d pending items failed: %w", len(q.pending), err)
	}

	metrics.FlushesTotal.WithLabelValues(string(trigger), "success").Inc()
	q.commit(plan)
	q.cleanup()

	q.logger.Info("Flush completed",
		zap.Int("creates", plan.Summary.Creates),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("unchanged", plan.Summary.Unchanged),
		zap.Int("synthesized", plan.Summary.Synthesized),
		zap.Int("family_cache", q.families.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	return plan, nil
}

// commit records the synthesized families of an applied plan so later
// flushes never create them again.
func (q *Queue) commit(plan *Plan) {
	for _, family := range plan.Synthesized {
		q.families.Put(family.FederatedID, catalog.StoredItem{Item: family})
	}
}

func (q *Queue) cleanup() {
	q.reset()
	q.state = StateIdle
	q.logger.Debug("Cleaning up records from queue")
}

func (q *Queue) reset() {
	q.pending = make(map[string]catalog.Item)
	q.pendingOrder = nil
	q.pendingFamilies = make(map[string]struct{})
	q.familyOrder = nil
}
