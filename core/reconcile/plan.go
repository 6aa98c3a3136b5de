package reconcile

import (
	"context"
	"fmt"

	"catalog-ingest/core/catalog"
)

// buildPlan resolves the current window against the store and computes the
// writes it needs. The only state it changes is merging store-confirmed
// families into the cache.
func (q *Queue) buildPlan(ctx context.Context) (*Plan, error) {
	plan := &Plan{}
	plan.Summary.Pending = len(q.pendingOrder)

	// 1. Existing records for every pending item
	existing := map[string]catalog.StoredItem{}
	if len(q.pendingOrder) > 0 {
		found, err := q.client.LookupByIDs(ctx, q.pendingOrder)
		if err != nil {
			return nil, fmt.Errorf("failed to lookup pending items: %w", err)
		}
		existing = found
	}

	// 2. Existing records for families not cached yet
	unresolved := make([]string, 0, len(q.familyOrder))
	for _, id := range q.familyOrder {
		if !q.families.Has(id) {
			unresolved = append(unresolved, id)
		}
	}
	plan.Summary.PendingFamilies = len(unresolved)

	if len(unresolved) > 0 {
		found, err := q.client.LookupByIDs(ctx, unresolved)
		if err != nil {
			return nil, fmt.Errorf("failed to lookup pending families: %w", err)
		}
		q.families.Merge(found)
	}

	// 3. Placeholder for every family the store does not know
	synthesized := make(map[string]struct{})
	for _, id := range unresolved {
		if q.families.Has(id) {
			continue
		}
		family := catalog.NewFamilyPlaceholder(id)
		synthesized[id] = struct{}{}
		plan.Synthesized = append(plan.Synthesized, family)
		plan.Creates = append(plan.Creates, family)
	}

	// 4. Diff pending items against the store. Items whose id is a known or
	// just synthesized family are skipped so they are not created twice.
	for _, id := range q.pendingOrder {
		item := q.pending[id]

		if stored, ok := existing[id]; ok {
			plan.Summary.Existing++
			if item.Equal(stored.Item) {
				plan.Summary.Unchanged++
				continue
			}
			plan.Updates = append(plan.Updates, catalog.StoredItem{ID: stored.ID, Item: item})
			continue
		}

		if _, ok := synthesized[id]; ok {
			continue
		}
		if q.families.Has(id) {
			continue
		}
		plan.Creates = append(plan.Creates, item)
	}

	plan.Summary.Synthesized = len(plan.Synthesized)
	plan.Summary.Creates = len(plan.Creates)
	plan.Summary.Updates = len(plan.Updates)

	return plan, nil
}

// applyPlan sends the plan to the store, updates first.
func (q *Queue) applyPlan(ctx context.Context, plan *Plan) error {
	if len(plan.Updates) > 0 {
		if err := q.client.UpdateBatch(ctx, plan.Updates); err != nil {
			return fmt.Errorf("failed to update %d items: %w", len(plan.Updates), err)
		}
	}

	if len(plan.Creates) > 0 {
		if err := q.client.CreateBatch(ctx, plan.Creates); err != nil {
			return fmt.Errorf("failed to create %d items: %w", len(plan.Creates), err)
		}
	}

	return nil
}
