package reconcile

import "catalog-ingest/core/catalog"

// DefaultBatchSize is the flush threshold used when Options.BatchSize is unset.
const DefaultBatchSize = 100

// State is the lifecycle state of a Queue.
type State int

const (
	// StateIdle means no items are pending.
	StateIdle State = iota
	// StateFilling means items are accumulating below the threshold.
	StateFilling
	// StateFlushing means a flush is reconciling with the store.
	StateFlushing
)

// String returns the lower case name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFilling:
		return "filling"
	case StateFlushing:
		return "flushing"
	default:
		return "unknown"
	}
}

// Trigger identifies what started a flush.
type Trigger string

const (
	// TriggerThreshold is a flush started by Add reaching the batch size.
	TriggerThreshold Trigger = "threshold"
	// TriggerDrain is an explicit flush, typically at end of stream.
	TriggerDrain Trigger = "drain"
)

// Options controls queue behavior.
type Options struct {
	// BatchSize is the number of distinct pending ids that triggers a flush.
	BatchSize int
}

// Plan contains the writes computed by one flush.
type Plan struct {
	// Updates holds pending items whose stored record differs, carrying the
	// store-assigned id.
	Updates []catalog.StoredItem `json:"updates"`

	// Creates holds synthesized families followed by new pending items.
	Creates []catalog.Item `json:"creates"`

	// Synthesized holds the placeholder families created by this flush.
	// Every entry is also part of Creates.
	Synthesized []catalog.Item `json:"synthesized"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a flush.
type PlanSummary struct {
	// Pending is the number of distinct pending items.
	Pending int `json:"pending"`

	// PendingFamilies is the number of family ids that needed resolution.
	PendingFamilies int `json:"pending_families"`

	// Existing counts pending items already known to the store.
	Existing int `json:"existing"`

	// Unchanged counts existing items whose business fields match.
	Unchanged int `json:"unchanged"`

	// Synthesized counts placeholder families created.
	Synthesized int `json:"synthesized"`

	// Creates counts items sent to bulk create.
	Creates int `json:"creates"`

	// Updates counts items sent to bulk update.
	Updates int `json:"updates"`
}
