package checks

import (
	"context"
	"time"

	"catalog-ingest/core/itemapi"
)

// ProbeID is looked up to verify the item API answers.
const ProbeID = "__integrity_probe__"

// ItemAPIReport is the result of an item API check.
type ItemAPIReport struct {
	Reachable bool   `json:"reachable"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
	// MaxConcurrent is the client's admission capacity, zero when unknown.
	MaxConcurrent int `json:"max_concurrent,omitempty"`
}

// limited is implemented by clients gated by an admission limiter.
type limited interface {
	Limiter() *itemapi.Limiter
}

// CheckItemAPI performs one lookup against the item store.
func CheckItemAPI(ctx context.Context, client itemapi.Client) *ItemAPIReport {
	start := time.Now()
	_, err := client.LookupByIDs(ctx, []string{ProbeID})
	report := &ItemAPIReport{LatencyMs: time.Since(start).Milliseconds()}
	if l, ok := client.(limited); ok {
		report.MaxConcurrent = l.Limiter().Capacity()
	}
	if err != nil {
		report.Error = err.Error()
		return report
	}
	report.Reachable = true
	return report
}
