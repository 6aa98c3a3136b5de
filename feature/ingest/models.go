package ingest

import "time"

// Run is the status of one extraction run.
type Run struct {
	ID            string     `json:"extract_id"`
	Status        string     `json:"status"`
	Rows          int        `json:"rows"`
	Rejected      int        `json:"rejected"`
	FlushFailures int        `json:"flush_failures"`
	Error         string     `json:"error,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}

// LaunchResponse answers an accepted upload.
type LaunchResponse struct {
	Message string `json:"message"`
	RunID   string `json:"extract_id"`
}
