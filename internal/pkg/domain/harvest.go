package domain

import "time"

const (
	OutcomeImported    string = "imported"
	OutcomeUpdated     string = "updated"
	OutcomeUnchanged   string = "unchanged"
	OutcomeFailed      string = "failed"
	OutcomeSkipped     string = "skipped"
	OutcomeInterrupted string = "interrupted"
)

// HarvestOutcome is what happened to one item of a harvest or sync run.
type HarvestOutcome struct {
	RunID   string    `json:"run_id"`
	Index   int       `json:"index"`
	Item    string    `json:"item"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
	Time    time.Time `json:"time"`
}
