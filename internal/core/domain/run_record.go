package domain

import "time"

// RunRecord summarizes one completed or aborted run. The last record is
// persisted so the next run can report extractor-set drift.
type RunRecord struct {
	// Timestamp is when the run finished.
	Timestamp time.Time `json:"timestamp"`

	// ExtractorFingerprint is the content fingerprint of the discovered
	// extractor set, empty if the run failed before discovery.
	ExtractorFingerprint string `json:"extractor_fingerprint,omitempty"`

	// State is the furthest gate state the run reached.
	State GateState `json:"state"`

	// Success is true only when State is OutputVerified.
	Success bool `json:"success"`

	// Error holds the failing gate's error text for unsuccessful runs.
	Error string `json:"error,omitempty"`
}
