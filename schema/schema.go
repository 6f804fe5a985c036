// Package schema has models, constants and provider shapes for all parts of vitalscan.
package schema

import "time"

// MetricSet holds one optional value per Core Web Vitals metric, plus an
// optional aggregate performance score (0-100). A nil entry means the
// measurement was unavailable, which is distinct from a zero value.
// A MetricSet is produced once per analysis and never mutated afterwards.
type MetricSet struct {
	Values map[MetricKind]*float64 `json:"values"`
	Score  *int                    `json:"score,omitempty"`
}

// Value returns the stored value for a metric kind, or nil when absent.
func (m MetricSet) Value(kind MetricKind) *float64 {
	return m.Values[kind]
}

// AnalysisRecord is one completed page analysis. Records are immutable and
// never merged; the session list and the history store each own their own
// copy with an independent lifecycle.
type AnalysisRecord struct {
	URL       string    `json:"url"`
	Strategy  Strategy  `json:"strategy"`
	Metrics   MetricSet `json:"metrics"`
	Timestamp time.Time `json:"timestamp"`
}

// StorageStatus holds status information about the history storage backend.
type StorageStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	Records         int       `json:"records"`
	SnapshotBytes   int64     `json:"snapshot_bytes"`
	NewestTimestamp time.Time `json:"newest_timestamp,omitzero"`
	OldestTimestamp time.Time `json:"oldest_timestamp,omitzero"`
}

// Float returns a pointer to v. Convenience for building optional metric values.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v. Convenience for building optional scores.
func Int(v int) *int { return &v }
