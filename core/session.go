package core

import "github.com/vitalscan/vitalscan/schema"

// SessionResults is the in-memory comparison set for the current run.
// Records are kept oldest-first, opposite of the history store. The list is
// unbounded, never persisted, and discarded when the process exits.
//
// SessionResults is not safe for concurrent mutation; callers funnel results
// from concurrent analyses through a channel and mutate from one goroutine.
type SessionResults struct {
	records []schema.AnalysisRecord
}

// NewSessionResults returns an empty session result list.
func NewSessionResults() *SessionResults {
	return &SessionResults{}
}

// Add appends a record to the end of the list.
func (s *SessionResults) Add(record schema.AnalysisRecord) {
	s.records = append(s.records, record)
}

// RemoveAt deletes one record by position. Out-of-range indexes are a no-op.
func (s *SessionResults) RemoveAt(index int) {
	if index < 0 || index >= len(s.records) {
		return
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
}

// Clear empties the list.
func (s *SessionResults) Clear() {
	s.records = nil
}

// Records returns the current records, oldest first.
func (s *SessionResults) Records() []schema.AnalysisRecord {
	return s.records
}

// Len returns the number of records in the list.
func (s *SessionResults) Len() int {
	return len(s.records)
}
