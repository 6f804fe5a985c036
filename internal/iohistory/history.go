package iohistory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// HistoryLimit is the maximum number of records the history ever holds.
// Chosen to keep the serialized snapshot well under the storage backend's
// realistic capacity ceiling.
const HistoryLimit = 50

// historyKey is the storage key holding the full history snapshot.
const historyKey = "vitals_history"

// HistoryStore is an ordered, capacity-bounded log of past analyses,
// most recent first. The whole snapshot is rewritten on every mutation, so
// the persisted value is always one complete, valid history rather than a
// mix of two writes. The mutex makes each load-mutate-persist cycle a single
// critical section.
type HistoryStore struct {
	mu sync.Mutex
	kv contract.KeyValueStore
}

// NewHistoryStore returns a history store backed by the given storage
// handle. The handle is explicit rather than process-global so tests can
// substitute a double.
func NewHistoryStore(kv contract.KeyValueStore) *HistoryStore {
	return &HistoryStore{kv: kv}
}

// Load reads the entire persisted history, most recent first. Missing or
// corrupt durable data yields an empty history: persisted history is
// best-effort, not authoritative, so corruption is never surfaced.
func (h *HistoryStore) Load() []schema.AnalysisRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loadLocked()
}

func (h *HistoryStore) loadLocked() []schema.AnalysisRecord {
	raw, err := h.kv.Get(historyKey)
	if err != nil {
		return nil
	}
	var records []schema.AnalysisRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil
	}
	return records
}

// Append inserts a record at the front, evicts from the tail past
// HistoryLimit, and rewrites the whole persisted snapshot.
func (h *HistoryStore) Append(record schema.AnalysisRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := append([]schema.AnalysisRecord{record}, h.loadLocked()...)
	if len(records) > HistoryLimit {
		records = records[:HistoryLimit]
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}
	if err := h.kv.Set(historyKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist history: %w", err)
	}
	return nil
}

// Clear removes the persisted history in its entirety.
func (h *HistoryStore) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.kv.Delete(historyKey); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// Status combines backend storage facts with history record counts and
// the newest/oldest record timestamps.
func (h *HistoryStore) Status() (schema.StorageStatus, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	status, err := h.kv.Status()
	if err != nil {
		return status, err
	}

	records := h.loadLocked()
	status.Records = len(records)
	if len(records) > 0 {
		status.NewestTimestamp = records[0].Timestamp
		status.OldestTimestamp = records[len(records)-1].Timestamp
	}
	return status, nil
}
