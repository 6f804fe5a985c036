package iohistory

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalscan/vitalscan/schema"
)

func testRecord(url string, offset int) schema.AnalysisRecord {
	return schema.AnalysisRecord{
		URL:      url,
		Strategy: schema.MobileStrategy,
		Metrics: schema.MetricSet{
			Values: map[schema.MetricKind]*float64{
				schema.LCP: schema.Float(1200),
			},
			Score: schema.Int(95),
		},
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(offset) * time.Minute),
	}
}

func TestHistoryAppendFrontInsert(t *testing.T) {
	store := NewHistoryStore(NewMemoryKeyValueStore())

	require.NoError(t, store.Append(testRecord("https://one.example", 0)))
	require.NoError(t, store.Append(testRecord("https://two.example", 1)))
	require.NoError(t, store.Append(testRecord("https://three.example", 2)))

	records := store.Load()
	require.Len(t, records, 3)
	assert.Equal(t, "https://three.example", records[0].URL)
	assert.Equal(t, "https://two.example", records[1].URL)
	assert.Equal(t, "https://one.example", records[2].URL)
}

func TestHistoryCapEvictsOldest(t *testing.T) {
	store := NewHistoryStore(NewMemoryKeyValueStore())

	for i := 0; i < HistoryLimit+5; i++ {
		require.NoError(t, store.Append(testRecord(fmt.Sprintf("https://site-%d.example", i), i)))
	}

	records := store.Load()
	require.Len(t, records, HistoryLimit)
	assert.Equal(t, fmt.Sprintf("https://site-%d.example", HistoryLimit+4), records[0].URL)
	assert.Equal(t, "https://site-5.example", records[HistoryLimit-1].URL)
}

func TestHistoryLoadEmpty(t *testing.T) {
	store := NewHistoryStore(NewMemoryKeyValueStore())
	assert.Empty(t, store.Load())
}

func TestHistoryCorruptDataYieldsEmpty(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	require.NoError(t, kv.Set(historyKey, "{not valid json"))

	store := NewHistoryStore(kv)
	assert.Empty(t, store.Load())

	// An append after corruption starts a fresh history.
	require.NoError(t, store.Append(testRecord("https://fresh.example", 0)))
	records := store.Load()
	require.Len(t, records, 1)
	assert.Equal(t, "https://fresh.example", records[0].URL)
}

func TestHistoryRoundTripPreservesAbsence(t *testing.T) {
	store := NewHistoryStore(NewMemoryKeyValueStore())

	record := testRecord("https://partial.example", 0)
	record.Metrics.Values[schema.FID] = nil
	record.Metrics.Score = nil
	require.NoError(t, store.Append(record))

	loaded := store.Load()
	require.Len(t, loaded, 1)
	assert.Nil(t, loaded[0].Metrics.Score)
	assert.Nil(t, loaded[0].Metrics.Value(schema.FID))
	require.NotNil(t, loaded[0].Metrics.Value(schema.LCP))
	assert.Equal(t, 1200.0, *loaded[0].Metrics.Value(schema.LCP))
}

func TestHistoryClear(t *testing.T) {
	store := NewHistoryStore(NewMemoryKeyValueStore())
	require.NoError(t, store.Append(testRecord("https://one.example", 0)))
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Load())

	// Clearing again is fine.
	require.NoError(t, store.Clear())
}

func TestHistoryStatus(t *testing.T) {
	store := NewHistoryStore(NewMemoryKeyValueStore())

	status, err := store.Status()
	require.NoError(t, err)
	assert.Equal(t, 0, status.Records)

	oldest := testRecord("https://one.example", 0)
	newest := testRecord("https://two.example", 10)
	require.NoError(t, store.Append(oldest))
	require.NoError(t, store.Append(newest))

	status, err = store.Status()
	require.NoError(t, err)
	assert.Equal(t, 2, status.Records)
	assert.Equal(t, newest.Timestamp, status.NewestTimestamp)
	assert.Equal(t, oldest.Timestamp, status.OldestTimestamp)
}

// The persisted value is always one complete JSON snapshot of the whole list.
func TestHistorySnapshotShape(t *testing.T) {
	kv := NewMemoryKeyValueStore()
	store := NewHistoryStore(kv)
	require.NoError(t, store.Append(testRecord("https://one.example", 0)))
	require.NoError(t, store.Append(testRecord("https://two.example", 1)))

	raw, err := kv.Get(historyKey)
	require.NoError(t, err)

	var snapshot []schema.AnalysisRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))
	assert.Len(t, snapshot, 2)
}
