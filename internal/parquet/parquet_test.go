package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalscan/vitalscan/schema"
)

func TestHistoryRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	rowSchema := parquet.SchemaOf(new(HistoryRow))
	require.NotNil(t, rowSchema)

	expectedColumns := []string{
		"timestamp",
		"url",
		"strategy",
		"score",
		"lcp_ms",
		"fid_ms",
		"cls",
		"ttfb_ms",
		"fcp_ms",
		"inp_ms",
	}

	for _, colName := range expectedColumns {
		col, ok := rowSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertHistoryRecords(t *testing.T) {
	records := []schema.AnalysisRecord{
		{
			URL:      "https://full.example",
			Strategy: schema.MobileStrategy,
			Metrics: schema.MetricSet{
				Values: map[schema.MetricKind]*float64{
					schema.LCP:  schema.Float(2600),
					schema.FID:  schema.Float(40),
					schema.CLS:  schema.Float(0.15),
					schema.TTFB: schema.Float(640),
					schema.FCP:  schema.Float(1500),
					schema.INP:  schema.Float(180),
				},
				Score: schema.Int(88),
			},
			Timestamp: time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			URL:      "https://sparse.example",
			Strategy: schema.DesktopStrategy,
			Metrics: schema.MetricSet{
				Values: map[schema.MetricKind]*float64{},
			},
			Timestamp: time.Date(2026, 8, 15, 9, 31, 0, 0, time.UTC),
		},
	}

	rows := ConvertHistoryRecords(records)
	require.Len(t, rows, 2)

	full := rows[0]
	assert.Equal(t, "https://full.example", full.URL)
	assert.Equal(t, "mobile", full.Strategy)
	require.NotNil(t, full.Score)
	assert.Equal(t, int32(88), *full.Score)
	require.NotNil(t, full.LCPMs)
	assert.Equal(t, 2600.0, *full.LCPMs)
	require.NotNil(t, full.CLS)
	assert.InDelta(t, 0.15, *full.CLS, 1e-9)

	sparse := rows[1]
	assert.Equal(t, "https://sparse.example", sparse.URL)
	assert.Nil(t, sparse.Score)
	assert.Nil(t, sparse.LCPMs)
	assert.Nil(t, sparse.FIDMs)
	assert.Nil(t, sparse.CLS)
	assert.Nil(t, sparse.TTFBMs)
	assert.Nil(t, sparse.FCPMs)
	assert.Nil(t, sparse.INPMs)
}

func TestWriteHistoryParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "history.parquet")

	now := time.Now().UTC()
	score := int32(95)
	lcp := 1200.0
	rows := []HistoryRow{
		{Timestamp: now, URL: "https://one.example", Strategy: "mobile", Score: &score, LCPMs: &lcp},
		{Timestamp: now.Add(time.Minute), URL: "https://two.example", Strategy: "desktop"},
	}

	require.NoError(t, WriteHistoryParquet(rows, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[HistoryRow](file)
	defer reader.Close()

	readData := make([]HistoryRow, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(rows), n)

	assert.Equal(t, "https://one.example", readData[0].URL)
	require.NotNil(t, readData[0].Score)
	assert.Equal(t, score, *readData[0].Score)
	require.NotNil(t, readData[0].LCPMs)
	assert.Equal(t, lcp, *readData[0].LCPMs)
	assert.WithinDuration(t, now, readData[0].Timestamp, time.Nanosecond)

	assert.Nil(t, readData[1].Score)
	assert.Nil(t, readData[1].LCPMs)
}

func TestWriteHistoryParquet_EmptyData(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")

	require.NoError(t, WriteHistoryParquet([]HistoryRow{}, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0), "Output file should contain schema even if empty")
}

func TestWriteHistoryParquet_InvalidPath(t *testing.T) {
	err := WriteHistoryParquet([]HistoryRow{}, "/nonexistent/directory/output.parquet")
	require.Error(t, err)
}
