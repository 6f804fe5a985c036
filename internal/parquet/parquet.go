// Package parquet exports analysis history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/vitalscan/vitalscan/schema"
)

// HistoryRow is one analysis record flattened for Parquet export. Optional
// fields stay nullable so absent measurements survive the round trip.
type HistoryRow struct {
	// Timestamp is when the analysis ran (stored as TIMESTAMP with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// URL is the analyzed page address
	URL string `parquet:"url,snappy"`

	// Strategy is the device class analyzed (mobile or desktop)
	Strategy string `parquet:"strategy,snappy"`

	// Score is the aggregate performance score, 0-100 (nullable)
	Score *int32 `parquet:"score,optional,snappy"`

	// LCPMs is Largest Contentful Paint in milliseconds (nullable)
	LCPMs *float64 `parquet:"lcp_ms,optional,snappy"`

	// FIDMs is First Input Delay in milliseconds (nullable)
	FIDMs *float64 `parquet:"fid_ms,optional,snappy"`

	// CLS is the Cumulative Layout Shift ratio (nullable)
	CLS *float64 `parquet:"cls,optional,snappy"`

	// TTFBMs is Time to First Byte in milliseconds (nullable)
	TTFBMs *float64 `parquet:"ttfb_ms,optional,snappy"`

	// FCPMs is First Contentful Paint in milliseconds (nullable)
	FCPMs *float64 `parquet:"fcp_ms,optional,snappy"`

	// INPMs is Interaction to Next Paint in milliseconds (nullable)
	INPMs *float64 `parquet:"inp_ms,optional,snappy"`
}

// ConvertHistoryRecords converts schema.AnalysisRecord values to HistoryRow
// values for Parquet export.
func ConvertHistoryRecords(records []schema.AnalysisRecord) []HistoryRow {
	rows := make([]HistoryRow, 0, len(records))
	for _, record := range records {
		row := HistoryRow{
			Timestamp: record.Timestamp,
			URL:       record.URL,
			Strategy:  string(record.Strategy),
			LCPMs:     record.Metrics.Value(schema.LCP),
			FIDMs:     record.Metrics.Value(schema.FID),
			CLS:       record.Metrics.Value(schema.CLS),
			TTFBMs:    record.Metrics.Value(schema.TTFB),
			FCPMs:     record.Metrics.Value(schema.FCP),
			INPMs:     record.Metrics.Value(schema.INP),
		}
		if record.Metrics.Score != nil {
			score := int32(*record.Metrics.Score)
			row.Score = &score
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteHistoryParquet writes a slice of HistoryRow structs to a Parquet file.
func WriteHistoryParquet(rows []HistoryRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the HistoryRow struct tags
	writer := parquet.NewGenericWriter[HistoryRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
