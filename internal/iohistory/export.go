package iohistory

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vitalscan/vitalscan/internal/parquet"
	"github.com/vitalscan/vitalscan/schema"
)

// exportHeader is the fixed column order of the CSV export.
var exportHeader = []string{"Date", "URL", "Strategy", "Score", "LCP", "FID", "CLS", "TTFB", "FCP", "INP"}

// exportMetricOrder matches the metric columns of exportHeader.
var exportMetricOrder = []schema.MetricKind{
	schema.LCP, schema.FID, schema.CLS, schema.TTFB, schema.FCP, schema.INP,
}

// EncodeCSV serializes history records to CSV text. Values are read
// directly from each record's persisted fields, not recomputed. Every field
// is quoted and embedded quotes are doubled; rows are newline-terminated,
// header first. An empty history produces no output at all, so callers skip
// the export rather than emit a header-only file.
func EncodeCSV(records []schema.AnalysisRecord) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	writeCSVRow(&b, exportHeader)
	for _, record := range records {
		row := []string{
			record.Timestamp.Format(time.RFC3339Nano),
			record.URL,
			string(record.Strategy),
		}
		if record.Metrics.Score != nil {
			row = append(row, strconv.Itoa(*record.Metrics.Score))
		} else {
			row = append(row, "")
		}
		for _, kind := range exportMetricOrder {
			if v := record.Metrics.Value(kind); v != nil {
				row = append(row, strconv.FormatFloat(*v, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		writeCSVRow(&b, row)
	}
	return b.String()
}

// writeCSVRow writes one fully-quoted, newline-terminated row.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// DefaultExportFilename returns a timestamp-qualified filename for an export.
func DefaultExportFilename(format schema.ExportFormat, now time.Time) string {
	return fmt.Sprintf("vitals-history-%s.%s", now.Format("2006-01-02T15-04-05"), format)
}

// ExecuteHistoryExport writes the history to outputFile in the requested
// format. An empty history is a deliberate no-op, not an error. When
// outputFile is empty a timestamp-qualified filename is generated.
func ExecuteHistoryExport(store *HistoryStore, format schema.ExportFormat, outputFile string) error {
	records := store.Load()
	if len(records) == 0 {
		fmt.Println("No history to export.")
		return nil
	}

	if outputFile == "" {
		outputFile = DefaultExportFilename(format, time.Now())
	}

	switch format {
	case schema.ParquetExport:
		rows := parquet.ConvertHistoryRecords(records)
		if err := parquet.WriteHistoryParquet(rows, outputFile); err != nil {
			return fmt.Errorf("failed to write parquet export: %w", err)
		}
	case schema.CSVExport:
		if err := os.WriteFile(outputFile, []byte(EncodeCSV(records)), 0o644); err != nil {
			return fmt.Errorf("failed to write CSV export: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format: %s. Must be csv or parquet", format)
	}

	fmt.Printf("Exported %d records to: %s\n", len(records), outputFile)
	return nil
}
