package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vitalscan/vitalscan/core"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/iohistory"
	"github.com/vitalscan/vitalscan/schema"
)

// WriteHistory outputs the persisted history, most recent first, dispatching
// based on the configured output format.
func WriteHistory(records []schema.AnalysisRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, records)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(w, records, cfg)
		}, "table")
	}
}

// writeHistoryTable generates and writes the reverse-chronological history table.
func writeHistoryTable(w io.Writer, records []schema.AnalysisRecord, cfg *contract.Config) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No history yet. Run 'vitalscan analyze <url>' first.")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Date", "URL", "Strategy", "Score", "Rating"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxURLWidth := getMaxTableURLWidth(cfg)
	var data [][]string
	for i, record := range records {
		rating := core.RateScore(record.Metrics.Score)
		label := contract.GetPlainLabel(rating)
		if cfg.UseColors {
			label = contract.GetColorLabel(rating)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			record.Timestamp.Format(contract.DateTimeFormat),
			contract.TruncateURL(record.URL, maxURLWidth),
			string(record.Strategy),
			core.FormatScore(record.Metrics.Score),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d of up to %d history records\n", len(records), iohistory.HistoryLimit)
	return err
}

// writeHistoryCSV writes the history summary in CSV format. This is the
// display listing; 'vitalscan history export' writes the portable export.
func writeHistoryCSV(w io.Writer, records []schema.AnalysisRecord) error {
	header := []string{"date", "url", "strategy", "score", "rating"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, record := range records {
			rec := []string{
				record.Timestamp.Format(contract.DateTimeFormat),
				record.URL,
				string(record.Strategy),
				core.FormatScore(record.Metrics.Score),
				string(core.RateScore(record.Metrics.Score)),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
