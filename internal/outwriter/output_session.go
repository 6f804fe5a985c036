package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/vitalscan/vitalscan/core"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// WriteSessionResults outputs the current comparison set, dispatching based
// on the configured output format.
func WriteSessionResults(records []schema.AnalysisRecord, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSessionJSON(w, records)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSessionCSV(w, records)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSessionTable(w, records, cfg)
		}, "table")
	}
}

// metricCell renders one metric value, colored by its rating when enabled.
func metricCell(kind schema.MetricKind, value *float64, useColors bool) string {
	text := core.Format(kind, value)
	if !useColors {
		return text
	}
	switch core.Rate(kind, value) {
	case schema.RatingGood:
		return contract.GoodColor.Sprint(text)
	case schema.RatingNeedsImprovement:
		return contract.ImprovedColor.Sprint(text)
	case schema.RatingPoor:
		return contract.PoorColor.Sprint(text)
	default:
		return contract.NAColor.Sprint(text)
	}
}

// writeSessionTable generates and writes the human-readable comparison table.
func writeSessionTable(w io.Writer, records []schema.AnalysisRecord, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"URL", "Strategy", "Score", "Rating", "LCP", "FID", "CLS", "TTFB", "FCP", "INP"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxURLWidth := getMaxTableURLWidth(cfg)
	var data [][]string
	for _, record := range records {
		scoreRating := core.RateScore(record.Metrics.Score)
		scoreLabel := contract.GetPlainLabel(scoreRating)
		if cfg.UseColors {
			scoreLabel = contract.GetColorLabel(scoreRating)
		}
		row := []string{
			contract.TruncateURL(record.URL, maxURLWidth),
			string(record.Strategy),
			core.FormatScore(record.Metrics.Score),
			scoreLabel,
		}
		for _, kind := range schema.MetricKinds {
			row = append(row, metricCell(kind, record.Metrics.Value(kind), cfg.UseColors))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Analyzed %d page(s) with strategy %s\n", len(records), cfg.Strategy)
	return err
}

// writeSessionCSV writes the comparison set in CSV format, one rating
// column next to each metric column.
func writeSessionCSV(w io.Writer, records []schema.AnalysisRecord) error {
	header := []string{"url", "strategy", "score", "score_rating"}
	for _, kind := range schema.MetricKinds {
		header = append(header, string(kind), string(kind)+"_rating")
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, record := range records {
			rec := []string{
				record.URL,
				string(record.Strategy),
				core.FormatScore(record.Metrics.Score),
				string(core.RateScore(record.Metrics.Score)),
			}
			for _, kind := range schema.MetricKinds {
				value := record.Metrics.Value(kind)
				rec = append(rec, core.Format(kind, value), string(core.Rate(kind, value)))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSessionJSON writes the comparison set in JSON format, enriched with
// derived ratings and formatted values per metric.
func writeSessionJSON(w io.Writer, records []schema.AnalysisRecord) error {
	type jsonMetric struct {
		Value     *float64      `json:"value"`
		Formatted string        `json:"formatted"`
		Rating    schema.Rating `json:"rating"`
	}
	type jsonRecord struct {
		schema.AnalysisRecord
		ScoreRating schema.Rating                    `json:"score_rating"`
		Details     map[schema.MetricKind]jsonMetric `json:"details"`
	}

	output := make([]jsonRecord, len(records))
	for i, record := range records {
		details := make(map[schema.MetricKind]jsonMetric, len(schema.MetricKinds))
		for _, kind := range schema.MetricKinds {
			value := record.Metrics.Value(kind)
			details[kind] = jsonMetric{
				Value:     value,
				Formatted: core.Format(kind, value),
				Rating:    core.Rate(kind, value),
			}
		}
		output[i] = jsonRecord{
			AnalysisRecord: record,
			ScoreRating:    core.RateScore(record.Metrics.Score),
			Details:        details,
		}
	}
	return writeJSON(w, output)
}
