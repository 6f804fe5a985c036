package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// thresholdRow is one metric's threshold definition prepared for rendering.
type thresholdRow struct {
	Kind  schema.MetricKind `json:"kind"`
	Label string            `json:"label"`
	Good  float64           `json:"good"`
	Poor  float64           `json:"poor"`
	Unit  string            `json:"unit"`
}

// thresholdRows returns the threshold table in canonical metric order.
func thresholdRows() []thresholdRow {
	rows := make([]thresholdRow, 0, len(schema.MetricKinds))
	for _, kind := range schema.MetricKinds {
		t := schema.Thresholds[kind]
		rows = append(rows, thresholdRow{
			Kind:  kind,
			Label: t.Label,
			Good:  t.Good,
			Poor:  t.Poor,
			Unit:  t.Unit,
		})
	}
	return rows
}

// WriteThresholds outputs the static threshold reference table.
func WriteThresholds(cfg *contract.Config) error {
	rows := thresholdRows()
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeThresholdsCSV(w, rows)
		}, "CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeThresholdsTable(w, rows)
		}, "table")
	}
}

func writeThresholdsTable(w io.Writer, rows []thresholdRow) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Name", "Good ≤", "Poor >", "Unit"})

	var data [][]string
	for _, row := range rows {
		data = append(data, []string{
			string(row.Kind),
			row.Label,
			strconv.FormatFloat(row.Good, 'f', -1, 64),
			strconv.FormatFloat(row.Poor, 'f', -1, 64),
			row.Unit,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func writeThresholdsCSV(w io.Writer, rows []thresholdRow) error {
	header := []string{"metric", "name", "good", "poor", "unit"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range rows {
			rec := []string{
				string(row.Kind),
				row.Label,
				strconv.FormatFloat(row.Good, 'f', -1, 64),
				strconv.FormatFloat(row.Poor, 'f', -1, 64),
				row.Unit,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
