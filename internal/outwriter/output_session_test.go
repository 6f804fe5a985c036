package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

func plainConfig() *contract.Config {
	return &contract.Config{
		Strategy:  schema.MobileStrategy,
		Output:    schema.TextOut,
		UseColors: false,
		Width:     120,
	}
}

func sampleRecord(url string, score int) schema.AnalysisRecord {
	return schema.AnalysisRecord{
		URL:      url,
		Strategy: schema.MobileStrategy,
		Metrics: schema.MetricSet{
			Values: map[schema.MetricKind]*float64{
				schema.LCP:  schema.Float(1200),
				schema.CLS:  schema.Float(0.05),
				schema.TTFB: schema.Float(640),
			},
			Score: schema.Int(score),
		},
		Timestamp: time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestWriteSessionTable(t *testing.T) {
	var buf bytes.Buffer
	records := []schema.AnalysisRecord{
		sampleRecord("https://one.example", 95),
		sampleRecord("https://two.example", 42),
	}

	require.NoError(t, writeSessionTable(&buf, records, plainConfig()))
	out := buf.String()

	assert.Contains(t, out, "https://one.example")
	assert.Contains(t, out, "https://two.example")
	assert.Contains(t, out, contract.GoodValue)
	assert.Contains(t, out, contract.PoorValue)
	assert.Contains(t, out, "1.20 s")
	assert.Contains(t, out, "0.050")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "Analyzed 2 page(s) with strategy mobile")
}

func TestWriteSessionCSV(t *testing.T) {
	var buf bytes.Buffer
	records := []schema.AnalysisRecord{sampleRecord("https://one.example", 95)}

	require.NoError(t, writeSessionCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	require.Len(t, header, 4+2*len(schema.MetricKinds))
	assert.Equal(t, []string{"url", "strategy", "score", "score_rating"}, header[:4])
	assert.Equal(t, "lcp", header[4])
	assert.Equal(t, "lcp_rating", header[5])

	row := rows[1]
	assert.Equal(t, "https://one.example", row[0])
	assert.Equal(t, "mobile", row[1])
	assert.Equal(t, "95", row[2])
	assert.Equal(t, "good", row[3])
	assert.Equal(t, "1.20 s", row[4])
	assert.Equal(t, "good", row[5])
}

func TestWriteSessionJSON(t *testing.T) {
	var buf bytes.Buffer
	records := []schema.AnalysisRecord{sampleRecord("https://one.example", 95)}

	require.NoError(t, writeSessionJSON(&buf, records))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "https://one.example", decoded[0]["url"])
	assert.Equal(t, "good", decoded[0]["score_rating"])

	details, ok := decoded[0]["details"].(map[string]any)
	require.True(t, ok)
	require.Len(t, details, len(schema.MetricKinds))

	lcp, ok := details["lcp"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1200.0, lcp["value"])
	assert.Equal(t, "1.20 s", lcp["formatted"])
	assert.Equal(t, "good", lcp["rating"])

	fid, ok := details["fid"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, fid["value"])
	assert.Equal(t, "N/A", fid["formatted"])
	assert.Equal(t, "na", fid["rating"])
}

func TestMetricCellPlain(t *testing.T) {
	assert.Equal(t, "1.20 s", metricCell(schema.LCP, schema.Float(1200), false))
	assert.Equal(t, "N/A", metricCell(schema.LCP, nil, false))
}
