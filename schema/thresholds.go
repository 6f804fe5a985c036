package schema

// Threshold holds the published classification boundaries and display rules
// for one metric kind. Boundaries are inclusive: a value exactly equal to
// Good still rates as good. Good < Poor for every kind.
type Threshold struct {
	Label string  // Human-readable metric name
	Good  float64 // Upper bound of the "good" band
	Poor  float64 // Upper bound of the "needs-improvement" band
	Unit  string  // Display unit suffix; empty for dimensionless metrics
}

// Thresholds is the static reference table of per-metric boundaries,
// per the published Core Web Vitals thresholds.
var Thresholds = map[MetricKind]Threshold{
	LCP:  {Label: "Largest Contentful Paint", Good: 2500, Poor: 4000, Unit: "ms"},
	FID:  {Label: "First Input Delay", Good: 100, Poor: 300, Unit: "ms"},
	CLS:  {Label: "Cumulative Layout Shift", Good: 0.1, Poor: 0.25, Unit: ""},
	TTFB: {Label: "Time to First Byte", Good: 800, Poor: 1800, Unit: "ms"},
	FCP:  {Label: "First Contentful Paint", Good: 1800, Poor: 3000, Unit: "ms"},
	INP:  {Label: "Interaction to Next Paint", Good: 200, Poor: 500, Unit: "ms"},
}

// Aggregate Lighthouse score boundaries (0-100 scale, independent of the
// per-metric table).
const (
	ScoreGoodFloor     = 90
	ScoreImprovedFloor = 50
)
