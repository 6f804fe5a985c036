package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vitalscan/vitalscan/schema"
)

// AbsentPlaceholder is rendered for unavailable measurements.
const AbsentPlaceholder = "N/A"

// Format renders a raw metric value as a display string.
//
// CLS is always rendered to three decimal places with no unit, since it is a
// unitless ratio. Time-based values of a second or more render in seconds
// with two decimals; smaller values render as a rounded integer with the
// metric's unit suffix. Unrecognized kinds fall back to the value's default
// string form.
func Format(kind schema.MetricKind, value *float64) string {
	if value == nil {
		return AbsentPlaceholder
	}
	if kind == schema.CLS {
		return fmt.Sprintf("%.3f", *value)
	}
	threshold, ok := schema.Thresholds[kind]
	if !ok {
		return strconv.FormatFloat(*value, 'f', -1, 64)
	}
	if threshold.Unit == "ms" && *value >= 1000 {
		return fmt.Sprintf("%.2f s", *value/1000)
	}
	if threshold.Unit == "" {
		return strconv.Itoa(int(math.Round(*value)))
	}
	return fmt.Sprintf("%d %s", int(math.Round(*value)), threshold.Unit)
}

// FormatScore renders an aggregate score, or the absent placeholder.
func FormatScore(score *int) string {
	if score == nil {
		return AbsentPlaceholder
	}
	return strconv.Itoa(*score)
}
