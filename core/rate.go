package core

import "github.com/vitalscan/vitalscan/schema"

// Rate classifies a metric value against the threshold table. Boundaries are
// inclusive on both sides: a value exactly equal to the good boundary rates
// good, one exactly equal to the poor boundary rates needs-improvement.
// Absent values and unrecognized kinds rate not-applicable.
func Rate(kind schema.MetricKind, value *float64) schema.Rating {
	if value == nil {
		return schema.RatingNotApplicable
	}
	threshold, ok := schema.Thresholds[kind]
	if !ok {
		return schema.RatingNotApplicable
	}
	switch {
	case *value <= threshold.Good:
		return schema.RatingGood
	case *value <= threshold.Poor:
		return schema.RatingNeedsImprovement
	default:
		return schema.RatingPoor
	}
}

// RateScore classifies an aggregate performance score (0-100). The score
// scale is independent of the per-metric threshold table.
func RateScore(score *int) schema.Rating {
	switch {
	case score == nil:
		return schema.RatingNotApplicable
	case *score >= schema.ScoreGoodFloor:
		return schema.RatingGood
	case *score >= schema.ScoreImprovedFloor:
		return schema.RatingNeedsImprovement
	default:
		return schema.RatingPoor
	}
}
