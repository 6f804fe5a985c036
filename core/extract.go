// Package core holds the metric extraction, rating and analysis logic for vitalscan.
package core

import (
	"math"

	"github.com/vitalscan/vitalscan/schema"
)

// extractRule declares how one metric is pulled out of a provider response.
// Field data wins over lab data; a metric with no usable source stays absent.
type extractRule struct {
	fieldKey       string                // primary field-data identifier
	fieldAltKey    string                // secondary field-data identifier, if any
	fieldTransform func(float64) float64 // nil means identity
	auditKey       string                // lab audit identifier; empty means no lab fallback
	auditTransform func(float64) float64 // nil means identity
}

func roundMs(v float64) float64 { return math.Round(v) }

// CLS field percentiles arrive scaled by 100; convert back to a unitless ratio.
func scaleDownCLS(v float64) float64 { return v / 100 }

// extractRules is the per-metric fallback table. FID and INP carry no lab
// fallback: FID has no reliable lab equivalent and INP has no stable lab audit.
var extractRules = map[schema.MetricKind]extractRule{
	schema.LCP:  {fieldKey: schema.FieldLCP, auditKey: schema.AuditLCP, auditTransform: roundMs},
	schema.FID:  {fieldKey: schema.FieldFID},
	schema.CLS:  {fieldKey: schema.FieldCLS, fieldTransform: scaleDownCLS, auditKey: schema.AuditCLS},
	schema.FCP:  {fieldKey: schema.FieldFCP, auditKey: schema.AuditFCP, auditTransform: roundMs},
	schema.INP:  {fieldKey: schema.FieldINP, fieldAltKey: schema.FieldINPExp},
	schema.TTFB: {fieldKey: schema.FieldTTFBExp, auditKey: schema.AuditTTFB, auditTransform: roundMs},
}

// Extract normalizes a raw provider response into a MetricSet. Every metric
// kind is present in the result, with nil marking an unavailable measurement.
// Malformed or missing nested fields degrade to absent values; this function
// never fails.
func Extract(resp *schema.PagespeedResponse) schema.MetricSet {
	set := schema.MetricSet{Values: make(map[schema.MetricKind]*float64, len(schema.MetricKinds))}
	if resp == nil {
		for _, kind := range schema.MetricKinds {
			set.Values[kind] = nil
		}
		return set
	}

	for _, kind := range schema.MetricKinds {
		set.Values[kind] = extractMetric(resp, extractRules[kind])
	}
	set.Score = extractScore(resp)
	return set
}

// extractMetric applies one rule: field percentile first, its alternate
// identifier second, lab audit last.
func extractMetric(resp *schema.PagespeedResponse, rule extractRule) *float64 {
	if v := fieldPercentile(resp, rule.fieldKey); v != nil {
		return transformed(v, rule.fieldTransform)
	}
	if v := fieldPercentile(resp, rule.fieldAltKey); v != nil {
		return transformed(v, rule.fieldTransform)
	}
	if rule.auditKey == "" {
		return nil
	}
	if v := auditValue(resp, rule.auditKey); v != nil {
		return transformed(v, rule.auditTransform)
	}
	return nil
}

// extractScore converts the 0-1 aggregate performance score to a rounded
// 0-100 integer.
func extractScore(resp *schema.PagespeedResponse) *int {
	lr := resp.LighthouseResult
	if lr == nil || lr.Categories == nil || lr.Categories.Performance == nil {
		return nil
	}
	frac := lr.Categories.Performance.Score
	if frac == nil {
		return nil
	}
	return schema.Int(int(math.Round(*frac * 100)))
}

func fieldPercentile(resp *schema.PagespeedResponse, key string) *float64 {
	if key == "" || resp.LoadingExperience == nil {
		return nil
	}
	metric, ok := resp.LoadingExperience.Metrics[key]
	if !ok {
		return nil
	}
	return metric.Percentile
}

func auditValue(resp *schema.PagespeedResponse, key string) *float64 {
	if resp.LighthouseResult == nil {
		return nil
	}
	audit, ok := resp.LighthouseResult.Audits[key]
	if !ok {
		return nil
	}
	return audit.NumericValue
}

func transformed(v *float64, f func(float64) float64) *float64 {
	if f == nil {
		out := *v
		return &out
	}
	return schema.Float(f(*v))
}
