package schema

// PagespeedResponse is the subset of the PageSpeed Insights v5 runPagespeed
// response that vitalscan consumes. Pointer fields distinguish "absent" from
// zero so that malformed or partial responses degrade to missing metrics
// instead of fake ones.
type PagespeedResponse struct {
	LoadingExperience *LoadingExperience `json:"loadingExperience,omitempty"`
	LighthouseResult  *LighthouseResult  `json:"lighthouseResult,omitempty"`
	Error             *APIError          `json:"error,omitempty"`
}

// LoadingExperience is the field-data block: real-user measurements
// aggregated by the provider across actual visits.
type LoadingExperience struct {
	Metrics map[string]FieldMetric `json:"metrics"`
}

// FieldMetric is one field-data entry. Percentile is the provider's
// representative aggregate (commonly the 75th percentile).
type FieldMetric struct {
	Percentile *float64 `json:"percentile,omitempty"`
	Category   string   `json:"category,omitempty"`
}

// LighthouseResult is the lab-data block: a synthetic single-run audit.
type LighthouseResult struct {
	Audits     map[string]Audit `json:"audits"`
	Categories *Categories      `json:"categories,omitempty"`
}

// Audit is one lab audit entry.
type Audit struct {
	NumericValue *float64 `json:"numericValue,omitempty"`
}

// Categories holds the top-level Lighthouse category scores.
type Categories struct {
	Performance *CategoryScore `json:"performance,omitempty"`
}

// CategoryScore holds one category's aggregate score as a 0-1 fraction.
type CategoryScore struct {
	Score *float64 `json:"score,omitempty"`
}

// APIError is the error payload carried by non-success provider responses.
type APIError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Field-data metric identifiers used by the provider.
const (
	FieldLCP     = "LARGEST_CONTENTFUL_PAINT_MS"
	FieldFID     = "FIRST_INPUT_DELAY_MS"
	FieldCLS     = "CUMULATIVE_LAYOUT_SHIFT_SCORE"
	FieldFCP     = "FIRST_CONTENTFUL_PAINT_MS"
	FieldINP     = "INTERACTION_TO_NEXT_PAINT"
	FieldINPExp  = "EXPERIMENTAL_INTERACTION_TO_NEXT_PAINT"
	FieldTTFBExp = "EXPERIMENTAL_TIME_TO_FIRST_BYTE"
)

// Lab audit identifiers used by the provider.
const (
	AuditLCP  = "largest-contentful-paint"
	AuditCLS  = "cumulative-layout-shift"
	AuditFCP  = "first-contentful-paint"
	AuditTTFB = "server-response-time"
)
