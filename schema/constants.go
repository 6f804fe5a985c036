package schema

// Custom string types for type safety.
type (
	// MetricKind identifies one Core Web Vitals metric.
	MetricKind string

	// Rating is the qualitative band for a metric value or aggregate score.
	// Ratings are derived on demand and never stored.
	Rating string

	// Strategy is the device class an analysis simulates or aggregates for.
	Strategy string

	// OutputMode represents the format of the output.
	OutputMode string

	// ExportFormat represents the file format of a history export.
	ExportFormat string

	// DatabaseBackend represents the database backend for history storage.
	DatabaseBackend string
)

// Core Web Vitals metric kinds.
const (
	LCP  MetricKind = "lcp"
	FID  MetricKind = "fid"
	CLS  MetricKind = "cls"
	TTFB MetricKind = "ttfb"
	FCP  MetricKind = "fcp"
	INP  MetricKind = "inp"
)

// MetricKinds lists every metric kind in canonical display and export order.
var MetricKinds = []MetricKind{LCP, FID, CLS, TTFB, FCP, INP}

// Rating bands.
const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs-improvement"
	RatingPoor             Rating = "poor"
	RatingNotApplicable    Rating = "na"
)

// Analysis strategies.
const (
	MobileStrategy  Strategy = "mobile"
	DesktopStrategy Strategy = "desktop"
)

// ValidStrategies is the set of accepted analysis strategies.
var ValidStrategies = map[Strategy]struct{}{
	MobileStrategy:  {},
	DesktopStrategy: {},
}

// Output modes.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// ValidOutputModes is the set of accepted output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// Export formats.
const (
	CSVExport     ExportFormat = "csv" // default
	ParquetExport ExportFormat = "parquet"
)

// ValidExportFormats is the set of accepted export formats.
var ValidExportFormats = map[ExportFormat]struct{}{
	CSVExport:     {},
	ParquetExport: {},
}

// Database backends for history storage.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends is the set of accepted history storage backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
