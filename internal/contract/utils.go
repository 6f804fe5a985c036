package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/vitalscan/vitalscan/schema"
)

// Rating display constants.
const (
	GoodValue     = "Good"
	ImprovedValue = "Needs Improvement"
	PoorValue     = "Poor"
	NAValue       = "N/A"
)

// Color variables for console output.
var (
	GoodColor     = color.New(color.FgGreen, color.Bold) // goodColor signals a passing metric.
	ImprovedColor = color.New(color.FgYellow)            // improvedColor signals standard caution, not bold.
	PoorColor     = color.New(color.FgRed, color.Bold)   // poorColor signals a failing metric.
	NAColor       = color.New(color.Faint)               // naColor de-emphasizes unavailable measurements.
)

// GetPlainLabel returns the plain text label for a rating. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainLabel(rating schema.Rating) string {
	switch rating {
	case schema.RatingGood:
		return GoodValue
	case schema.RatingNeedsImprovement:
		return ImprovedValue
	case schema.RatingPoor:
		return PoorValue
	default:
		return NAValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(rating schema.Rating) string {
	text := GetPlainLabel(rating)

	switch text {
	case GoodValue:
		return GoodColor.Sprint(text)
	case ImprovedValue:
		return ImprovedColor.Sprint(text)
	case PoorValue:
		return PoorColor.Sprint(text)
	default: // "N/A"
		return NAColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateURL shortens a URL for table display, keeping the tail visible
// since the path end usually matters most.
func TruncateURL(url string, maxWidth int) string {
	if maxWidth <= 3 || len(url) <= maxWidth {
		return url
	}
	return "..." + url[len(url)-(maxWidth-3):]
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
}
