package core

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// AnalysisOutcome is the result of one page analysis. Either Record is
// populated or Err explains the provider failure.
type AnalysisOutcome struct {
	URL    string
	Record schema.AnalysisRecord
	Err    error
}

// AnalyzePage runs one analysis against the provider and normalizes the
// response into an immutable record. Provider failures are returned as-is;
// a malformed but successful response still yields a record, with the
// affected metrics absent.
func AnalyzePage(ctx context.Context, client contract.PageSpeedClient, targetURL string, strategy schema.Strategy) (schema.AnalysisRecord, error) {
	resp, err := client.RunPagespeed(ctx, targetURL, strategy)
	if err != nil {
		return schema.AnalysisRecord{}, err
	}
	return schema.AnalysisRecord{
		URL:       targetURL,
		Strategy:  strategy,
		Metrics:   Extract(resp),
		Timestamp: time.Now().UTC(),
	}, nil
}

// RunAnalyses fans out one analysis per URL, bounded by workers, and returns
// outcomes in completion order. Analyses are independent: no coordination,
// no shared failure, no cancellation of in-flight siblings.
func RunAnalyses(ctx context.Context, client contract.PageSpeedClient, urls []string, strategy schema.Strategy, workers int) []AnalysisOutcome {
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	outcomes := make(chan AnalysisOutcome, len(urls))

	var wg sync.WaitGroup
	for _, u := range urls {
		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := AnalyzePage(ctx, client, target, strategy)
			outcomes <- AnalysisOutcome{URL: target, Record: record, Err: err}
		}(u)
	}
	wg.Wait()
	close(outcomes)

	collected := make([]AnalysisOutcome, 0, len(urls))
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	return collected
}

// NormalizeURL fills in a https scheme when the user omits one. Empty input
// stays empty so callers can skip it silently.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}
