// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/vitalscan/vitalscan/schema"
)

// PageSpeedClient defines the provider exchange for one analysis.
// This allows the analysis logic to be tested without network access.
type PageSpeedClient interface {
	// RunPagespeed requests a performance analysis of targetURL for the
	// given strategy and returns the decoded provider response.
	RunPagespeed(ctx context.Context, targetURL string, strategy schema.Strategy) (*schema.PagespeedResponse, error)
}

// KeyValueStore defines the durable key->string storage the history store
// persists into. Implementations carry no transactional guarantees; the
// history store copes by rewriting its whole snapshot per mutation.
// This interface allows the storage layer to be mocked for testing.
type KeyValueStore interface {
	// Get returns the stored value for key, or sql.ErrNoRows when missing.
	Get(key string) (string, error)

	// Set inserts or replaces the value for key.
	Set(key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	// Status returns status information about the storage backend.
	Status() (schema.StorageStatus, error)

	// Close closes the underlying connection.
	Close() error
}
