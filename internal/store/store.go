// Package store provides the keyed persistence layer for submission records.
// Implementations are treated as black-box keyed stores: a single
// unconditional insert, a point lookup, and an unbounded scan.
package store

import (
	"context"

	"github.com/Tanmaydeep-Singh/AWS-Case-Study-2/internal/models"
)

// RecordStore is the interface both the intake and retrieval paths use.
// Get returns (nil, nil) when no record has the given identifier; absence
// is not an error. Put is a plain insert and performs no validation,
// retries, or conditional writes.
type RecordStore interface {
	// Put inserts a submission record
	Put(ctx context.Context, sub *models.Submission) error

	// Get retrieves a submission by its identifier, nil when absent
	Get(ctx context.Context, id string) (*models.Submission, error)

	// ScanAll retrieves every stored submission in store-defined order
	ScanAll(ctx context.Context) ([]*models.Submission, error)

	// Close releases any underlying resources
	Close() error
}
