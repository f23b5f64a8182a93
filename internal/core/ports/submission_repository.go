package ports

import (
	"context"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
)

// SubmissionRepository defines the persistence contract for BOL submission
// aggregates. Submissions are append-only: they are added once and updated
// in place, never deleted.
type SubmissionRepository interface {
	// Add persists a new submission aggregate to storage.
	Add(ctx context.Context, aggregate *bol.Submission) error

	// Update persists changes to an existing submission aggregate.
	Update(ctx context.Context, aggregate *bol.Submission) error

	// Get retrieves a submission aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*bol.Submission, error)

	// GetForUpdate retrieves a submission with a row-level lock so that
	// concurrent approvals of the same submission serialize. Must be called
	// inside an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*bol.Submission, error)
}
