// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SubmissionRepoFactory provides access to the submission repository
	// within a transaction.
	SubmissionRepoFactory interface {
		SubmissionRepository() ports.SubmissionRepository
	}

	// NotificationRepoFactory provides access to the notification repository
	// within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// UoW manages transactions across the submission and notification
	// aggregates. Workflow commands persist the state change and the pending
	// notification in the same transaction.
	UoW interface {
		TxManager
		SubmissionRepoFactory
		NotificationRepoFactory
	}

	// UoWFactory creates new unit of work instances for workflow commands.
	UoWFactory interface {
		Create() UoW
	}
)

// Notifier delivers a committed pending notification through the messaging
// gateway and records the delivery outcome. Dispatch happens after the
// workflow transaction commits: a gateway failure never rolls back workflow
// progress.
type Notifier interface {
	Dispatch(ctx context.Context, aggregate *notification.Notification)
}
