package ports

import (
	"context"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for workflow
// notifications and their delivery tracking.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists delivery status changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetAllFailed retrieves failed notifications that have not exhausted
	// their attempt budget. Used by the redelivery job.
	GetAllFailed(ctx context.Context) ([]*notification.Notification, error)
}
