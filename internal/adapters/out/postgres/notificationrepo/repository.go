package notificationrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/pkg/errs"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB, tracker aggregateTracker) *GormNotificationRepository {
	return &GormNotificationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new notification to the database.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves delivery status changes to the database.
func (r *GormNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "attempts", "sent_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a notification by ID.
func (r *GormNotificationRepository) Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto NotificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("notification", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllFailed retrieves failed notifications that still have attempt
// budget, oldest first.
func (r *GormNotificationRepository) GetAllFailed(ctx context.Context) ([]*notification.Notification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND attempts < ?", notification.Failed.String(), notification.MaxAttempts).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
