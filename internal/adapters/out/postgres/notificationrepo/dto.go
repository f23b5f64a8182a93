// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence. Type, status and channels are
// stored as wire strings so the notification log reads naturally in SQL.
package notificationrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting workflow
// notifications and their delivery tracking.
type NotificationDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubmissionID uuid.UUID `gorm:"type:uuid;index"`

	Type string `gorm:"index"`

	RecipientID      string
	RecipientRole    string
	RecipientName    string
	RecipientContact string

	Channels pq.StringArray `gorm:"type:text[]"`
	Message  string
	Urgency  string

	Status   string `gorm:"index"`
	Attempts int

	CreatedAt time.Time
	SentAt    *time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	channels := make(pq.StringArray, 0, len(aggregate.Channels()))
	for _, channel := range aggregate.Channels() {
		channels = append(channels, string(channel))
	}

	recipient := aggregate.Recipient()

	return NotificationDTO{
		ID:               aggregate.ID().Bytes(),
		SubmissionID:     aggregate.SubmissionID().Bytes(),
		Type:             aggregate.Type().String(),
		RecipientID:      recipient.ID,
		RecipientRole:    string(recipient.Role),
		RecipientName:    recipient.Name,
		RecipientContact: recipient.Contact,
		Channels:         channels,
		Message:          aggregate.Message(),
		Urgency:          string(aggregate.Urgency()),
		Status:           aggregate.Status().String(),
		Attempts:         aggregate.Attempts(),
		CreatedAt:        aggregate.CreatedAt(),
		SentAt:           aggregate.SentAt(),
	}
}

// toDomain converts a database DTO back to a notification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	submissionID, err := kernel.UUIDFromBytes(dto.SubmissionID[:])
	if err != nil {
		return nil, err
	}

	notificationType, err := notification.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := notification.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	channels := make([]notification.Channel, 0, len(dto.Channels))
	for _, channel := range dto.Channels {
		channels = append(channels, notification.Channel(channel))
	}

	return notification.RestoreNotification(notification.RestoreNotificationParams{
		ID:           id,
		SubmissionID: submissionID,
		Type:         notificationType,
		Recipient: notification.Recipient{
			ID:      dto.RecipientID,
			Role:    notification.Role(dto.RecipientRole),
			Name:    dto.RecipientName,
			Contact: dto.RecipientContact,
		},
		Channels:  channels,
		Message:   dto.Message,
		Urgency:   notification.Urgency(dto.Urgency),
		Status:    status,
		Attempts:  dto.Attempts,
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	})
}
