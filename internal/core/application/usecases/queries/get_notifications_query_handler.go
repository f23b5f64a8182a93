package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"freightflow/internal/core/domain/model/kernel"
)

// GetNotificationsQueryHandler retrieves the notification log from the
// database.
type GetNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetNotificationsQueryHandler creates a handler for notification log
// queries.
func NewGetNotificationsQueryHandler(db *gorm.DB) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{db: db}
}

// Handle executes the query, newest notifications first.
func (h GetNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetNotificationsQuery,
) ([]GetNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			submission_id,
			type,
			recipient_id,
			recipient_role,
			recipient_name,
			channels,
			message,
			urgency,
			status,
			attempts,
			created_at,
			sent_at
		FROM notifications
	`
	args := make([]any, 0, 1)
	if submissionID := query.SubmissionID(); submissionID != nil {
		sqlQuery += " WHERE submission_id = ?"
		args = append(args, submissionID.Bytes())
	}
	sqlQuery += " ORDER BY created_at DESC"

	notifications := make([]GetNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetNotificationsQueryResponse
		var id, submissionID uuid.UUID
		var channels pq.StringArray

		err = rows.Scan(
			&id,
			&submissionID,
			&resp.Type,
			&resp.RecipientID,
			&resp.RecipientRole,
			&resp.RecipientName,
			&channels,
			&resp.Message,
			&resp.Urgency,
			&resp.Status,
			&resp.Attempts,
			&resp.CreatedAt,
			&resp.SentAt,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID

		parentID, idErr := kernel.UUIDFromBytes(submissionID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.SubmissionID = parentID

		resp.Channels = []string(channels)
		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
