package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery retrieves the notification log, newest first,
// optionally narrowed to one submission.
type GetNotificationsQuery struct {
	submissionID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNotificationsQuery creates a query for the full notification log.
func NewGetNotificationsQuery() GetNotificationsQuery {
	return GetNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetNotificationsQueryForSubmission creates a query for one
// submission's notifications.
func NewGetNotificationsQueryForSubmission(submissionID kernel.UUID) (GetNotificationsQuery, error) {
	if err := submissionID.Validate(); err != nil {
		return GetNotificationsQuery{}, err
	}

	return GetNotificationsQuery{
		submissionID: &submissionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

// SubmissionID returns the submission filter, or nil for the full log.
func (q GetNotificationsQuery) SubmissionID() *kernel.UUID {
	return q.submissionID
}

// GetNotificationsQueryResponse is one row of the notification log.
type GetNotificationsQueryResponse struct {
	ID           kernel.UUID
	SubmissionID kernel.UUID

	Type          string
	RecipientID   string
	RecipientRole string
	RecipientName string

	Channels []string
	Message  string
	Urgency  string

	Status   string
	Attempts int

	CreatedAt time.Time
	SentAt    *time.Time
}
