package queries

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var ErrGetSubmissionQueryIsNotConstructed = errors.New(
	"GetSubmissionQuery must be created via NewGetSubmissionQuery constructor",
)

// GetSubmissionQuery retrieves the full detail of one submission.
type GetSubmissionQuery struct {
	submissionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSubmissionQuery creates a query for one submission's detail view.
func NewGetSubmissionQuery(submissionID kernel.UUID) (GetSubmissionQuery, error) {
	if err := submissionID.Validate(); err != nil {
		return GetSubmissionQuery{}, err
	}

	return GetSubmissionQuery{
		submissionID: submissionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSubmissionQuery) Validate() error {
	return q.guard.Validate(ErrGetSubmissionQueryIsNotConstructed)
}

// SubmissionID returns the requested submission id.
func (q GetSubmissionQuery) SubmissionID() kernel.UUID {
	return q.submissionID
}

// GetSubmissionQueryResponse is the full detail view of a submission. Raw
// signature payloads are redacted to presence booleans; everything else the
// driver captured is included.
type GetSubmissionQueryResponse struct {
	ID               kernel.UUID
	LoadID           string
	LoadIdentifierID string

	DriverID   string
	DriverName string
	BrokerID   string
	BrokerName string

	ShipperID    string
	ShipperName  string
	ShipperEmail string

	BOLNumber    string
	PRONumber    string
	DeliveryDate string
	DeliveryTime string
	ReceiverName string

	HasDriverSignature   bool
	HasReceiverSignature bool

	PickupPhotos   []string
	DeliveryPhotos []string
	SealNumbers    []string
	Weight         string
	Pieces         int
	Damages        []string
	Notes          string

	Status      string
	ReviewNotes string

	InvoiceID      *string
	InvoiceTotal   *float64
	InvoiceDueDate *time.Time

	SubmittedAt    time.Time
	BrokerReviewAt time.Time
	ApprovedAt     *time.Time
	InvoiceSentAt  *time.Time
	CompletedAt    *time.Time
	RejectedAt     *time.Time
}
