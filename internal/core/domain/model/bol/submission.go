package bol

import (
	"errors"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrSubmissionIsNotConstructed is returned when a Submission instance was
// not created through NewSubmission or RestoreSubmission.
var ErrSubmissionIsNotConstructed = errors.New(
	"Submission must be created via NewSubmission or RestoreSubmission",
)

// Submission is the aggregate root of the BOL approval workflow. It is
// created once by a driver submission, mutated only through its lifecycle
// methods, and never deleted: the record is the audit trail.
//
// Invariants:
//   - the acting broker must own the submission for approve/reject
//   - at most one invoice is ever attached
//   - status only advances forward or terminates in Rejected
type Submission struct {
	id kernel.UUID

	loadID           string
	loadIdentifierID string

	driverID   string
	driverName string

	brokerID   string
	brokerName string

	shipperID    string
	shipperName  string
	shipperEmail string

	bolData BOLData

	status      Status
	reviewNotes string
	invoice     *Invoice

	submittedAt      time.Time
	brokerReviewAt   time.Time
	approvedAt       *time.Time
	invoiceSentAt    *time.Time
	completedAt      *time.Time
	rejectedAt       *time.Time

	isConstructed bool
}

// NewSubmission creates a submission from a driver's paperwork. The record
// is created directly in BrokerReview: submission and queueing for review
// are one atomic operation, so no intermediate Submitted state is ever
// observable. Both the submission and review timestamps are recorded.
func NewSubmission(
	id kernel.UUID,
	loadID, loadIdentifierID string,
	driverID, driverName string,
	brokerID, brokerName string,
	shipperID, shipperName, shipperEmail string,
	bolData BOLData,
	now time.Time,
) (*Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if loadID == "" {
		return nil, errs.NewValueIsRequiredError("loadId")
	}
	if loadIdentifierID == "" {
		return nil, errs.NewValueIsRequiredError("loadIdentifierId")
	}
	if driverID == "" {
		return nil, errs.NewValueIsRequiredError("driverId")
	}
	if brokerID == "" {
		return nil, errs.NewValueIsRequiredError("brokerId")
	}
	if bolData.IsEmpty() {
		return nil, errs.NewValueIsRequiredError("bolData")
	}

	return &Submission{
		id:               id,
		loadID:           loadID,
		loadIdentifierID: loadIdentifierID,
		driverID:         driverID,
		driverName:       driverName,
		brokerID:         brokerID,
		brokerName:       brokerName,
		shipperID:        shipperID,
		shipperName:      shipperName,
		shipperEmail:     shipperEmail,
		bolData:          bolData,
		status:           BrokerReview,
		submittedAt:      now,
		brokerReviewAt:   now,
		isConstructed:    true,
	}, nil
}

// RestoreSubmissionParams carries the persisted state of a submission.
type RestoreSubmissionParams struct {
	ID               kernel.UUID
	LoadID           string
	LoadIdentifierID string
	DriverID         string
	DriverName       string
	BrokerID         string
	BrokerName       string
	ShipperID        string
	ShipperName      string
	ShipperEmail     string
	BOLData          BOLData
	Status           Status
	ReviewNotes      string
	Invoice          *Invoice
	SubmittedAt      time.Time
	BrokerReviewAt   time.Time
	ApprovedAt       *time.Time
	InvoiceSentAt    *time.Time
	CompletedAt      *time.Time
	RejectedAt       *time.Time
}

// RestoreSubmission reconstructs a submission from persistence, validating
// the stored status.
func RestoreSubmission(p RestoreSubmissionParams) (*Submission, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	return &Submission{
		id:               p.ID,
		loadID:           p.LoadID,
		loadIdentifierID: p.LoadIdentifierID,
		driverID:         p.DriverID,
		driverName:       p.DriverName,
		brokerID:         p.BrokerID,
		brokerName:       p.BrokerName,
		shipperID:        p.ShipperID,
		shipperName:      p.ShipperName,
		shipperEmail:     p.ShipperEmail,
		bolData:          p.BOLData,
		status:           p.Status,
		reviewNotes:      p.ReviewNotes,
		invoice:          p.Invoice,
		submittedAt:      p.SubmittedAt,
		brokerReviewAt:   p.BrokerReviewAt,
		approvedAt:       p.ApprovedAt,
		invoiceSentAt:    p.InvoiceSentAt,
		completedAt:      p.CompletedAt,
		rejectedAt:       p.RejectedAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Submission was created through a constructor.
func (s *Submission) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubmissionIsNotConstructed
	}
	return nil
}

// Approve records the broker's acceptance. The acting broker must own the
// submission; on mismatch an authorization error is returned and nothing
// changes.
func (s *Submission) Approve(brokerID, reviewNotes string, now time.Time) error {
	if err := s.authorize(brokerID, "approve submission"); err != nil {
		return err
	}

	newStatus, err := s.status.Approve()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.reviewNotes = reviewNotes
	s.approvedAt = &now
	return nil
}

// AttachInvoice attaches the generated invoice and advances the status.
// A submission carries at most one invoice: a second attach attempt is an
// invariant violation and mutates nothing.
func (s *Submission) AttachInvoice(invoice Invoice, now time.Time) error {
	if s.invoice != nil {
		return errs.NewInvariantViolationError(
			"submission " + s.id.String() + " already has invoice " + s.invoice.ID(),
		)
	}

	newStatus, err := s.status.GenerateInvoice()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.invoice = &invoice
	return nil
}

// MarkInvoiceSent records that the invoice notification went out.
func (s *Submission) MarkInvoiceSent(now time.Time) error {
	newStatus, err := s.status.SendInvoice()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.invoiceSentAt = &now
	return nil
}

// Complete moves the submission to its successful terminal state.
func (s *Submission) Complete(now time.Time) error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.completedAt = &now
	return nil
}

// Reject moves the submission to the terminal Rejected state with the
// broker's notes. Requires broker ownership, like Approve.
func (s *Submission) Reject(brokerID, reviewNotes string, now time.Time) error {
	if err := s.authorize(brokerID, "reject submission"); err != nil {
		return err
	}

	newStatus, err := s.status.Reject()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.reviewNotes = reviewNotes
	s.rejectedAt = &now
	return nil
}

func (s *Submission) authorize(brokerID, operation string) error {
	if brokerID != s.brokerID {
		return errs.NewNotAuthorizedError(operation, brokerID)
	}
	return nil
}

// ID returns the submission's unique identifier.
func (s *Submission) ID() kernel.UUID {
	return s.id
}

// LoadID returns the internal load record id.
func (s *Submission) LoadID() string {
	return s.loadID
}

// LoadIdentifierID returns the structured load identifier string.
func (s *Submission) LoadIdentifierID() string {
	return s.loadIdentifierID
}

// DriverID returns the submitting driver's id.
func (s *Submission) DriverID() string {
	return s.driverID
}

// DriverName returns the submitting driver's display name.
func (s *Submission) DriverName() string {
	return s.driverName
}

// BrokerID returns the owning broker's id.
func (s *Submission) BrokerID() string {
	return s.brokerID
}

// BrokerName returns the owning broker's display name.
func (s *Submission) BrokerName() string {
	return s.brokerName
}

// ShipperID returns the shipper's id.
func (s *Submission) ShipperID() string {
	return s.shipperID
}

// ShipperName returns the shipper's company name.
func (s *Submission) ShipperName() string {
	return s.shipperName
}

// ShipperEmail returns the shipper's billing contact address.
func (s *Submission) ShipperEmail() string {
	return s.shipperEmail
}

// BOLData returns the delivery facts captured by the driver.
func (s *Submission) BOLData() BOLData {
	return s.bolData
}

// Status returns the current workflow stage.
func (s *Submission) Status() Status {
	return s.status
}

// ReviewNotes returns the broker's review notes, if any.
func (s *Submission) ReviewNotes() string {
	return s.reviewNotes
}

// Invoice returns the attached invoice, or nil before generation.
func (s *Submission) Invoice() *Invoice {
	return s.invoice
}

// SubmittedAt returns the driver submission timestamp.
func (s *Submission) SubmittedAt() time.Time {
	return s.submittedAt
}

// BrokerReviewAt returns when the submission entered broker review.
func (s *Submission) BrokerReviewAt() time.Time {
	return s.brokerReviewAt
}

// ApprovedAt returns the approval timestamp, or nil.
func (s *Submission) ApprovedAt() *time.Time {
	return s.approvedAt
}

// InvoiceSentAt returns when the invoice notification went out, or nil.
func (s *Submission) InvoiceSentAt() *time.Time {
	return s.invoiceSentAt
}

// CompletedAt returns the completion timestamp, or nil.
func (s *Submission) CompletedAt() *time.Time {
	return s.completedAt
}

// RejectedAt returns the rejection timestamp, or nil.
func (s *Submission) RejectedAt() *time.Time {
	return s.rejectedAt
}
