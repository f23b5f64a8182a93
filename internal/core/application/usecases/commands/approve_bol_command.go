package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/pkg/guard"
)

var (
	ErrApproveBOLCommandIsNotConstructed = errors.New(
		"ApproveBOLCommand must be created via NewApproveBOLCommand constructor",
	)
	ErrBaseRateIsInvalid = errors.New("base rate must not be negative")
	ErrBillToIsInvalid   = errors.New("bill-to role must be shipper or vendor")
)

// ApproveBOLCommand represents the broker's review decision on a submission:
// either an approval that triggers invoicing, or a rejection with notes.
type ApproveBOLCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID
	brokerID     string

	approved    bool
	reviewNotes string

	baseRate    float64
	adjustments bol.Adjustments
	billTo      notification.Role

	driverContact string

	guard guard.ConstructorGuard
}

// ApproveBOLParams carries the raw decision fields into the command
// constructor. BillTo defaults to the shipper role when empty; BaseRate and
// Adjustments only matter for approvals.
type ApproveBOLParams struct {
	SubmissionID  kernel.UUID
	BrokerID      string
	Approved      bool
	ReviewNotes   string
	BaseRate      float64
	Adjustments   bol.Adjustments
	BillTo        notification.Role
	DriverContact string
}

// NewApproveBOLCommand creates a command for the broker's review decision.
func NewApproveBOLCommand(params ApproveBOLParams) (ApproveBOLCommand, error) {
	command := ApproveBOLCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSubmissionID(params.SubmissionID),
		command.setBrokerID(params.BrokerID),
		command.setBilling(params),
	); err != nil {
		return ApproveBOLCommand{}, err
	}

	command.approved = params.Approved
	command.reviewNotes = params.ReviewNotes
	command.driverContact = params.DriverContact

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveBOLCommand) Validate() error {
	return c.guard.Validate(ErrApproveBOLCommandIsNotConstructed)
}

// SubmissionID returns the submission under review.
func (c ApproveBOLCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// BrokerID returns the acting broker's id.
func (c ApproveBOLCommand) BrokerID() string {
	return c.brokerID
}

// Approved reports whether the broker accepted the paperwork.
func (c ApproveBOLCommand) Approved() bool {
	return c.approved
}

// ReviewNotes returns the broker's notes.
func (c ApproveBOLCommand) ReviewNotes() string {
	return c.reviewNotes
}

// BaseRate returns the agreed rate before adjustments.
func (c ApproveBOLCommand) BaseRate() float64 {
	return c.baseRate
}

// Adjustments returns the broker's rate corrections.
func (c ApproveBOLCommand) Adjustments() bol.Adjustments {
	return c.adjustments
}

// BillTo returns the role the invoice notification targets.
func (c ApproveBOLCommand) BillTo() notification.Role {
	return c.billTo
}

// DriverContact returns the driver's SMS contact for rejection notices.
func (c ApproveBOLCommand) DriverContact() string {
	return c.driverContact
}

func (c *ApproveBOLCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *ApproveBOLCommand) setBrokerID(brokerID string) error {
	if brokerID == "" {
		return ErrBrokerIDIsRequired
	}

	c.brokerID = brokerID
	return nil
}

func (c *ApproveBOLCommand) setBilling(params ApproveBOLParams) error {
	if params.BaseRate < 0 {
		return ErrBaseRateIsInvalid
	}

	billTo := params.BillTo
	if billTo == "" {
		billTo = notification.RoleShipper
	}
	if billTo != notification.RoleShipper && billTo != notification.RoleVendor {
		return ErrBillToIsInvalid
	}

	c.baseRate = params.BaseRate
	c.adjustments = params.Adjustments
	c.billTo = billTo
	return nil
}
