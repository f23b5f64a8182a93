package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/guard"
)

var (
	ErrSubmitBOLCommandIsNotConstructed = errors.New(
		"SubmitBOLCommand must be created via NewSubmitBOLCommand constructor",
	)
	ErrLoadIDIsRequired           = errors.New("load id is required")
	ErrLoadIdentifierIDIsRequired = errors.New("load identifier id is required")
	ErrDriverIDIsRequired         = errors.New("driver id is required")
	ErrBrokerIDIsRequired         = errors.New("broker id is required")
	ErrBOLDataIsRequired          = errors.New("bol data must carry a bol number or delivery date")
)

// SubmitBOLCommand represents a driver submitting delivery paperwork for
// broker review.
type SubmitBOLCommand struct { //nolint:recvcheck //using for validation
	submissionID kernel.UUID

	loadID           string
	loadIdentifierID string

	driverID      string
	driverName    string
	driverContact string

	brokerID      string
	brokerName    string
	brokerContact string

	shipperID    string
	shipperName  string
	shipperEmail string

	bolData bol.BOLData

	guard guard.ConstructorGuard
}

// SubmitBOLParams carries the raw submission fields into the command
// constructor.
type SubmitBOLParams struct {
	SubmissionID     kernel.UUID
	LoadID           string
	LoadIdentifierID string
	DriverID         string
	DriverName       string
	DriverContact    string
	BrokerID         string
	BrokerName       string
	BrokerContact    string
	ShipperID        string
	ShipperName      string
	ShipperEmail     string
	BOLData          bol.BOLData
}

// NewSubmitBOLCommand creates a command to submit BOL paperwork. Validates
// the submission id, the load/driver/broker references and that the
// paperwork carries at least minimal delivery facts.
func NewSubmitBOLCommand(params SubmitBOLParams) (SubmitBOLCommand, error) {
	command := SubmitBOLCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSubmissionID(params.SubmissionID),
		command.setReferences(params),
		command.setBOLData(params.BOLData),
	); err != nil {
		return SubmitBOLCommand{}, err
	}

	command.driverName = params.DriverName
	command.driverContact = params.DriverContact
	command.brokerName = params.BrokerName
	command.brokerContact = params.BrokerContact
	command.shipperID = params.ShipperID
	command.shipperName = params.ShipperName
	command.shipperEmail = params.ShipperEmail

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBOLCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBOLCommandIsNotConstructed)
}

// SubmissionID returns the unique identifier for the new submission.
func (c SubmitBOLCommand) SubmissionID() kernel.UUID {
	return c.submissionID
}

// LoadID returns the internal load record id.
func (c SubmitBOLCommand) LoadID() string {
	return c.loadID
}

// LoadIdentifierID returns the structured load identifier.
func (c SubmitBOLCommand) LoadIdentifierID() string {
	return c.loadIdentifierID
}

// DriverID returns the submitting driver's id.
func (c SubmitBOLCommand) DriverID() string {
	return c.driverID
}

// DriverName returns the submitting driver's display name.
func (c SubmitBOLCommand) DriverName() string {
	return c.driverName
}

// DriverContact returns the driver's SMS contact.
func (c SubmitBOLCommand) DriverContact() string {
	return c.driverContact
}

// BrokerID returns the owning broker's id.
func (c SubmitBOLCommand) BrokerID() string {
	return c.brokerID
}

// BrokerName returns the owning broker's display name.
func (c SubmitBOLCommand) BrokerName() string {
	return c.brokerName
}

// BrokerContact returns the broker's notification contact.
func (c SubmitBOLCommand) BrokerContact() string {
	return c.brokerContact
}

// ShipperID returns the shipper's id.
func (c SubmitBOLCommand) ShipperID() string {
	return c.shipperID
}

// ShipperName returns the shipper's company name.
func (c SubmitBOLCommand) ShipperName() string {
	return c.shipperName
}

// ShipperEmail returns the shipper's billing contact address.
func (c SubmitBOLCommand) ShipperEmail() string {
	return c.shipperEmail
}

// BOLData returns the delivery facts captured by the driver.
func (c SubmitBOLCommand) BOLData() bol.BOLData {
	return c.bolData
}

func (c *SubmitBOLCommand) setSubmissionID(submissionID kernel.UUID) error {
	if err := submissionID.Validate(); err != nil {
		return err
	}

	c.submissionID = submissionID
	return nil
}

func (c *SubmitBOLCommand) setReferences(params SubmitBOLParams) error {
	if params.LoadID == "" {
		return ErrLoadIDIsRequired
	}
	if params.LoadIdentifierID == "" {
		return ErrLoadIdentifierIDIsRequired
	}
	if params.DriverID == "" {
		return ErrDriverIDIsRequired
	}
	if params.BrokerID == "" {
		return ErrBrokerIDIsRequired
	}

	c.loadID = params.LoadID
	c.loadIdentifierID = params.LoadIdentifierID
	c.driverID = params.DriverID
	c.brokerID = params.BrokerID
	return nil
}

func (c *SubmitBOLCommand) setBOLData(data bol.BOLData) error {
	if data.IsEmpty() {
		return ErrBOLDataIsRequired
	}

	c.bolData = data
	return nil
}
