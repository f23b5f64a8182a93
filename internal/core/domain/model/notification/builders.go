package notification

import (
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// NewBrokerReviewRequest builds the dual-channel notification asking the
// broker to review a fresh submission.
func NewBrokerReviewRequest(
	submission *bol.Submission, brokerContact string, policy ChannelPolicy, now time.Time,
) (*Notification, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	channels, err := policy.ChannelsFor(RoleBroker)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"New BOL submission %s from %s is ready for your review",
		submission.LoadIdentifierID(), submission.DriverName(),
	)

	return NewNotification(
		kernel.NewUUID(),
		submission.ID(),
		TypeBrokerReviewRequest,
		Recipient{
			ID:      submission.BrokerID(),
			Role:    RoleBroker,
			Name:    submission.BrokerName(),
			Contact: brokerContact,
		},
		channels,
		message,
		UrgencyHigh,
		now,
	)
}

// NewInvoiceSent builds the email-only notification delivering the invoice
// to the shipper or vendor.
func NewInvoiceSent(
	submission *bol.Submission, recipientRole Role, policy ChannelPolicy, now time.Time,
) (*Notification, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	invoice := submission.Invoice()
	if invoice == nil {
		return nil, errs.NewValueIsRequiredError("invoice")
	}

	channels, err := policy.ChannelsFor(recipientRole)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"Invoice %s for load %s is ready: $%.2f due %s",
		invoice.ID(), submission.LoadIdentifierID(),
		invoice.Total(), invoice.DueDate().Format("2006-01-02"),
	)

	return NewNotification(
		kernel.NewUUID(),
		submission.ID(),
		TypeInvoiceSent,
		Recipient{
			ID:      submission.ShipperID(),
			Role:    recipientRole,
			Name:    submission.ShipperName(),
			Contact: submission.ShipperEmail(),
		},
		channels,
		message,
		UrgencyNormal,
		now,
	)
}

// NewBOLRejected builds the SMS notice telling the driver the paperwork was
// refused and why.
func NewBOLRejected(
	submission *bol.Submission, driverContact string, policy ChannelPolicy, now time.Time,
) (*Notification, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	channels, err := policy.ChannelsFor(RoleDriver)
	if err != nil {
		return nil, err
	}

	message := fmt.Sprintf(
		"BOL submission %s was rejected", submission.LoadIdentifierID(),
	)
	if notes := submission.ReviewNotes(); notes != "" {
		message += ": " + notes
	}

	return NewNotification(
		kernel.NewUUID(),
		submission.ID(),
		TypeBOLRejected,
		Recipient{
			ID:      submission.DriverID(),
			Role:    RoleDriver,
			Name:    submission.DriverName(),
			Contact: driverContact,
		},
		channels,
		message,
		UrgencyHigh,
		now,
	)
}
