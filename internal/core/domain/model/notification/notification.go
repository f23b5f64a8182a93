package notification

import (
	"errors"
	"fmt"
	"time"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification",
)

// MaxAttempts bounds redelivery of a failed notification.
const MaxAttempts = 5

// Type identifies what workflow event a notification announces.
type Type int

const (
	TypeUnknown Type = iota

	// TypeBrokerReviewRequest asks the broker to review a fresh submission.
	TypeBrokerReviewRequest

	// TypeInvoiceSent delivers the invoice to the shipper or vendor.
	TypeInvoiceSent

	// TypeBOLRejected tells the driver the paperwork was refused.
	TypeBOLRejected
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:             "unknown",
		TypeBrokerReviewRequest: "broker_review_request",
		TypeInvoiceSent:         "invoice_sent",
		TypeBOLRejected:         "bol_rejected",
	}
}

// Validate checks that the Type value is one of the defined kinds.
func (t Type) Validate() error {
	switch t {
	case TypeBrokerReviewRequest, TypeInvoiceSent, TypeBOLRejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%d is not a valid notification type", t))
	}
}

// String returns the wire name of the type, e.g. "broker_review_request".
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TypeFromString resolves a wire name back to a Type.
func TypeFromString(s string) (Type, error) {
	for typ, name := range getTypeStrings() {
		if typ != TypeUnknown && name == s {
			return typ, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("type",
		fmt.Errorf("%q is not a valid notification type", s))
}

// DeliveryStatus tracks the outcome of dispatch attempts.
type DeliveryStatus int

const (
	DeliveryStatusUnknown DeliveryStatus = iota

	// Pending means the notification is waiting for a dispatch attempt.
	Pending

	// Sent means the gateway accepted the message.
	Sent

	// Failed means the last dispatch attempt exhausted its retries.
	Failed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryStatusUnknown: "unknown",
		Pending:               "pending",
		Sent:                  "sent",
		Failed:                "failed",
	}
}

// Validate checks that the DeliveryStatus value is one of the defined states.
func (s DeliveryStatus) Validate() error {
	switch s {
	case Pending, Sent, Failed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
}

// String returns the wire name of the delivery status.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DeliveryStatusFromString resolves a wire name back to a DeliveryStatus.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, name := range getDeliveryStatusStrings() {
		if status != DeliveryStatusUnknown && name == s {
			return status, nil
		}
	}
	return DeliveryStatusUnknown, errs.NewValueIsInvalidErrorWithCause("deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Recipient identifies who a notification targets and how to reach them.
type Recipient struct {
	ID      string
	Role    Role
	Name    string
	Contact string
}

// Validate checks the recipient's required fields.
func (r Recipient) Validate() error {
	if r.ID == "" {
		return errs.NewValueIsRequiredError("recipient.id")
	}
	if err := r.Role.Validate(); err != nil {
		return err
	}
	return nil
}

// Notification is a role-targeted workflow message with delivery tracking.
type Notification struct {
	id           kernel.UUID
	submissionID kernel.UUID

	notificationType Type
	recipient        Recipient
	channels         []Channel
	message          string
	urgency          Urgency

	status   DeliveryStatus
	attempts int

	createdAt time.Time
	sentAt    *time.Time

	isConstructed bool
}

// NewNotification creates a pending notification. Channels come from the
// channel policy for the recipient's role.
func NewNotification(
	id kernel.UUID,
	submissionID kernel.UUID,
	notificationType Type,
	recipient Recipient,
	channels []Channel,
	message string,
	urgency Urgency,
	now time.Time,
) (*Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := submissionID.Validate(); err != nil {
		return nil, err
	}
	if err := notificationType.Validate(); err != nil {
		return nil, err
	}
	if err := recipient.Validate(); err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, errs.NewValueIsRequiredError("channels")
	}
	if message == "" {
		return nil, errs.NewValueIsRequiredError("message")
	}

	return &Notification{
		id:               id,
		submissionID:     submissionID,
		notificationType: notificationType,
		recipient:        recipient,
		channels:         channels,
		message:          message,
		urgency:          urgency,
		status:           Pending,
		createdAt:        now,
		isConstructed:    true,
	}, nil
}

// RestoreNotificationParams carries the persisted state of a notification.
type RestoreNotificationParams struct {
	ID           kernel.UUID
	SubmissionID kernel.UUID
	Type         Type
	Recipient    Recipient
	Channels     []Channel
	Message      string
	Urgency      Urgency
	Status       DeliveryStatus
	Attempts     int
	CreatedAt    time.Time
	SentAt       *time.Time
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(p RestoreNotificationParams) (*Notification, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Type.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}

	return &Notification{
		id:               p.ID,
		submissionID:     p.SubmissionID,
		notificationType: p.Type,
		recipient:        p.Recipient,
		channels:         p.Channels,
		message:          p.Message,
		urgency:          p.Urgency,
		status:           p.Status,
		attempts:         p.Attempts,
		createdAt:        p.CreatedAt,
		sentAt:           p.SentAt,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// MarkSent records a successful dispatch attempt.
func (n *Notification) MarkSent(now time.Time) error {
	if n.status == Sent {
		return errs.NewInvariantViolationError(
			"notification " + n.id.String() + " is already sent")
	}
	n.status = Sent
	n.attempts++
	n.sentAt = &now
	return nil
}

// MarkFailed records an unsuccessful dispatch attempt.
func (n *Notification) MarkFailed() error {
	if n.status == Sent {
		return errs.NewInvariantViolationError(
			"notification " + n.id.String() + " is already sent")
	}
	n.status = Failed
	n.attempts++
	return nil
}

// CanRetry reports whether the notification is eligible for redelivery.
func (n *Notification) CanRetry() bool {
	return n.status == Failed && n.attempts < MaxAttempts
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// SubmissionID returns the submission this notification belongs to.
func (n *Notification) SubmissionID() kernel.UUID {
	return n.submissionID
}

// Type returns the workflow event kind.
func (n *Notification) Type() Type {
	return n.notificationType
}

// Recipient returns the target of the notification.
func (n *Notification) Recipient() Recipient {
	return n.recipient
}

// Channels returns the delivery channels resolved by policy.
func (n *Notification) Channels() []Channel {
	return n.channels
}

// Message returns the human-readable notification body.
func (n *Notification) Message() string {
	return n.message
}

// Urgency returns the delivery urgency.
func (n *Notification) Urgency() Urgency {
	return n.urgency
}

// Status returns the current delivery status.
func (n *Notification) Status() DeliveryStatus {
	return n.status
}

// Attempts returns how many dispatch attempts have been made.
func (n *Notification) Attempts() int {
	return n.attempts
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns the successful delivery timestamp, or nil.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}
