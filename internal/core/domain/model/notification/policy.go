package notification

import (
	"fmt"

	"freightflow/internal/pkg/errs"
)

// Role classifies notification recipients.
type Role string

const (
	RoleBroker  Role = "broker"
	RoleShipper Role = "shipper"
	RoleVendor  Role = "vendor"
	RoleDriver  Role = "driver"
)

// Validate checks that the Role is one of the recognized values.
func (r Role) Validate() error {
	switch r {
	case RoleBroker, RoleShipper, RoleVendor, RoleDriver:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("recipient.role",
			fmt.Errorf("%q is not a valid recipient role", string(r)))
	}
}

// Channel is a delivery medium accepted by the messaging gateway.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
)

// Urgency is the delivery priority passed through to the gateway.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyNormal Urgency = "normal"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// ChannelPolicy maps a recipient role to its delivery channels. Brokers get
// dual-channel review requests; shippers and vendors get email-only billing
// notices; drivers get SMS.
type ChannelPolicy map[Role][]Channel

// DefaultChannelPolicy returns the standard role-to-channel table.
func DefaultChannelPolicy() ChannelPolicy {
	return ChannelPolicy{
		RoleBroker:  {ChannelSMS, ChannelEmail},
		RoleShipper: {ChannelEmail},
		RoleVendor:  {ChannelEmail},
		RoleDriver:  {ChannelSMS},
	}
}

// ChannelsFor resolves the channels for a role, returning an error for
// roles the policy does not know.
func (p ChannelPolicy) ChannelsFor(role Role) ([]Channel, error) {
	channels, ok := p[role]
	if !ok || len(channels) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("recipient.role",
			fmt.Errorf("no channels configured for role %q", string(role)))
	}
	out := make([]Channel, len(channels))
	copy(out, channels)
	return out, nil
}
