package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

var testNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func testRecipient() Recipient {
	return Recipient{ID: "broker-1", Role: RoleBroker, Name: "John Doe", Contact: "+15550100"}
}

func newTestNotification(t *testing.T) *Notification {
	t.Helper()
	n, err := NewNotification(
		kernel.NewUUID(), kernel.NewUUID(),
		TypeBrokerReviewRequest, testRecipient(),
		[]Channel{ChannelSMS, ChannelEmail},
		"New BOL submission requires review", UrgencyHigh, testNow,
	)
	require.NoError(t, err)
	return n
}

func TestNewNotificationStartsPending(t *testing.T) {
	n := newTestNotification(t)

	assert.Equal(t, Pending, n.Status())
	assert.Equal(t, 0, n.Attempts())
	assert.Nil(t, n.SentAt())
	assert.Equal(t, testNow, n.CreatedAt())
	assert.NoError(t, n.Validate())
}

func TestNewNotificationValidation(t *testing.T) {
	id, submissionID := kernel.NewUUID(), kernel.NewUUID()
	channels := []Channel{ChannelEmail}

	_, err := NewNotification(id, submissionID, Type(99), testRecipient(), channels, "msg", UrgencyNormal, testNow)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = NewNotification(id, submissionID, TypeInvoiceSent, Recipient{Role: RoleShipper}, channels, "msg", UrgencyNormal, testNow)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewNotification(id, submissionID, TypeInvoiceSent, Recipient{ID: "s-1", Role: "manager"}, channels, "msg", UrgencyNormal, testNow)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = NewNotification(id, submissionID, TypeInvoiceSent, testRecipient(), nil, "msg", UrgencyNormal, testNow)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewNotification(id, submissionID, TypeInvoiceSent, testRecipient(), channels, "", UrgencyNormal, testNow)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNotificationMarkSent(t *testing.T) {
	n := newTestNotification(t)
	sentAt := testNow.Add(time.Second)

	require.NoError(t, n.MarkSent(sentAt))

	assert.Equal(t, Sent, n.Status())
	assert.Equal(t, 1, n.Attempts())
	require.NotNil(t, n.SentAt())
	assert.Equal(t, sentAt, *n.SentAt())
	assert.False(t, n.CanRetry())

	assert.ErrorIs(t, n.MarkSent(sentAt), errs.ErrInvariantViolation)
}

func TestNotificationMarkFailedAndRetry(t *testing.T) {
	n := newTestNotification(t)

	require.NoError(t, n.MarkFailed())
	assert.Equal(t, Failed, n.Status())
	assert.Equal(t, 1, n.Attempts())
	assert.True(t, n.CanRetry())

	require.NoError(t, n.MarkSent(testNow))
	assert.Equal(t, Sent, n.Status())
	assert.Equal(t, 2, n.Attempts())
}

func TestNotificationRetryExhaustion(t *testing.T) {
	n := newTestNotification(t)

	for i := 0; i < MaxAttempts; i++ {
		require.NoError(t, n.MarkFailed())
	}

	assert.Equal(t, MaxAttempts, n.Attempts())
	assert.False(t, n.CanRetry())
}

func TestTypeRoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeBrokerReviewRequest, TypeInvoiceSent, TypeBOLRejected} {
		parsed, err := TypeFromString(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}

	_, err := TypeFromString("carrier_update")
	assert.Error(t, err)
}

func TestDeliveryStatusRoundTrip(t *testing.T) {
	for _, status := range []DeliveryStatus{Pending, Sent, Failed} {
		parsed, err := DeliveryStatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := DeliveryStatusFromString("queued")
	assert.Error(t, err)
}

func TestRestoreNotification(t *testing.T) {
	id, submissionID := kernel.NewUUID(), kernel.NewUUID()
	sentAt := testNow.Add(time.Minute)

	n, err := RestoreNotification(RestoreNotificationParams{
		ID:           id,
		SubmissionID: submissionID,
		Type:         TypeInvoiceSent,
		Recipient:    Recipient{ID: "shipper-1", Role: RoleShipper, Name: "Walmart", Contact: "billing@walmart.example"},
		Channels:     []Channel{ChannelEmail},
		Message:      "Invoice INV-1 is ready",
		Urgency:      UrgencyNormal,
		Status:       Sent,
		Attempts:     2,
		CreatedAt:    testNow,
		SentAt:       &sentAt,
	})

	require.NoError(t, err)
	assert.True(t, n.ID().IsEqual(id))
	assert.Equal(t, Sent, n.Status())
	assert.Equal(t, 2, n.Attempts())
	assert.NoError(t, n.Validate())
}
