package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/pkg/errs"
)

func testSubmission(t *testing.T) *bol.Submission {
	t.Helper()
	submission, err := bol.NewSubmission(
		kernel.NewUUID(),
		"load-42", "JD-25005-ATLMIA-WMT-DVFM-001",
		"driver-1", "Mike Johnson",
		"broker-1", "John Doe",
		"shipper-1", "Walmart", "billing@walmart.example",
		bol.BOLData{BOLNumber: "BOL20250115A1B2", DeliveryDate: "2025-01-14"},
		testNow,
	)
	require.NoError(t, err)
	return submission
}

func TestNewBrokerReviewRequest(t *testing.T) {
	submission := testSubmission(t)

	n, err := NewBrokerReviewRequest(submission, "+15550100", DefaultChannelPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, TypeBrokerReviewRequest, n.Type())
	assert.Equal(t, []Channel{ChannelSMS, ChannelEmail}, n.Channels())
	assert.Equal(t, UrgencyHigh, n.Urgency())
	assert.Equal(t, "broker-1", n.Recipient().ID)
	assert.Equal(t, RoleBroker, n.Recipient().Role)
	assert.Contains(t, n.Message(), "JD-25005-ATLMIA-WMT-DVFM-001")
	assert.Contains(t, n.Message(), "Mike Johnson")
	assert.True(t, n.SubmissionID().IsEqual(submission.ID()))
}

func TestNewInvoiceSent(t *testing.T) {
	submission := testSubmission(t)
	require.NoError(t, submission.Approve("broker-1", "", testNow))

	invoice, err := bol.NewInvoice("INV-JD-25005-ATLMIA-WMT-DVFM-001-483920",
		2500, bol.Adjustments{}, 2650, testNow.AddDate(0, 0, 30), testNow)
	require.NoError(t, err)
	require.NoError(t, submission.AttachInvoice(invoice, testNow))

	n, err := NewInvoiceSent(submission, RoleShipper, DefaultChannelPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, TypeInvoiceSent, n.Type())
	assert.Equal(t, []Channel{ChannelEmail}, n.Channels())
	assert.Equal(t, UrgencyNormal, n.Urgency())
	assert.Equal(t, "billing@walmart.example", n.Recipient().Contact)
	assert.Contains(t, n.Message(), "INV-JD-25005-ATLMIA-WMT-DVFM-001-483920")
	assert.Contains(t, n.Message(), "$2650.00")
	assert.Contains(t, n.Message(), "2025-02-14")
}

func TestNewInvoiceSentWithoutInvoice(t *testing.T) {
	submission := testSubmission(t)

	_, err := NewInvoiceSent(submission, RoleShipper, DefaultChannelPolicy(), testNow)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewBOLRejected(t *testing.T) {
	submission := testSubmission(t)
	require.NoError(t, submission.Reject("broker-1", "weight mismatch", testNow))

	n, err := NewBOLRejected(submission, "+15550142", DefaultChannelPolicy(), testNow)

	require.NoError(t, err)
	assert.Equal(t, TypeBOLRejected, n.Type())
	assert.Equal(t, []Channel{ChannelSMS}, n.Channels())
	assert.Equal(t, "driver-1", n.Recipient().ID)
	assert.Contains(t, n.Message(), "rejected: weight mismatch")
}
