package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

func TestNewApproveBOLCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewApproveBOLCommand(commands.ApproveBOLParams{
		SubmissionID: id,
		BrokerID:     "broker-1",
		Approved:     true,
		ReviewNotes:  "ok",
		BaseRate:     2500,
	})

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.True(t, cmd.SubmissionID().IsEqual(id))
	assert.True(t, cmd.Approved())
	assert.Equal(t, 2500.0, cmd.BaseRate())
	assert.Equal(t, notification.RoleShipper, cmd.BillTo(), "bill-to defaults to shipper")
}

func TestNewApproveBOLCommandVendorBilling(t *testing.T) {
	cmd, err := commands.NewApproveBOLCommand(commands.ApproveBOLParams{
		SubmissionID: kernel.NewUUID(),
		BrokerID:     "broker-1",
		Approved:     true,
		BillTo:       notification.RoleVendor,
	})

	require.NoError(t, err)
	assert.Equal(t, notification.RoleVendor, cmd.BillTo())
}

func TestNewApproveBOLCommandValidation(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewApproveBOLCommand(commands.ApproveBOLParams{
		SubmissionID: kernel.UUID{}, BrokerID: "broker-1",
	})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewApproveBOLCommand(commands.ApproveBOLParams{
		SubmissionID: id, BrokerID: "",
	})
	assert.ErrorIs(t, err, commands.ErrBrokerIDIsRequired)

	_, err = commands.NewApproveBOLCommand(commands.ApproveBOLParams{
		SubmissionID: id, BrokerID: "broker-1", BaseRate: -10,
	})
	assert.ErrorIs(t, err, commands.ErrBaseRateIsInvalid)

	_, err = commands.NewApproveBOLCommand(commands.ApproveBOLParams{
		SubmissionID: id, BrokerID: "broker-1", BillTo: notification.RoleDriver,
	})
	assert.ErrorIs(t, err, commands.ErrBillToIsInvalid)
}

func TestApproveBOLCommandNotConstructed(t *testing.T) {
	var cmd commands.ApproveBOLCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrApproveBOLCommandIsNotConstructed)
}
