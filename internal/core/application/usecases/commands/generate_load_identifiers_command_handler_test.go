package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/loadid"
)

func TestGenerateLoadIdentifiersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	data := loadid.LoadIdentificationData{
		Origin:         "Atlanta, GA",
		Destination:    "Miami, FL",
		PickupDate:     time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		EquipmentType:  "Dry Van",
		LoadType:       "FTL",
		WeightLbs:      34500,
		BrokerInitials: "JD",
		ShipperName:    "Walmart",
	}
	cmd, err := commands.NewGenerateLoadIdentifiersCommand(data)
	require.NoError(t, err)

	sequences := new(MockSequenceProvider)
	sequences.On("Next", mock.Anything, mock.MatchedBy(func(key string) bool {
		return key == "loadid:seq:JD:25005"
	})).Return(int64(7), nil).Once()

	h := commands.NewGenerateLoadIdentifiersCommandHandler(sequences)
	identifiers, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "JD-25005-ATLMIA-WMT-DVFM-007", identifiers.LoadID)
	assert.True(t, loadid.Validate(identifiers.LoadID))
	sequences.AssertExpectations(t)
}

func TestGenerateLoadIdentifiersCommandHandler_Handle_SequenceError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGenerateLoadIdentifiersCommand(loadid.LoadIdentificationData{})
	require.NoError(t, err)

	sequences := new(MockSequenceProvider)
	sequences.On("Next", mock.Anything, mock.Anything).
		Return(int64(0), errors.New("counter unavailable")).Once()

	h := commands.NewGenerateLoadIdentifiersCommandHandler(sequences)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestGenerateLoadIdentifiersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.GenerateLoadIdentifiersCommand // not constructed properly

	h := commands.NewGenerateLoadIdentifiersCommandHandler(new(MockSequenceProvider))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
