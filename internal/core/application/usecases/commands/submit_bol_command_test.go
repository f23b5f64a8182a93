package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/kernel"
)

func TestNewSubmitBOLCommand(t *testing.T) {
	cmd, err := commands.NewSubmitBOLCommand(validSubmitParams())

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, "load-42", cmd.LoadID())
	assert.Equal(t, "JD-25005-ATLMIA-WMT-DVFM-001", cmd.LoadIdentifierID())
	assert.Equal(t, "driver-1", cmd.DriverID())
	assert.Equal(t, "broker-1", cmd.BrokerID())
	assert.Equal(t, "+15550100", cmd.BrokerContact())
	assert.Equal(t, "BOL20250115A1B2", cmd.BOLData().BOLNumber)
}

func TestNewSubmitBOLCommandValidation(t *testing.T) {
	tests := map[string]struct {
		mutate  func(*commands.SubmitBOLParams)
		wantErr error
	}{
		"missing load id": {
			func(p *commands.SubmitBOLParams) { p.LoadID = "" },
			commands.ErrLoadIDIsRequired,
		},
		"missing load identifier": {
			func(p *commands.SubmitBOLParams) { p.LoadIdentifierID = "" },
			commands.ErrLoadIdentifierIDIsRequired,
		},
		"missing driver id": {
			func(p *commands.SubmitBOLParams) { p.DriverID = "" },
			commands.ErrDriverIDIsRequired,
		},
		"missing broker id": {
			func(p *commands.SubmitBOLParams) { p.BrokerID = "" },
			commands.ErrBrokerIDIsRequired,
		},
		"empty bol data": {
			func(p *commands.SubmitBOLParams) { p.BOLData = bol.BOLData{} },
			commands.ErrBOLDataIsRequired,
		},
		"invalid submission id": {
			func(p *commands.SubmitBOLParams) { p.SubmissionID = kernel.UUID{} },
			kernel.ErrUUIDIsNotConstructed,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			params := validSubmitParams()
			tt.mutate(&params)

			_, err := commands.NewSubmitBOLCommand(params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitBOLCommandNotConstructed(t *testing.T) {
	var cmd commands.SubmitBOLCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSubmitBOLCommandIsNotConstructed)
}
