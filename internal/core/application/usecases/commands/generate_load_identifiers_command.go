package commands

import (
	"errors"

	"freightflow/internal/core/domain/model/loadid"
	"freightflow/internal/pkg/guard"
)

var ErrGenerateLoadIdentifiersCommandIsNotConstructed = errors.New(
	"GenerateLoadIdentifiersCommand must be created via NewGenerateLoadIdentifiersCommand constructor",
)

// GenerateLoadIdentifiersCommand requests the full identifier set for a new
// load posting. All fields are optional: identifier generation never fails,
// missing facts degrade to placeholder codes.
type GenerateLoadIdentifiersCommand struct { //nolint:recvcheck //using for validation
	data loadid.LoadIdentificationData

	guard guard.ConstructorGuard
}

// NewGenerateLoadIdentifiersCommand creates a command to generate load
// identifiers from whatever load facts are available.
func NewGenerateLoadIdentifiersCommand(data loadid.LoadIdentificationData) (GenerateLoadIdentifiersCommand, error) {
	return GenerateLoadIdentifiersCommand{
		data:  data,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateLoadIdentifiersCommand) Validate() error {
	return c.guard.Validate(ErrGenerateLoadIdentifiersCommandIsNotConstructed)
}

// Data returns the load facts the identifiers are derived from.
func (c GenerateLoadIdentifiersCommand) Data() loadid.LoadIdentificationData {
	return c.data
}
