package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/loadid"
	"freightflow/internal/core/ports"
)

// GenerateLoadIdentifiersCommandHandler derives the structured identifier
// set for a new load. The sequence number comes from a shared counter so
// identifiers stay unique across process instances.
type GenerateLoadIdentifiersCommandHandler struct {
	sequences ports.SequenceProvider
}

// NewGenerateLoadIdentifiersCommandHandler creates a handler backed by the
// given sequence provider.
func NewGenerateLoadIdentifiersCommandHandler(sequences ports.SequenceProvider) GenerateLoadIdentifiersCommandHandler {
	return GenerateLoadIdentifiersCommandHandler{
		sequences: sequences,
	}
}

// Handle reserves the next sequence number for the load's broker/day and
// generates the identifier set.
func (h *GenerateLoadIdentifiersCommandHandler) Handle(
	ctx context.Context, cmd GenerateLoadIdentifiersCommand,
) (loadid.GeneratedLoadIdentifiers, error) {
	if err := cmd.Validate(); err != nil {
		return loadid.GeneratedLoadIdentifiers{}, err
	}

	now := time.Now().UTC()

	seq, err := h.sequences.Next(ctx, loadid.SequenceKey(cmd.Data(), now))
	if err != nil {
		return loadid.GeneratedLoadIdentifiers{}, err
	}

	return loadid.Generate(cmd.Data(), int(seq), now), nil
}
