package ports

import (
	"context"
)

// SequenceProvider hands out monotonically increasing counters shared
// across process instances. Load identifier generation uses one counter
// per broker per day.
type SequenceProvider interface {
	// Next atomically increments and returns the counter for key.
	// The first call for a fresh key returns 1.
	Next(ctx context.Context, key string) (int64, error)
}
