package commands

import (
	"errors"

	"freightflow/internal/pkg/guard"
)

var ErrRetryFailedNotificationsCommandIsNotConstructed = errors.New(
	"RetryFailedNotificationsCommand must be created via NewRetryFailedNotificationsCommand constructor",
)

// RetryFailedNotificationsCommand requests redelivery of every failed
// notification that still has attempt budget. Issued by the redelivery job.
type RetryFailedNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewRetryFailedNotificationsCommand creates a redelivery command.
func NewRetryFailedNotificationsCommand() (RetryFailedNotificationsCommand, error) {
	return RetryFailedNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RetryFailedNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrRetryFailedNotificationsCommandIsNotConstructed)
}
