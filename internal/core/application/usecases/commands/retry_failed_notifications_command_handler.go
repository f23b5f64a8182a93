package commands

import (
	"context"
)

// RetryFailedNotificationsCommandHandler re-dispatches failed notifications
// that have not exhausted their attempt budget. Each dispatch records its
// own outcome, so a notification that fails again simply stays eligible for
// the next run.
type RetryFailedNotificationsCommandHandler struct {
	uowFactory UoWFactory
	notifier   Notifier
}

// NewRetryFailedNotificationsCommandHandler creates a handler for
// notification redelivery.
func NewRetryFailedNotificationsCommandHandler(
	uowFactory UoWFactory, notifier Notifier,
) RetryFailedNotificationsCommandHandler {
	return RetryFailedNotificationsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle loads the retryable notifications and hands each to the notifier.
func (h *RetryFailedNotificationsCommandHandler) Handle(ctx context.Context, cmd RetryFailedNotificationsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	failed, err := uow.NotificationRepository().GetAllFailed(ctx)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range failed {
		if !aggregate.CanRetry() {
			continue
		}
		h.notifier.Dispatch(ctx, aggregate)
	}

	return nil
}
