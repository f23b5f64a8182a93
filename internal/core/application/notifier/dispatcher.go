// Package notifier delivers committed workflow notifications through the
// messaging gateway and records each delivery outcome.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/ports"
)

const (
	gatewayTimeout = 10 * time.Second

	retryBaseDelay  = 500 * time.Millisecond
	maxGatewayTries = 3
)

// Dispatcher sends notifications through the message gateway with bounded
// retries and persists the outcome in its own transaction. It runs after
// the workflow transaction has committed: a delivery failure is recorded on
// the notification but never undoes workflow progress.
type Dispatcher struct {
	uowFactory ports.UnitOfWorkFactory
	gateway    ports.MessageGateway
	logger     *slog.Logger
}

// NewDispatcher creates a dispatcher bound to the given gateway.
func NewDispatcher(uowFactory ports.UnitOfWorkFactory, gateway ports.MessageGateway, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger,
	}
}

// Dispatch attempts gateway delivery with fibonacci backoff and a bounded
// timeout, then marks the notification sent or failed. Exactly one status
// update is written per call.
func (d *Dispatcher) Dispatch(ctx context.Context, aggregate *notification.Notification) {
	if err := aggregate.Validate(); err != nil {
		d.logger.Error("dispatch of unconstructed notification", "error", err)
		return
	}

	sendErr := d.send(ctx, aggregate)

	now := time.Now().UTC()
	var markErr error
	if sendErr != nil {
		d.logger.Warn("notification delivery failed",
			"notificationId", aggregate.ID().String(),
			"type", aggregate.Type().String(),
			"attempts", aggregate.Attempts()+1,
			"error", sendErr)
		markErr = aggregate.MarkFailed()
	} else {
		markErr = aggregate.MarkSent(now)
	}
	if markErr != nil {
		d.logger.Error("notification status update rejected",
			"notificationId", aggregate.ID().String(), "error", markErr)
		return
	}

	if err := d.persist(ctx, aggregate); err != nil {
		d.logger.Error("notification status not persisted",
			"notificationId", aggregate.ID().String(), "error", err)
	}
}

func (d *Dispatcher) send(ctx context.Context, aggregate *notification.Notification) error {
	recipient := aggregate.Recipient()
	message := ports.Message{
		RecipientID:   recipient.ID,
		RecipientName: recipient.Name,
		Contact:       recipient.Contact,
		Channels:      aggregate.Channels(),
		Body:          aggregate.Message(),
		Urgency:       aggregate.Urgency(),
	}

	backoff := retry.WithMaxRetries(maxGatewayTries-1, retry.NewFibonacci(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		sendCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
		defer cancel()

		if err := d.gateway.Send(sendCtx, message); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (d *Dispatcher) persist(ctx context.Context, aggregate *notification.Notification) error {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
