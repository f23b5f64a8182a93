package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/notification"
)

// SubmitBOLCommandHandler handles the business logic for BOL submission.
// Creates the submission directly in broker review and queues the broker's
// review request notification in the same transaction, so a submission
// without a pending review request is never observable.
type SubmitBOLCommandHandler struct {
	uowFactory    UoWFactory
	notifier      Notifier
	channelPolicy notification.ChannelPolicy
}

// NewSubmitBOLCommandHandler creates a handler for BOL submission operations.
func NewSubmitBOLCommandHandler(
	uowFactory UoWFactory, notifier Notifier, channelPolicy notification.ChannelPolicy,
) SubmitBOLCommandHandler {
	return SubmitBOLCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		channelPolicy: channelPolicy,
	}
}

// Handle processes the submission command: persists the submission and the
// pending broker notification atomically, then dispatches the notification
// after commit.
func (h *SubmitBOLCommandHandler) Handle(ctx context.Context, cmd SubmitBOLCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	submission, err := bol.NewSubmission(
		cmd.SubmissionID(),
		cmd.LoadID(), cmd.LoadIdentifierID(),
		cmd.DriverID(), cmd.DriverName(),
		cmd.BrokerID(), cmd.BrokerName(),
		cmd.ShipperID(), cmd.ShipperName(), cmd.ShipperEmail(),
		cmd.BOLData(),
		now,
	)
	if err != nil {
		return err
	}

	reviewRequest, err := notification.NewBrokerReviewRequest(
		submission, cmd.BrokerContact(), h.channelPolicy, now)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SubmissionRepository().Add(ctx, submission); err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, reviewRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, reviewRequest)

	return nil
}
