package commands

import (
	"context"
	"time"

	"freightflow/internal/core/domain/model/bol"
	"freightflow/internal/core/domain/model/notification"
	"freightflow/internal/core/domain/services"
	"freightflow/internal/pkg/errs"
)

// ApproveBOLCommandHandler handles the broker's review decision. Approval
// generates the invoice and drives the submission through invoice delivery
// to completion in one transaction; rejection terminates the workflow and
// notifies the driver.
//
// The submission row is locked for the duration of the transaction, so
// concurrent decisions on the same submission serialize and the invoice is
// generated at most once.
type ApproveBOLCommandHandler struct {
	uowFactory    UoWFactory
	notifier      Notifier
	calculator    services.InvoiceCalculator
	channelPolicy notification.ChannelPolicy
}

// NewApproveBOLCommandHandler creates a handler for broker review decisions.
func NewApproveBOLCommandHandler(
	uowFactory UoWFactory, notifier Notifier,
	calculator services.InvoiceCalculator, channelPolicy notification.ChannelPolicy,
) ApproveBOLCommandHandler {
	return ApproveBOLCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		calculator:    calculator,
		channelPolicy: channelPolicy,
	}
}

// Handle processes the decision and returns the generated invoice id on
// approval, or an empty string on rejection.
func (h *ApproveBOLCommandHandler) Handle(ctx context.Context, cmd ApproveBOLCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	submission, err := uow.SubmissionRepository().GetForUpdate(ctx, cmd.SubmissionID())
	if err != nil {
		return "", err
	}

	if submission.Invoice() != nil {
		return "", errs.NewInvariantViolationError(
			"submission " + submission.ID().String() + " already has invoice " + submission.Invoice().ID())
	}

	if !cmd.Approved() {
		return "", h.reject(ctx, uow, submission, cmd, now)
	}

	invoiceID, err := h.approve(ctx, uow, submission, cmd, now)
	if err != nil {
		return "", err
	}

	return invoiceID, nil
}

func (h *ApproveBOLCommandHandler) approve(
	ctx context.Context, uow UoW, submission *bol.Submission, cmd ApproveBOLCommand, now time.Time,
) (string, error) {
	if err := submission.Approve(cmd.BrokerID(), cmd.ReviewNotes(), now); err != nil {
		return "", err
	}

	invoice, err := h.calculator.BuildInvoice(submission, cmd.BaseRate(), cmd.Adjustments(), now)
	if err != nil {
		return "", err
	}

	if err = submission.AttachInvoice(invoice, now); err != nil {
		return "", err
	}

	invoiceNotice, err := notification.NewInvoiceSent(submission, cmd.BillTo(), h.channelPolicy, now)
	if err != nil {
		return "", err
	}

	if err = submission.MarkInvoiceSent(now); err != nil {
		return "", err
	}

	if err = submission.Complete(now); err != nil {
		return "", err
	}

	if err = uow.SubmissionRepository().Update(ctx, submission); err != nil {
		return "", err
	}

	if err = uow.NotificationRepository().Add(ctx, invoiceNotice); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	h.notifier.Dispatch(ctx, invoiceNotice)

	return invoice.ID(), nil
}

func (h *ApproveBOLCommandHandler) reject(
	ctx context.Context, uow UoW, submission *bol.Submission, cmd ApproveBOLCommand, now time.Time,
) error {
	if err := submission.Reject(cmd.BrokerID(), cmd.ReviewNotes(), now); err != nil {
		return err
	}

	rejectionNotice, err := notification.NewBOLRejected(submission, cmd.DriverContact(), h.channelPolicy, now)
	if err != nil {
		return err
	}

	if err = uow.SubmissionRepository().Update(ctx, submission); err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, rejectionNotice); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Dispatch(ctx, rejectionNotice)

	return nil
}
