package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/notification"
)

func failedNotification(t *testing.T, attempts int) *notification.Notification {
	t.Helper()
	n, err := notification.RestoreNotification(notification.RestoreNotificationParams{
		ID:           kernel.NewUUID(),
		SubmissionID: kernel.NewUUID(),
		Type:         notification.TypeBrokerReviewRequest,
		Recipient:    notification.Recipient{ID: "broker-1", Role: notification.RoleBroker},
		Channels:     []notification.Channel{notification.ChannelSMS},
		Message:      "review request",
		Urgency:      notification.UrgencyHigh,
		Status:       notification.Failed,
		Attempts:     attempts,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	return n
}

func TestRetryFailedNotificationsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRetryFailedNotificationsCommand()
	require.NoError(t, err)

	retryable := failedNotification(t, 1)
	exhausted := failedNotification(t, notification.MaxAttempts)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("GetAllFailed", mock.Anything).
			Return([]*notification.Notification{retryable, exhausted}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	notifier.On("Dispatch", mock.Anything, retryable).Once()

	h := commands.NewRetryFailedNotificationsCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
	notifier.AssertNotCalled(t, "Dispatch", mock.Anything, exhausted)
	uow.AssertExpectations(t)
}

func TestRetryFailedNotificationsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.RetryFailedNotificationsCommand // not constructed properly

	h := commands.NewRetryFailedNotificationsCommandHandler(new(MockUoWFactory), new(MockNotifier))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
