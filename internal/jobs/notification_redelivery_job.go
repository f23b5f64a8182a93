package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"freightflow/internal/core/application/usecases/commands"
)

// NotificationRedeliveryJob periodically re-dispatches failed notifications
// that still have retry attempts left.
type NotificationRedeliveryJob struct {
	handler  commands.RetryFailedNotificationsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRedeliveryJob creates a job that runs notification
// redelivery on the given cron schedule (with a seconds field).
func NewNotificationRedeliveryJob(
	handler commands.RetryFailedNotificationsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *NotificationRedeliveryJob {
	return &NotificationRedeliveryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_redelivery_job"),
	}
}

// Start begins the redelivery job on its schedule.
func (j *NotificationRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRetryFailedNotificationsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification redelivery job failed to build command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification redelivery job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification redelivery job started", "schedule", j.schedule)
	return nil
}

// Stop stops the redelivery job.
func (j *NotificationRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification redelivery job stopped")
}
