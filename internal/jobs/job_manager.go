package jobs

import (
	"fmt"
	"log/slog"

	"freightflow/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRedeliveryJob *NotificationRedeliveryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	retryFailedNotificationsHandler commands.RetryFailedNotificationsCommandHandler,
	redeliverySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRedeliveryJob: NewNotificationRedeliveryJob(
			retryFailedNotificationsHandler, redeliverySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRedeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification redelivery job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationRedeliveryJob.Stop()
}
