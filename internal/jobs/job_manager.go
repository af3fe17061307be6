package jobs

import (
	"fmt"

	"brokerage/internal/core/application/usecases/commands"

	"github.com/sirupsen/logrus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationDispatchJob *NotificationDispatchJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	dispatchHandler commands.DispatchNotificationsCommandHandler,
	dispatchSchedule string,
	dispatchBatchSize int,
	log *logrus.Logger,
) *JobManager {
	return &JobManager{
		notificationDispatchJob: NewNotificationDispatchJob(
			dispatchHandler, dispatchSchedule, dispatchBatchSize, log),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationDispatchJob.Stop()
}
