// Package jobs provides scheduled background tasks. Jobs are cron driven
// (github.com/robfig/cron/v3) and managed through JobManager, which offers a
// unified start/stop interface for the application entrypoint.
package jobs

import (
	"context"

	"brokerage/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// NotificationDispatchJob drains the notification outbox on a schedule.
// Each run hands one batch of pending rows to the transport.
type NotificationDispatchJob struct {
	handler   commands.DispatchNotificationsCommandHandler
	cron      *cron.Cron
	log       *logrus.Entry
	schedule  string
	batchSize int
}

// NewNotificationDispatchJob creates the outbox dispatch job. The schedule is
// a six-field cron expression with a seconds column.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	schedule string,
	batchSize int,
	log *logrus.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		log:       log.WithField("component", "notification_dispatch_job"),
		schedule:  schedule,
		batchSize: batchSize,
	}
}

// Start schedules the job and begins running it.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
		if err != nil {
			j.log.WithError(err).Error("notification dispatch job misconfigured")
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.log.WithError(err).Error("notification dispatch run failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.WithField("schedule", j.schedule).Info("notification dispatch job started")
	return nil
}

// Stop stops the job. Runs already in flight finish on their own.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.log.Info("notification dispatch job stopped")
}
