package jobs

import (
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchJob *NotificationDispatchJob
	lowStockJob *LowStockJob
}

func NewJobManager(
	dispatcher Dispatcher,
	listener *pq.Listener,
	lowStock LowStockEnqueuer,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob: NewNotificationDispatchJob(dispatcher, listener, logger),
		lowStockJob: NewLowStockJob(lowStock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}

	if err := jm.lowStockJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start low stock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running work.
func (jm *JobManager) StopAll() {
	jm.lowStockJob.Stop()
	jm.dispatchJob.Stop()
}

// WakeDispatcher requests an immediate outbox dispatch.
func (jm *JobManager) WakeDispatcher() {
	jm.dispatchJob.Wake()
}
