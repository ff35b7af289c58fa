package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const lowStockSchedule = "0 0 8 * * *"

// LowStockEnqueuer writes the daily low stock alert into the outbox.
type LowStockEnqueuer interface {
	EnqueueLowStock(ctx context.Context) (bool, error)
}

// LowStockJob enqueues the low stock alert every day at 08:00.
type LowStockJob struct {
	enqueuer LowStockEnqueuer
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewLowStockJob(enqueuer LowStockEnqueuer, logger *zap.Logger) *LowStockJob {
	return &LowStockJob{
		enqueuer: enqueuer,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "low_stock_job")),
	}
}

func (j *LowStockJob) Start() error {
	if _, err := j.cron.AddFunc(lowStockSchedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("low stock job started", zap.String("schedule", lowStockSchedule))
	return nil
}

// Run performs one check. Errors are logged.
func (j *LowStockJob) Run(ctx context.Context) {
	enqueued, err := j.enqueuer.EnqueueLowStock(ctx)
	if err != nil {
		j.logger.Error("low stock check failed", zap.Error(err))
		return
	}
	if enqueued {
		j.logger.Info("low stock alert enqueued")
	}
}

func (j *LowStockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("low stock job stopped")
}
