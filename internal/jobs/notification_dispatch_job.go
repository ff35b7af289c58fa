package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	dispatchSchedule = "*/10 * * * * *"
	listenerPing     = 90 * time.Second
)

// Dispatcher delivers one batch of pending outbox messages.
type Dispatcher interface {
	Dispatch(ctx context.Context) (int, error)
}

// NotificationDispatchJob drains the notification outbox. It wakes on its cron
// schedule, on every LISTEN notification and on Wake. Batches always run on a
// single goroutine, so two dispatches never overlap.
type NotificationDispatchJob struct {
	dispatcher Dispatcher
	listener   *pq.Listener
	cron       *cron.Cron
	logger     *zap.Logger

	wake     chan struct{}
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewNotificationDispatchJob creates the job. listener may be nil, in which
// case only the schedule and Wake trigger a dispatch. The job closes the
// listener on Stop.
func NewNotificationDispatchJob(dispatcher Dispatcher, listener *pq.Listener, logger *zap.Logger) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		dispatcher: dispatcher,
		listener:   listener,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With(zap.String("component", "notification_dispatch_job")),
		wake:       make(chan struct{}, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start schedules the job and runs a first dispatch right away so messages
// left pending by a previous process are not delayed.
func (j *NotificationDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(dispatchSchedule, j.Wake); err != nil {
		return err
	}

	var notify <-chan *pq.Notification
	if j.listener != nil {
		notify = j.listener.Notify
	}

	go j.loop(notify)
	j.cron.Start()
	j.Wake()

	j.logger.Info("notification dispatch job started",
		zap.String("schedule", dispatchSchedule),
		zap.Bool("listening", j.listener != nil),
	)
	return nil
}

// Wake requests a dispatch. Requests made while one is pending are merged.
func (j *NotificationDispatchJob) Wake() {
	select {
	case j.wake <- struct{}{}:
	default:
	}
}

// Stop waits for the running batch to finish. It must follow a successful
// Start; later calls are no-ops.
func (j *NotificationDispatchJob) Stop() {
	j.stopOnce.Do(j.shutdown)
}

func (j *NotificationDispatchJob) shutdown() {
	<-j.cron.Stop().Done()
	close(j.stop)
	<-j.done

	if j.listener != nil {
		if err := j.listener.Close(); err != nil {
			j.logger.Warn("failed to close outbox listener", zap.Error(err))
		}
	}
	j.logger.Info("notification dispatch job stopped")
}

func (j *NotificationDispatchJob) loop(notify <-chan *pq.Notification) {
	defer close(j.done)

	for {
		select {
		case <-j.stop:
			return
		case <-j.wake:
			j.drain()
		case <-notify:
			// A nil notification follows a reconnect; messages may have been missed.
			j.drain()
		case <-time.After(listenerPing):
			if j.listener != nil {
				go j.ping()
			}
		}
	}
}

func (j *NotificationDispatchJob) ping() {
	if err := j.listener.Ping(); err != nil {
		j.logger.Warn("outbox listener ping failed", zap.Error(err))
	}
}

// drain dispatches batches until the outbox is empty or stop is requested.
func (j *NotificationDispatchJob) drain() {
	ctx := context.Background()
	for {
		n, err := j.dispatcher.Dispatch(ctx)
		if err != nil {
			j.logger.Error("notification dispatch failed", zap.Error(err))
			return
		}
		if n == 0 {
			return
		}
		j.logger.Debug("notification batch dispatched", zap.Int("count", n))

		select {
		case <-j.stop:
			return
		default:
		}
	}
}
