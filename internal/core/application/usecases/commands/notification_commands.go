package commands

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/ports"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"go.uber.org/zap"
)

const DefaultDispatchBatchSize = 50

var ErrSavePushSubscriptionCommandIsNotConstructed = errors.New(
	"SavePushSubscriptionCommand must be created via NewSavePushSubscriptionCommand constructor",
)

type SavePushSubscriptionCommand struct { //nolint:recvcheck //using for validation
	subscription *notification.Subscription

	guard guard.ConstructorGuard
}

// NewSavePushSubscriptionCommand binds the browser subscription to the
// authenticated principal.
func NewSavePushSubscriptionCommand(principal access.Principal, endpoint, p256dh, auth string) (SavePushSubscriptionCommand, error) {
	if !principal.IsAuthenticated() {
		return SavePushSubscriptionCommand{}, errs.NewAccessDeniedError("anonymous", "push:subscribe")
	}
	s, err := notification.NewSubscription(endpoint, p256dh, auth, principal.UserID(), now())
	if err != nil {
		return SavePushSubscriptionCommand{}, err
	}
	return SavePushSubscriptionCommand{subscription: s, guard: guard.NewConstructorGuard()}, nil
}

func (c SavePushSubscriptionCommand) Validate() error {
	return c.guard.Validate(ErrSavePushSubscriptionCommandIsNotConstructed)
}

// NotificationCommandHandler stores push subscriptions and drains the outbox.
//
// Dispatch is at most once: a batch is claimed and marked dispatching in its
// own transaction before anything is sent, so a crash mid-send never causes a
// second delivery. Failures are logged and stored on the message.
type NotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	mailer     ports.Mailer
	pusher     ports.Pusher
	logger     *zap.Logger
	batchSize  int
}

func NewNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	mailer ports.Mailer,
	pusher ports.Pusher,
	logger *zap.Logger,
) NotificationCommandHandler {
	return NotificationCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
		pusher:     pusher,
		logger:     logger.With(zap.String("component", "notifications")),
		batchSize:  DefaultDispatchBatchSize,
	}
}

func (h *NotificationCommandHandler) SaveSubscription(ctx context.Context, cmd SavePushSubscriptionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PushSubscriptionRepository().Save(ctx, cmd.subscription); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// Dispatch delivers one batch of pending messages and returns how many were
// claimed.
func (h *NotificationCommandHandler) Dispatch(ctx context.Context) (int, error) {
	claimed, err := h.claim(ctx)
	if err != nil {
		return 0, err
	}

	for _, m := range claimed {
		deliveryErr := h.deliver(ctx, m)
		if deliveryErr != nil {
			m.MarkFailed(deliveryErr, now())
			h.logger.Error("notification delivery failed",
				zap.String("id", m.ID().String()),
				zap.String("kind", string(m.Kind())),
				zap.Error(deliveryErr),
			)
		} else {
			m.MarkSent(now())
		}

		if err := h.uowFactory.Create().OutboxRepository().Update(ctx, m); err != nil {
			h.logger.Error("failed to store notification state",
				zap.String("id", m.ID().String()),
				zap.String("state", string(m.State())),
				zap.Error(err),
			)
		}
	}
	return len(claimed), nil
}

func (h *NotificationCommandHandler) claim(ctx context.Context) ([]*notification.Message, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	pending, err := repo.ClaimPending(ctx, h.batchSize)
	if err != nil {
		return nil, err
	}
	for _, m := range pending {
		if err := m.MarkDispatching(); err != nil {
			return nil, err
		}
		if err := repo.Update(ctx, m); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return pending, nil
}

func (h *NotificationCommandHandler) deliver(ctx context.Context, m *notification.Message) error {
	var mailErr, pushErr error

	if h.mailer.Enabled() {
		mailErr = h.mailer.Send(ctx, m.Subject(), m.HTMLBody())
	}
	if h.pusher.Enabled() {
		pushErr = h.push(ctx, m)
	}

	return errors.Join(mailErr, pushErr)
}

func (h *NotificationCommandHandler) push(ctx context.Context, m *notification.Message) error {
	subs := h.uowFactory.Create().PushSubscriptionRepository()
	list, err := subs.List(ctx, m.UserID())
	if err != nil {
		return err
	}

	var failures []error
	for _, s := range list {
		err := h.pusher.Push(ctx, s, m.Push())
		switch {
		case err == nil:
		case errors.Is(err, ports.ErrSubscriptionGone):
			if err := subs.Delete(ctx, s.Endpoint()); err != nil {
				h.logger.Warn("failed to prune push subscription", zap.String("endpoint", s.Endpoint()), zap.Error(err))
			} else {
				h.logger.Info("pruned expired push subscription", zap.String("endpoint", s.Endpoint()))
			}
		default:
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
