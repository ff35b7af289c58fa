package commands

import (
	"context"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/services"

	"go.uber.org/zap"
)

// ChangeOrderStatusCommandHandler applies a status transition.
//
// The status update, the history row and the notification are written in one
// transaction. Delivery of the notification happens later in the dispatch job,
// so a failing mail server never blocks or undoes a transition.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	composer   services.NotificationComposer
	logger     *zap.Logger
}

func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	composer services.NotificationComposer,
	logger *zap.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		composer:   composer,
		logger:     logger.With(zap.String("component", "change_order_status")),
	}
}

// Handle returns changed=false when the order already has the target status.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (changed bool, err error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	principal := cmd.Principal()
	if err := principal.Require(access.OrderTransition); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	at := now()
	// Any holder of order:transition may leave the pipeline order; the
	// history row keeps the flag.
	change, err := o.ChangeStatus(cmd.Target(), true, principal.UserID(), at)
	if err != nil {
		return false, err
	}
	if change == nil {
		return false, nil
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return false, err
	}
	if err := orderRepo.AppendStatusChange(ctx, change); err != nil {
		return false, err
	}

	client, err := uow.PartyRepository().Get(ctx, o.ClientID())
	if err != nil {
		return false, err
	}
	msg, err := h.composer.OrderStatusChanged(o, change, client.Name(), at)
	if err != nil {
		return false, err
	}
	if err := uow.OutboxRepository().Enqueue(ctx, msg); err != nil {
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	if change.OutOfOrder() {
		h.logger.Warn("out-of-order status change",
			zap.String("order", o.Number()),
			zap.Stringer("from", change.From()),
			zap.Stringer("to", change.To()),
			zap.String("actor", principal.Email()),
		)
	}
	return true, nil
}
