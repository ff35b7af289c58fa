package commands

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/ports"
	"gestion/internal/pkg/guard"

	"go.uber.org/zap"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(principal access.Principal, orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{principal: principal, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Principal() access.Principal { return c.principal }
func (c DeleteOrderCommand) OrderID() kernel.UUID        { return c.orderID }

// DeleteOrderCommandHandler hard-deletes an order and everything hanging off it
// in one transaction. Attachment files are removed once the rows are gone;
// a file that cannot be removed is logged and left behind.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	blobs      ports.BlobStorage
	logger     *zap.Logger
}

func NewDeleteOrderCommandHandler(uowFactory UoWFactory, blobs ports.BlobStorage, logger *zap.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		logger:     logger.With(zap.String("component", "delete_order")),
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.OrderDelete); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := uow.PaymentRepository().DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}
	paths, err := uow.AttachmentRepository().DeleteByEntity(ctx, attachment.EntityOrder, o.ID())
	if err != nil {
		return err
	}
	if err := orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	for _, path := range paths {
		if err := h.blobs.Remove(ctx, path); err != nil {
			h.logger.Error("failed to remove attachment file",
				zap.String("order", o.Number()),
				zap.String("path", path),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("order deleted",
		zap.String("order", o.Number()),
		zap.String("actor", cmd.Principal().Email()),
		zap.Int("attachments", len(paths)),
	)
	return nil
}
