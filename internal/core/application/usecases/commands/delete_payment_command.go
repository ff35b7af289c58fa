package commands

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/guard"
)

var ErrDeletePaymentCommandIsNotConstructed = errors.New(
	"DeletePaymentCommand must be created via NewDeletePaymentCommand constructor",
)

type DeletePaymentCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePaymentCommand(principal access.Principal, paymentID kernel.UUID) (DeletePaymentCommand, error) {
	if err := paymentID.Validate(); err != nil {
		return DeletePaymentCommand{}, err
	}
	return DeletePaymentCommand{principal: principal, paymentID: paymentID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrDeletePaymentCommandIsNotConstructed)
}

func (c DeletePaymentCommand) Principal() access.Principal { return c.principal }
func (c DeletePaymentCommand) PaymentID() kernel.UUID      { return c.paymentID }

type DeletePaymentCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeletePaymentCommandHandler(uowFactory UoWFactory) DeletePaymentCommandHandler {
	return DeletePaymentCommandHandler{uowFactory: uowFactory}
}

func (h *DeletePaymentCommandHandler) Handle(ctx context.Context, cmd DeletePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Principal().Require(access.PaymentDelete); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	p, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, p.OrderID())
	if err != nil {
		return err
	}

	if err := paymentRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}
	if err := reconcileLedger(ctx, paymentRepo, o, now()); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
