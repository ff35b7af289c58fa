package commands

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
)

type AddOrderLineItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewAddOrderLineItemCommandHandler(uowFactory UoWFactory) AddOrderLineItemCommandHandler {
	return AddOrderLineItemCommandHandler{uowFactory: uowFactory}
}

// Handle locks the order, adds the line and rewrites total and outstanding.
// The freight line is left untouched until freight is committed again.
func (h *AddOrderLineItemCommandHandler) Handle(ctx context.Context, cmd AddOrderLineItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	in := cmd.Item()
	if _, err := orderableProducts(ctx, uow.ProductRepository(), []kernel.UUID{in.ProductID}); err != nil {
		return err
	}

	item, err := order.NewLineItem(in.ItemID, in.ProductID, in.Quantity, in.UnitPrice, in.UnitCost)
	if err != nil {
		return err
	}
	if err := o.AddLineItem(item, now()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

type RemoveOrderLineItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveOrderLineItemCommandHandler(uowFactory UoWFactory) RemoveOrderLineItemCommandHandler {
	return RemoveOrderLineItemCommandHandler{uowFactory: uowFactory}
}

func (h *RemoveOrderLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := o.RemoveLineItem(cmd.ItemID(), now()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, o); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
