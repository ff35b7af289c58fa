package commands

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/party"
)

type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle checks that both parties are active, draws the order number and
// stores the order with its initial line items.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	parties := uow.PartyRepository()
	if _, err := activeParty(ctx, parties, cmd.ClientID(), party.Client); err != nil {
		return err
	}
	if _, err := activeParty(ctx, parties, cmd.SupplierID(), party.Supplier); err != nil {
		return err
	}

	productIDs := make([]kernel.UUID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		productIDs = append(productIDs, item.ProductID)
	}
	if len(productIDs) > 0 {
		if _, err := orderableProducts(ctx, uow.ProductRepository(), productIDs); err != nil {
			return err
		}
	}

	orderRepo := uow.OrderRepository()
	number, err := orderRepo.NextNumber(ctx)
	if err != nil {
		return err
	}

	at := now()
	o, err := order.NewOrder(cmd.OrderID(), number, cmd.ClientID(), cmd.SupplierID(), cmd.Notes(), at)
	if err != nil {
		return err
	}

	for _, in := range cmd.Items() {
		item, err := order.NewLineItem(in.ItemID, in.ProductID, in.Quantity, in.UnitPrice, in.UnitCost)
		if err != nil {
			return err
		}
		if err := o.AddLineItem(item, at); err != nil {
			return err
		}
	}

	if err := orderRepo.Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
