package commands

import (
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/guard"
)

var (
	ErrAddOrderLineItemCommandIsNotConstructed = errors.New(
		"AddOrderLineItemCommand must be created via NewAddOrderLineItemCommand constructor",
	)
	ErrRemoveOrderLineItemCommandIsNotConstructed = errors.New(
		"RemoveOrderLineItemCommand must be created via NewRemoveOrderLineItemCommand constructor",
	)
)

// AddOrderLineItemCommand appends a product line to an order.
// Quantity and prices are validated when the line item is built.
type AddOrderLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    LineItemInput

	guard guard.ConstructorGuard
}

func NewAddOrderLineItemCommand(orderID kernel.UUID, item LineItemInput) (AddOrderLineItemCommand, error) {
	if err := errors.Join(orderID.Validate(), item.ItemID.Validate()); err != nil {
		return AddOrderLineItemCommand{}, err
	}
	return AddOrderLineItemCommand{orderID: orderID, item: item, guard: guard.NewConstructorGuard()}, nil
}

func (c AddOrderLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineItemCommandIsNotConstructed)
}

func (c AddOrderLineItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c AddOrderLineItemCommand) Item() LineItemInput  { return c.item }

type RemoveOrderLineItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderLineItemCommand(orderID, itemID kernel.UUID) (RemoveOrderLineItemCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return RemoveOrderLineItemCommand{}, err
	}
	return RemoveOrderLineItemCommand{orderID: orderID, itemID: itemID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveOrderLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineItemCommandIsNotConstructed)
}

func (c RemoveOrderLineItemCommand) OrderID() kernel.UUID { return c.orderID }
func (c RemoveOrderLineItemCommand) ItemID() kernel.UUID  { return c.itemID }
