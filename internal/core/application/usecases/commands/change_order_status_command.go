package commands

import (
	"errors"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to any other status. Moves that skip
// ahead, go backwards or leave the terminal status are flagged out of order.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	orderID   kernel.UUID
	target    order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	principal access.Principal,
	orderID kernel.UUID,
	target order.Status,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	return ChangeOrderStatusCommand{
		principal: principal,
		orderID:   orderID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Principal() access.Principal { return c.principal }
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID        { return c.orderID }
func (c ChangeOrderStatusCommand) Target() order.Status        { return c.target }
