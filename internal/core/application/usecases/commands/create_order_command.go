package commands

import (
	"errors"
	"strings"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineItemInput describes a line item to add to an order.
type LineItemInput struct {
	ItemID    kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
}

// CreateOrderCommand opens a new order in status NOVO PEDIDO.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, supplierID, "entregar de manhã", []LineItemInput{
//	    {ItemID: kernel.NewUUID(), ProductID: bottleID, Quantity: 600, UnitPrice: decimal.RequireFromString("0.80")},
//	})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientID   kernel.UUID
	supplierID kernel.UUID
	notes      string
	items      []LineItemInput

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	supplierID kernel.UUID,
	notes string,
	items []LineItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: strings.TrimSpace(notes),
		items: append([]LineItemInput(nil), items...),
		guard: guard.NewConstructorGuard(),
	}

	var clientErr, supplierErr error
	if err := clientID.Validate(); err != nil {
		clientErr = errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	if err := supplierID.Validate(); err != nil {
		supplierErr = errs.NewValueIsRequiredErrorWithCause("supplier", err)
	}

	if err := errors.Join(orderID.Validate(), clientErr, supplierErr); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.clientID = clientID
	cmd.supplierID = supplierID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) ClientID() kernel.UUID   { return c.clientID }
func (c CreateOrderCommand) SupplierID() kernel.UUID { return c.supplierID }
func (c CreateOrderCommand) Notes() string           { return c.notes }
func (c CreateOrderCommand) Items() []LineItemInput  { return c.items }
