package order

import (
	"errors"
	"fmt"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// FreightProductID is the sentinel product referenced by the freight line.
// It is seeded by the migrate command.
var FreightProductID = kernel.MustNewUUIDFromString("00000000-0000-4000-8000-0000000000f1")

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product row of an order.
type LineItem struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice decimal.Decimal
	unitCost  decimal.Decimal

	isConstructed bool
}

// NewLineItem creates a line item for a regular product.
// Quantity must be positive, prices must not be negative.
func NewLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	unitCost decimal.Decimal,
) (*LineItem, error) {
	item := &LineItem{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setUnitCost(unitCost),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem rebuilds a persisted line item, the freight line included.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice decimal.Decimal,
	unitCost decimal.Decimal,
) (*LineItem, error) {
	return NewLineItem(id, productID, quantity, unitPrice, unitCost)
}

func newFreightLine(cost decimal.Decimal) (*LineItem, error) {
	return NewLineItem(kernel.NewUUID(), FreightProductID, 1, cost, cost)
}

func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (li *LineItem) ID() kernel.UUID            { return li.id }
func (li *LineItem) ProductID() kernel.UUID     { return li.productID }
func (li *LineItem) Quantity() int              { return li.quantity }
func (li *LineItem) UnitPrice() decimal.Decimal { return li.unitPrice }
func (li *LineItem) UnitCost() decimal.Decimal  { return li.unitCost }

// IsFreight reports whether the line is the freight line.
func (li *LineItem) IsFreight() bool {
	return li.productID.IsEqual(FreightProductID)
}

// Subtotal is quantity × unit price.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(int64(li.quantity)))
}

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("product", err)
	}
	li.productID = id
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(price decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeAmount("unit price", price); err != nil {
		return err
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setUnitCost(cost decimal.Decimal) error {
	if err := kernel.ValidateNonNegativeAmount("unit cost", cost); err != nil {
		return err
	}
	li.unitCost = cost
	return nil
}
