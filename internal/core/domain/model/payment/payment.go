package payment

import (
	"errors"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment is one ledger entry of an order.
//
// Payment invariants:
//   - Amount is strictly positive
//   - Method is one of the known methods
//   - PaidAt is set
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    decimal.Decimal
	method    Method
	paidAt    time.Time
	notes     string
	createdAt time.Time

	isConstructed bool
}

// NewPayment validates and creates a ledger entry.
//
// Example:
//
//	p, err := payment.NewPayment(kernel.NewUUID(), orderID, decimal.NewFromInt(40), payment.Transfer, paidAt, "", time.Now())
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method Method,
	paidAt time.Time,
	notes string,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		notes:         strings.TrimSpace(notes),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		kernel.ValidatePositiveAmount("amount", amount),
		method.Validate(),
		p.setPaidAt(paidAt),
	); err != nil {
		return nil, err
	}

	p.amount = amount
	p.method = method
	return p, nil
}

// RestorePayment rebuilds a persisted payment.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method Method,
	paidAt time.Time,
	notes string,
	createdAt time.Time,
) (*Payment, error) {
	return NewPayment(id, orderID, amount, method, paidAt, notes, createdAt)
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

func (p *Payment) Method() Method {
	return p.method
}

func (p *Payment) PaidAt() time.Time {
	return p.paidAt
}

func (p *Payment) Notes() string {
	return p.notes
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	p.orderID = id
	return nil
}

func (p *Payment) setPaidAt(paidAt time.Time) error {
	if paidAt.IsZero() {
		return errs.NewValueIsRequiredError("paid at")
	}
	p.paidAt = paidAt
	return nil
}
