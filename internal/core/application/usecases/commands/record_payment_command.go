package commands

import (
	"errors"
	"strings"
	"time"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand appends a payment to the ledger of an order.
// With notify set, a payment notification is enqueued in the same transaction.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	paymentID kernel.UUID
	orderID   kernel.UUID
	amount    decimal.Decimal
	method    payment.Method
	paidAt    time.Time
	notes     string
	notify    bool

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	principal access.Principal,
	paymentID kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method payment.Method,
	paidAt time.Time,
	notes string,
	notify bool,
) (RecordPaymentCommand, error) {
	var paidAtErr error
	if paidAt.IsZero() {
		paidAtErr = errs.NewValueIsRequiredError("paid at")
	}

	if err := errors.Join(
		paymentID.Validate(),
		orderID.Validate(),
		kernel.ValidatePositiveAmount("amount", amount),
		kernel.ValidateCents("amount", amount),
		method.Validate(),
		paidAtErr,
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return RecordPaymentCommand{
		principal: principal,
		paymentID: paymentID,
		orderID:   orderID,
		amount:    amount,
		method:    method,
		paidAt:    paidAt,
		notes:     strings.TrimSpace(notes),
		notify:    notify,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) Principal() access.Principal { return c.principal }
func (c RecordPaymentCommand) PaymentID() kernel.UUID      { return c.paymentID }
func (c RecordPaymentCommand) OrderID() kernel.UUID        { return c.orderID }
func (c RecordPaymentCommand) Amount() decimal.Decimal     { return c.amount }
func (c RecordPaymentCommand) Method() payment.Method      { return c.method }
func (c RecordPaymentCommand) PaidAt() time.Time           { return c.paidAt }
func (c RecordPaymentCommand) Notes() string               { return c.notes }
func (c RecordPaymentCommand) Notify() bool                { return c.notify }
