package queries

import (
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/guard"
)

var ErrGetOrderViewQueryIsNotConstructed = errors.New(
	"GetOrderViewQuery must be created via NewGetOrderViewQuery constructor",
)

// ViewState tells a found view from a missing order.
type ViewState string

const (
	ViewFound    ViewState = "found"
	ViewNotFound ViewState = "not_found"
)

// GetOrderViewQuery loads the read-only composite of one order.
//
// The order reference is normalized with kernel.ParseRef, so "X" and
// {"id":"X"} select the same order.
//
// Example:
//
//	query, err := NewGetOrderViewQuery(map[string]any{"id": "0b7e4c1a-5f3d-4a8e-9c1b-2d6f7e8a9b0c"})
//	view, err := handler.Handle(ctx, query)
//	if view.State == ViewNotFound {
//	    // render the not-found page
//	}
type GetOrderViewQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderViewQuery(orderRef any) (GetOrderViewQuery, error) {
	id, err := kernel.ParseRef(orderRef)
	if err != nil {
		return GetOrderViewQuery{}, err
	}
	return GetOrderViewQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderViewQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderViewQueryIsNotConstructed)
}

func (q GetOrderViewQuery) OrderID() kernel.UUID { return q.orderID }

// OrderView is the order with its parties, line items, payment history, status
// history and attachments. Only State is set when the order does not exist.
type OrderView struct {
	State       ViewState
	Order       OrderSummary
	Items       []LineItemView
	Payments    PaymentHistory
	History     []StatusChangeView
	Attachments []AttachmentView
}
