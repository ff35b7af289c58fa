package queries

import (
	"context"
	"errors"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListOrderPaymentsQueryIsNotConstructed = errors.New(
	"ListOrderPaymentsQuery must be created via NewListOrderPaymentsQuery constructor",
)

// ListOrderPaymentsQuery reads the payment ledger of one order.
type ListOrderPaymentsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListOrderPaymentsQuery(orderRef any) (ListOrderPaymentsQuery, error) {
	id, err := kernel.ParseRef(orderRef)
	if err != nil {
		return ListOrderPaymentsQuery{}, err
	}
	return ListOrderPaymentsQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderPaymentsQueryIsNotConstructed)
}

func (q ListOrderPaymentsQuery) OrderID() kernel.UUID { return q.orderID }

type ListOrderPaymentsQueryHandler struct {
	db *gorm.DB
}

func NewListOrderPaymentsQueryHandler(db *gorm.DB) ListOrderPaymentsQueryHandler {
	return ListOrderPaymentsQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound when the order does not exist.
func (h ListOrderPaymentsQueryHandler) Handle(ctx context.Context, query ListOrderPaymentsQuery) (PaymentHistory, error) {
	if err := query.Validate(); err != nil {
		return PaymentHistory{}, err
	}

	var totals []decimal.Decimal
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID().Bytes()).
		Pluck("total", &totals).Error
	if err != nil {
		return PaymentHistory{}, err
	}
	if len(totals) == 0 {
		return PaymentHistory{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return loadPaymentHistory(ctx, h.db, query.OrderID(), totals[0])
}

// loadPaymentHistory lists the payments of an order newest first and
// accumulates running totals oldest first.
func loadPaymentHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID, total decimal.Decimal) (PaymentHistory, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			amount,
			method,
			paid_at,
			notes,
			created_at
		FROM payments
		WHERE order_id = ?
		ORDER BY paid_at DESC, created_at DESC
	`, orderID.Bytes()).Rows()
	if err != nil {
		return PaymentHistory{}, err
	}
	defer rows.Close()

	payments := make([]PaymentView, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			amount    decimal.Decimal
			method    string
			paidAt    time.Time
			notes     string
			createdAt time.Time
		)
		if err := rows.Scan(&id, &amount, &method, &paidAt, &notes, &createdAt); err != nil {
			return PaymentHistory{}, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return PaymentHistory{}, idErr
		}
		payments = append(payments, PaymentView{
			ID:        paymentID,
			Amount:    amount,
			Method:    payment.Method(method),
			PaidAt:    paidAt,
			Notes:     notes,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return PaymentHistory{}, err
	}

	running := decimal.Zero
	for i := len(payments) - 1; i >= 0; i-- {
		running = running.Add(payments[i].Amount)
		payments[i].RunningTotal = running
	}

	return PaymentHistory{
		Payments:    payments,
		TotalPaid:   running,
		Outstanding: total.Sub(running),
	}, nil
}
