package queries

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"gorm.io/gorm"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// OrderFilter narrows ListOrdersQuery. Nil fields do not filter.
type OrderFilter struct {
	Status     *order.Status
	ClientID   *kernel.UUID
	SupplierID *kernel.UUID
	Limit      int
	Offset     int
}

// ListOrdersQuery lists order summaries newest first.
type ListOrdersQuery struct {
	filter OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery applies DefaultListLimit to a zero limit.
func NewListOrdersQuery(filter OrderFilter) (ListOrdersQuery, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	var statusErr, rangeErr error
	if filter.Status != nil {
		statusErr = filter.Status.Validate()
	}
	if filter.Limit < 0 || filter.Limit > MaxListLimit {
		rangeErr = errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxListLimit)
	}
	if filter.Offset < 0 {
		rangeErr = errors.Join(rangeErr, errs.NewValueIsInvalidError("offset"))
	}
	if err := errors.Join(statusErr, rangeErr); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	q := orderSummaries(h.db.WithContext(ctx))
	if f.Status != nil {
		q = q.Where("o.status = ?", int(*f.Status))
	}
	if f.ClientID != nil {
		q = q.Where("o.client_id = ?", f.ClientID.Bytes())
	}
	if f.SupplierID != nil {
		q = q.Where("o.supplier_id = ?", f.SupplierID.Bytes())
	}

	var rows []orderSummaryRow
	err := q.Order("o.created_at DESC").
		Order("o.number DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	orders := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		summary, err := r.toView()
		if err != nil {
			return nil, err
		}
		orders = append(orders, summary)
	}
	return orders, nil
}
