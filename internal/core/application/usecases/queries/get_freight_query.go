package queries

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/services"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetFreightQueryIsNotConstructed = errors.New(
	"GetFreightQuery must be created via NewGetFreightQuery constructor",
)

// GetFreightQuery previews the freight of an order from its current line items
// and product weights. Nothing is written.
type GetFreightQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetFreightQuery(orderRef any) (GetFreightQuery, error) {
	id, err := kernel.ParseRef(orderRef)
	if err != nil {
		return GetFreightQuery{}, err
	}
	return GetFreightQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetFreightQuery) Validate() error {
	return q.guard.Validate(ErrGetFreightQueryIsNotConstructed)
}

func (q GetFreightQuery) OrderID() kernel.UUID { return q.orderID }

// FreightPreview is the computed freight next to what is stored on the order.
type FreightPreview struct {
	Freight     services.Freight
	StoredGrams int64
	StoredCost  decimal.Decimal
	UpToDate    bool
}

type GetFreightQueryHandler struct {
	db         *gorm.DB
	calculator services.FreightCalculator
}

func NewGetFreightQueryHandler(db *gorm.DB, calculator services.FreightCalculator) GetFreightQueryHandler {
	return GetFreightQueryHandler{db: db, calculator: calculator}
}

func (h GetFreightQueryHandler) Handle(ctx context.Context, query GetFreightQuery) (FreightPreview, error) {
	if err := query.Validate(); err != nil {
		return FreightPreview{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID().Bytes()

	var stored []struct {
		FreightWeightGrams int64
		FreightCost        decimal.Decimal
	}
	if err := db.Table("orders").
		Select("freight_weight_grams, freight_cost").
		Where("id = ?", orderID).
		Limit(1).
		Scan(&stored).Error; err != nil {
		return FreightPreview{}, err
	}
	if len(stored) == 0 {
		return FreightPreview{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	var lines []struct {
		Quantity    int
		WeightGrams int
		IsFreight   bool
	}
	if err := db.Table("order_line_items AS li").
		Select("li.quantity, COALESCE(p.weight_grams, 0) AS weight_grams, li.is_freight").
		Joins("LEFT JOIN products p ON p.id = li.product_id").
		Where("li.order_id = ?", orderID).
		Scan(&lines).Error; err != nil {
		return FreightPreview{}, err
	}

	items := make([]services.FreightItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, services.FreightItem{
			Quantity:        l.Quantity,
			UnitWeightGrams: l.WeightGrams,
			IsFreight:       l.IsFreight,
		})
	}
	freight := h.calculator.Calculate(items)

	return FreightPreview{
		Freight:     freight,
		StoredGrams: stored[0].FreightWeightGrams,
		StoredCost:  stored[0].FreightCost,
		UpToDate: freight.WeightGrams() == stored[0].FreightWeightGrams &&
			freight.Cost().Equal(stored[0].FreightCost),
	}, nil
}
