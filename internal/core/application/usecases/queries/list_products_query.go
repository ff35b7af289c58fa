package queries

import (
	"context"
	"errors"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the catalogue by name. The freight product is never listed.
type ListProductsQuery struct {
	includeInactive bool
	lowStockOnly    bool

	guard guard.ConstructorGuard
}

func NewListProductsQuery(includeInactive, lowStockOnly bool) ListProductsQuery {
	return ListProductsQuery{includeInactive: includeInactive, lowStockOnly: lowStockOnly, guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductView struct {
	ID                kernel.UUID
	Details           product.Details
	Stock             product.Stock
	Active            bool
	DeactivatedAt     *time.Time
	DeactivatedReason string
	Shortages         []product.Shortage
}

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := h.db.WithContext(ctx).
		Table("products").
		Select(`id, name, brand, category, cost_price, sale_price, weight_grams, active,
			stock_bottles, stock_caps, stock_labels, deactivated_at, deactivated_reason`).
		Where("id <> ?", order.FreightProductID.Bytes())
	if !query.includeInactive {
		q = q.Where("active = ?", true)
	}
	if query.lowStockOnly {
		q = q.Where("stock_bottles < ? OR stock_caps < ? OR stock_labels < ?",
			product.LowStockThreshold, product.LowStockThreshold, product.LowStockThreshold)
	}

	var rows []struct {
		ID           uuid.UUID
		Name         string
		Brand        string
		Category     string
		CostPrice    decimal.Decimal
		SalePrice    decimal.Decimal
		WeightGrams  int
		Active       bool
		StockBottles int
		StockCaps    int
		StockLabels  int

		DeactivatedAt     *time.Time
		DeactivatedReason string
	}
	if err := q.Order("name").Scan(&rows).Error; err != nil {
		return nil, err
	}

	products := make([]ProductView, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		details := product.Details{
			Name:        r.Name,
			Brand:       r.Brand,
			Category:    r.Category,
			CostPrice:   r.CostPrice,
			SalePrice:   r.SalePrice,
			WeightGrams: r.WeightGrams,
		}
		stock := product.Stock{Bottles: r.StockBottles, Caps: r.StockCaps, Labels: r.StockLabels}
		p, err := product.RestoreProduct(id, details, stock, r.Active, r.DeactivatedAt, r.DeactivatedReason)
		if err != nil {
			return nil, err
		}
		products = append(products, ProductView{
			ID:                id,
			Details:           details,
			Stock:             stock,
			Active:            r.Active,
			DeactivatedAt:     p.DeactivatedAt(),
			DeactivatedReason: p.DeactivatedReason(),
			Shortages:         p.LowStock(),
		})
	}
	return products, nil
}
