package queries

import (
	"context"
	"time"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderViewQueryHandler struct {
	db   *gorm.DB
	urls URLResolver
}

func NewGetOrderViewQueryHandler(db *gorm.DB, urls URLResolver) GetOrderViewQueryHandler {
	return GetOrderViewQueryHandler{db: db, urls: urls}
}

// Handle never fails for a missing order; it returns a view in ViewNotFound state.
func (h GetOrderViewQueryHandler) Handle(ctx context.Context, query GetOrderViewQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var rows []orderSummaryRow
	if err := orderSummaries(db).Where("o.id = ?", orderID.Bytes()).Limit(1).Scan(&rows).Error; err != nil {
		return OrderView{}, err
	}
	if len(rows) == 0 {
		return OrderView{State: ViewNotFound}, nil
	}

	summary, err := rows[0].toView()
	if err != nil {
		return OrderView{}, err
	}

	items, err := h.lineItems(db, orderID)
	if err != nil {
		return OrderView{}, err
	}

	payments, err := loadPaymentHistory(ctx, h.db, orderID, summary.Total)
	if err != nil {
		return OrderView{}, err
	}

	history, err := h.history(db, orderID)
	if err != nil {
		return OrderView{}, err
	}

	attachments, err := listAttachments(ctx, h.db, h.urls, attachment.EntityOrder, orderID)
	if err != nil {
		return OrderView{}, err
	}

	return OrderView{
		State:       ViewFound,
		Order:       summary,
		Items:       items,
		Payments:    payments,
		History:     history,
		Attachments: attachments,
	}, nil
}

func (h GetOrderViewQueryHandler) lineItems(db *gorm.DB, orderID kernel.UUID) ([]LineItemView, error) {
	var rows []struct {
		ID          uuid.UUID
		ProductID   uuid.UUID
		ProductName string
		Brand       string
		Category    string
		Quantity    int
		UnitPrice   decimal.Decimal
		UnitCost    decimal.Decimal
		Subtotal    decimal.Decimal
		IsFreight   bool
	}
	err := db.Table("order_line_items AS li").
		Select(`li.id, li.product_id,
			COALESCE(p.name, '') AS product_name,
			COALESCE(p.brand, '') AS brand,
			COALESCE(p.category, '') AS category,
			li.quantity, li.unit_price, li.unit_cost, li.subtotal, li.is_freight`).
		Joins("LEFT JOIN products p ON p.id = li.product_id").
		Where("li.order_id = ?", orderID.Bytes()).
		Order("li.position").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]LineItemView, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		productID, err := kernel.UUIDFromBytes(r.ProductID[:])
		if err != nil {
			return nil, err
		}
		items = append(items, LineItemView{
			ID:          id,
			ProductID:   productID,
			ProductName: r.ProductName,
			Brand:       r.Brand,
			Category:    r.Category,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			UnitCost:    r.UnitCost,
			Subtotal:    r.Subtotal,
			IsFreight:   r.IsFreight,
		})
	}
	return items, nil
}

func (h GetOrderViewQueryHandler) history(db *gorm.DB, orderID kernel.UUID) ([]StatusChangeView, error) {
	var rows []struct {
		FromStatus int
		ToStatus   int
		ActorID    uuid.UUID
		OutOfOrder bool
		ChangedAt  time.Time
	}
	err := db.Table("order_status_history").
		Select("from_status, to_status, actor_id, out_of_order, changed_at").
		Where("order_id = ?", orderID.Bytes()).
		Order("changed_at, id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	history := make([]StatusChangeView, 0, len(rows))
	for _, r := range rows {
		actorID, err := kernel.UUIDFromBytes(r.ActorID[:])
		if err != nil {
			return nil, err
		}
		history = append(history, StatusChangeView{
			From:       order.Status(r.FromStatus),
			To:         order.Status(r.ToStatus),
			ActorID:    actorID,
			OutOfOrder: r.OutOfOrder,
			ChangedAt:  r.ChangedAt,
		})
	}
	return history, nil
}
