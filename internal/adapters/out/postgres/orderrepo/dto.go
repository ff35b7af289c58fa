package orderrepo

import (
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NumberSequence feeds order numbers. It is created by the migrate command.
const NumberSequence = "order_number_seq"

type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number             string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status             int             `gorm:"type:smallint;not null;index"`
	ClientID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	SupplierID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Notes              string          `gorm:"type:text;not null;default:''"`
	Total              decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	Paid               decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	Outstanding        decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	FreightWeightGrams int64           `gorm:"not null;default:0"`
	FreightCost        decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	CreatedAt          time.Time       `gorm:"not null;autoCreateTime:false;index"`
	UpdatedAt          time.Time       `gorm:"not null;autoUpdateTime:false"`
	LineItems          []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	UnitCost  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	IsFreight bool            `gorm:"not null;default:false"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

type StatusChangeDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"type:smallint;not null"`
	ToStatus   int       `gorm:"type:smallint;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	OutOfOrder bool      `gorm:"not null;default:false"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := o.LineItems()
	lineItems := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		lineItems = append(lineItems, LineItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Position:  i,
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			UnitCost:  item.UnitCost(),
			Subtotal:  item.Subtotal(),
			IsFreight: item.IsFreight(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		Number:             o.Number(),
		Status:             int(o.Status()),
		ClientID:           o.ClientID().Bytes(),
		SupplierID:         o.SupplierID().Bytes(),
		Notes:              o.Notes(),
		Total:              o.Total(),
		Paid:               o.Paid(),
		Outstanding:        o.Outstanding(),
		FreightWeightGrams: o.FreightWeightGrams(),
		FreightCost:        o.FreightCost(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
		LineItems:          lineItems,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		itemID, idErr := kernel.UUIDFromBytes(li.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		productID, idErr := kernel.UUIDFromBytes(li.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.RestoreLineItem(itemID, productID, li.Quantity, li.UnitPrice, li.UnitCost)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 id,
		Number:             dto.Number,
		Status:             order.Status(dto.Status),
		ClientID:           clientID,
		SupplierID:         supplierID,
		Notes:              dto.Notes,
		Items:              items,
		Paid:               dto.Paid,
		FreightWeightGrams: dto.FreightWeightGrams,
		FreightCost:        dto.FreightCost,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}

func statusChangeFromDomain(c *order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		OrderID:    c.OrderID().Bytes(),
		FromStatus: int(c.From()),
		ToStatus:   int(c.To()),
		ActorID:    c.ActorID().Bytes(),
		OutOfOrder: c.OutOfOrder(),
		ChangedAt:  c.ChangedAt(),
	}
}
