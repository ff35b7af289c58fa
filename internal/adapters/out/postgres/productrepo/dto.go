package productrepo

import (
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Brand       string          `gorm:"type:varchar(255);not null;default:''"`
	Category    string          `gorm:"type:varchar(255);not null;default:'';index"`
	CostPrice   decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	SalePrice   decimal.Decimal `gorm:"type:numeric(18,6);not null;default:0"`
	WeightGrams int             `gorm:"not null;default:0"`
	Active      bool            `gorm:"not null;index"`
	Stock       StockDTO        `gorm:"embedded;embeddedPrefix:stock_"`

	DeactivatedAt     *time.Time
	DeactivatedReason string `gorm:"type:text;not null;default:''"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type StockDTO struct {
	Bottles int `gorm:"not null;default:0"`
	Caps    int `gorm:"not null;default:0"`
	Labels  int `gorm:"not null;default:0"`
}

func fromDomain(p *product.Product) ProductDTO {
	d := p.Details()
	s := p.Stock()
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        d.Name,
		Brand:       d.Brand,
		Category:    d.Category,
		CostPrice:   d.CostPrice,
		SalePrice:   d.SalePrice,
		WeightGrams: d.WeightGrams,
		Active:      p.IsActive(),
		Stock:       StockDTO{Bottles: s.Bottles, Caps: s.Caps, Labels: s.Labels},

		DeactivatedAt:     p.DeactivatedAt(),
		DeactivatedReason: p.DeactivatedReason(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(
		id,
		product.Details{
			Name:        dto.Name,
			Brand:       dto.Brand,
			Category:    dto.Category,
			CostPrice:   dto.CostPrice,
			SalePrice:   dto.SalePrice,
			WeightGrams: dto.WeightGrams,
		},
		product.Stock{Bottles: dto.Stock.Bottles, Caps: dto.Stock.Caps, Labels: dto.Stock.Labels},
		dto.Active,
		dto.DeactivatedAt,
		dto.DeactivatedReason,
	)
}

// FreightProduct is the sentinel row referenced by freight line items.
func FreightProduct() ProductDTO {
	return ProductDTO{
		ID:        order.FreightProductID.Bytes(),
		Name:      "Frete",
		Category:  "freight",
		CostPrice: decimal.Zero,
		SalePrice: decimal.Zero,
		Active:    false,
		Stock:     StockDTO{Bottles: product.LowStockThreshold, Caps: product.LowStockThreshold, Labels: product.LowStockThreshold},
	}
}
