package productrepo

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/product"
	"gestion/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", p.ID().String())
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormProductRepository) GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error) {
	found := make(map[kernel.UUID]*product.Product, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		found[p.ID()] = p
	}
	return found, nil
}

func (r *GormProductRepository) ListLowStock(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Where("active").
		Where("stock_bottles < @t OR stock_caps < @t OR stock_labels < @t", map[string]any{"t": product.LowStockThreshold}).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// SeedFreightProduct inserts the freight sentinel unless it exists.
func SeedFreightProduct(ctx context.Context, db *gorm.DB) error {
	dto := FreightProduct()
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
