package paymentrepo

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/payment"
	"gestion/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

func (r *GormPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormPaymentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&PaymentDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("payment", id.String())
	}
	return nil
}

// ListByOrder returns the ledger in chronological order.
func (r *GormPaymentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	var dtos []PaymentDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("paid_at, created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	payments := make([]*payment.Payment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *GormPaymentRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	return r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Delete(&PaymentDTO{}).Error
}
