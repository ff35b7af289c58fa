package orderrepo

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/order"
	"gestion/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites every column of the order row, then replaces its line items.
// Callers run it inside a transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.LineItems) > 0 {
		if err := db.Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&StatusChangeDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

func (r *GormOrderRepository) NextNumber(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('" + NumberSequence + "')").Scan(&seq).Error; err != nil {
		return "", err
	}
	return order.FormatNumber(seq), nil
}

func (r *GormOrderRepository) AppendStatusChange(ctx context.Context, change *order.StatusChange) error {
	dto := statusChangeFromDomain(change)
	return r.db.WithContext(ctx).Create(&dto).Error
}
