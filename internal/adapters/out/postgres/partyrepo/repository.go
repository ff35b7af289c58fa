package partyrepo

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPartyRepository struct {
	db *gorm.DB
}

func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

func (r *GormPartyRepository) Add(ctx context.Context, p *party.Party) error {
	if err := p.Validate(); err != nil {
		return err
	}
	dto := fromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every column so that clearing the archive fields persists.
func (r *GormPartyRepository) Update(ctx context.Context, p *party.Party) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PartyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("party", p.ID().String())
	}
	return nil
}

func (r *GormPartyRepository) Get(ctx context.Context, id kernel.UUID) (*party.Party, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("party", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}
