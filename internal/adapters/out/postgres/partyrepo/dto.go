package partyrepo

import (
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"

	"github.com/google/uuid"
)

type PartyDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind              string    `gorm:"type:varchar(16);not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Email             string    `gorm:"type:varchar(255);not null;default:''"`
	Phone             string    `gorm:"type:varchar(64);not null;default:''"`
	Address           string    `gorm:"type:text;not null;default:''"`
	TaxID             string    `gorm:"type:varchar(32);not null;default:''"`
	Active            bool      `gorm:"not null;index"`
	DeactivatedAt     *time.Time
	DeactivatedReason string    `gorm:"type:text;not null;default:''"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime:false"`
}

func (PartyDTO) TableName() string {
	return "parties"
}

func fromDomain(p *party.Party) PartyDTO {
	c := p.Contact()
	return PartyDTO{
		ID:                p.ID().Bytes(),
		Kind:              p.Kind().String(),
		Name:              p.Name(),
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           c.Address,
		TaxID:             c.TaxID,
		Active:            p.IsActive(),
		DeactivatedAt:     p.DeactivatedAt(),
		DeactivatedReason: p.DeactivatedReason(),
		CreatedAt:         p.CreatedAt(),
	}
}

func toDomain(dto PartyDTO) (*party.Party, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return party.RestoreParty(
		id,
		party.Kind(dto.Kind),
		dto.Name,
		party.Contact{Email: dto.Email, Phone: dto.Phone, Address: dto.Address, TaxID: dto.TaxID},
		dto.Active,
		dto.DeactivatedAt,
		dto.DeactivatedReason,
		dto.CreatedAt,
	)
}
