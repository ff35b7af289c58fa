package queries

import (
	"context"
	"errors"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListPartiesQueryIsNotConstructed = errors.New(
	"ListPartiesQuery must be created via NewListPartiesQuery constructor",
)

// ListPartiesQuery lists parties by name. An empty kind lists clients and
// suppliers together. Archived parties are left out unless includeArchived is
// set.
type ListPartiesQuery struct {
	kind            party.Kind
	includeArchived bool

	guard guard.ConstructorGuard
}

func NewListPartiesQuery(kind party.Kind, includeArchived bool) (ListPartiesQuery, error) {
	if kind != "" {
		if err := kind.Validate(); err != nil {
			return ListPartiesQuery{}, err
		}
	}
	return ListPartiesQuery{kind: kind, includeArchived: includeArchived, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPartiesQuery) Validate() error {
	return q.guard.Validate(ErrListPartiesQueryIsNotConstructed)
}

type PartyView struct {
	ID                kernel.UUID
	Kind              party.Kind
	Name              string
	Contact           party.Contact
	Active            bool
	DeactivatedAt     *time.Time
	DeactivatedReason string
	CreatedAt         time.Time
}

type ListPartiesQueryHandler struct {
	db *gorm.DB
}

func NewListPartiesQueryHandler(db *gorm.DB) ListPartiesQueryHandler {
	return ListPartiesQueryHandler{db: db}
}

func (h ListPartiesQueryHandler) Handle(ctx context.Context, query ListPartiesQuery) ([]PartyView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := h.db.WithContext(ctx).
		Table("parties").
		Select("id, kind, name, email, phone, address, tax_id, active, deactivated_at, deactivated_reason, created_at")
	if query.kind != "" {
		q = q.Where("kind = ?", string(query.kind))
	}
	if !query.includeArchived {
		q = q.Where("active = ?", true)
	}

	var rows []struct {
		ID                uuid.UUID
		Kind              string
		Name              string
		Email             string
		Phone             string
		Address           string
		TaxID             string
		Active            bool
		DeactivatedAt     *time.Time
		DeactivatedReason string
		CreatedAt         time.Time
	}
	if err := q.Order("name").Scan(&rows).Error; err != nil {
		return nil, err
	}

	parties := make([]PartyView, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		parties = append(parties, PartyView{
			ID:   id,
			Kind: party.Kind(r.Kind),
			Name: r.Name,
			Contact: party.Contact{
				Email:   r.Email,
				Phone:   r.Phone,
				Address: r.Address,
				TaxID:   r.TaxID,
			},
			Active:            r.Active,
			DeactivatedAt:     r.DeactivatedAt,
			DeactivatedReason: r.DeactivatedReason,
			CreatedAt:         r.CreatedAt,
		})
	}
	return parties, nil
}
