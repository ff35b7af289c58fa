package ports

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"
)

type PartyRepository interface {
	Add(ctx context.Context, p *party.Party) error

	Update(ctx context.Context, p *party.Party) error

	Get(ctx context.Context, id kernel.UUID) (*party.Party, error)
}
