package ports

import (
	"context"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
)

type AttachmentRepository interface {
	Add(ctx context.Context, a *attachment.Attachment) error

	Get(ctx context.Context, id kernel.UUID) (*attachment.Attachment, error)

	Delete(ctx context.Context, id kernel.UUID) error

	ListByEntity(ctx context.Context, entityType attachment.EntityType, entityID kernel.UUID) ([]*attachment.Attachment, error)

	// DeleteByEntity removes the rows and returns the object paths they referenced.
	DeleteByEntity(ctx context.Context, entityType attachment.EntityType, entityID kernel.UUID) ([]string, error)
}
