package queries

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListAttachmentsQueryIsNotConstructed = errors.New(
	"ListAttachmentsQuery must be created via NewListAttachmentsQuery constructor",
)

// ListAttachmentsQuery lists the files of one entity, newest first, with public URLs.
type ListAttachmentsQuery struct {
	entityType attachment.EntityType
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewListAttachmentsQuery(entityType attachment.EntityType, entityRef any) (ListAttachmentsQuery, error) {
	t, err := attachment.ParseEntityType(string(entityType))
	if err != nil {
		return ListAttachmentsQuery{}, err
	}
	id, err := kernel.ParseRef(entityRef)
	if err != nil {
		return ListAttachmentsQuery{}, err
	}
	return ListAttachmentsQuery{entityType: t, entityID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAttachmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAttachmentsQueryIsNotConstructed)
}

type ListAttachmentsQueryHandler struct {
	db   *gorm.DB
	urls URLResolver
}

func NewListAttachmentsQueryHandler(db *gorm.DB, urls URLResolver) ListAttachmentsQueryHandler {
	return ListAttachmentsQueryHandler{db: db, urls: urls}
}

func (h ListAttachmentsQueryHandler) Handle(ctx context.Context, query ListAttachmentsQuery) ([]AttachmentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return listAttachments(ctx, h.db, h.urls, query.entityType, query.entityID)
}
