package attachmentrepo

import (
	"context"
	"errors"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormAttachmentRepository struct {
	db *gorm.DB
}

func NewGormAttachmentRepository(db *gorm.DB) *GormAttachmentRepository {
	return &GormAttachmentRepository{db: db}
}

func (r *GormAttachmentRepository) Add(ctx context.Context, a *attachment.Attachment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	dto := fromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormAttachmentRepository) Get(ctx context.Context, id kernel.UUID) (*attachment.Attachment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AttachmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("attachment", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormAttachmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&AttachmentDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("attachment", id.String())
	}
	return nil
}

func (r *GormAttachmentRepository) ListByEntity(
	ctx context.Context,
	entityType attachment.EntityType,
	entityID kernel.UUID,
) ([]*attachment.Attachment, error) {
	var dtos []AttachmentDTO
	if err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID.Bytes()).
		Order("created_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*attachment.Attachment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// DeleteByEntity uses DELETE ... RETURNING path so the caller can remove the blobs
// once the transaction commits.
func (r *GormAttachmentRepository) DeleteByEntity(
	ctx context.Context,
	entityType attachment.EntityType,
	entityID kernel.UUID,
) ([]string, error) {
	var deleted []AttachmentDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "path"}}}).
		Where("entity_type = ? AND entity_id = ?", string(entityType), entityID.Bytes()).
		Delete(&deleted).Error; err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(deleted))
	for _, dto := range deleted {
		paths = append(paths, dto.Path)
	}
	return paths, nil
}
