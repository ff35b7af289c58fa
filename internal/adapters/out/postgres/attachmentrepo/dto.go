package attachmentrepo

import (
	"time"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AttachmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType string    `gorm:"type:varchar(16);not null;index:idx_attachment_entity"`
	EntityID   uuid.UUID `gorm:"type:uuid;not null;index:idx_attachment_entity"`
	Path       string    `gorm:"type:text;not null;uniqueIndex"`
	FileName   string    `gorm:"type:varchar(255);not null"`
	MimeType   string    `gorm:"type:varchar(127);not null"`
	Size       int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime:false"`
}

func (AttachmentDTO) TableName() string {
	return "attachments"
}

func fromDomain(a *attachment.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:         a.ID().Bytes(),
		EntityType: string(a.EntityType()),
		EntityID:   a.EntityID().Bytes(),
		Path:       a.Path(),
		FileName:   a.FileName(),
		MimeType:   a.MimeType(),
		Size:       a.Size(),
		CreatedAt:  a.CreatedAt(),
	}
}

func toDomain(dto AttachmentDTO) (*attachment.Attachment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}
	return attachment.RestoreAttachment(
		id, attachment.EntityType(dto.EntityType), entityID,
		dto.Path, dto.FileName, dto.MimeType, dto.Size, dto.CreatedAt,
	)
}
