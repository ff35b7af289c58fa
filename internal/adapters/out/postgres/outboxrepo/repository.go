package outboxrepo

import (
	"context"
	"time"

	"gestion/internal/core/domain/model/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Enqueue inserts the message and issues pg_notify. Inside a transaction the
// notification is delivered on commit only.
func (r *GormOutboxRepository) Enqueue(ctx context.Context, m *notification.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := messageFromDomain(m)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}
	return db.Exec("SELECT pg_notify(?, ?)", Channel, m.ID().String()).Error
}

// ClaimPending locks up to limit pending rows, oldest first. Rows that fail to
// decode are marked failed and left out of the result.
func (r *GormOutboxRepository) ClaimPending(ctx context.Context, limit int) ([]*notification.Message, error) {
	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("state = ?", string(notification.Pending)).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]*notification.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := messageToDomain(dto)
		if err != nil {
			if failErr := r.markUndecodable(ctx, dto, err); failErr != nil {
				return nil, failErr
			}
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// markUndecodable moves a row that no longer maps to a message out of the
// pending queue.
func (r *GormOutboxRepository) markUndecodable(ctx context.Context, dto MessageDTO, cause error) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"state":         string(notification.Failed),
			"last_error":    "decode: " + cause.Error(),
			"dispatched_at": now,
		}).Error
}

func (r *GormOutboxRepository) Update(ctx context.Context, m *notification.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := messageFromDomain(m)
	result := r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ?", dto.ID).
		Select("state", "attempts", "last_error", "dispatched_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
