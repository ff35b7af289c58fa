package outboxrepo

import (
	"context"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSubscriptionRepository struct {
	db *gorm.DB
}

func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

func (r *GormSubscriptionRepository) Save(ctx context.Context, s *notification.Subscription) error {
	dto := SubscriptionDTO{
		Endpoint:  s.Endpoint(),
		P256dh:    s.P256dh(),
		Auth:      s.Auth(),
		UserID:    s.UserID().Bytes(),
		CreatedAt: s.CreatedAt(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "user_id"}),
	}).Create(&dto).Error
}

func (r *GormSubscriptionRepository) List(ctx context.Context, userID *kernel.UUID) ([]*notification.Subscription, error) {
	query := r.db.WithContext(ctx).Order("created_at")
	if userID != nil {
		query = query.Where("user_id = ?", userID.Bytes())
	}

	var dtos []SubscriptionDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	subs := make([]*notification.Subscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := subscriptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *GormSubscriptionRepository) Delete(ctx context.Context, endpoint string) error {
	return r.db.WithContext(ctx).Where("endpoint = ?", endpoint).Delete(&SubscriptionDTO{}).Error
}
