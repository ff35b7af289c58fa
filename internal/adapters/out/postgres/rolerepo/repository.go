package rolerepo

import (
	"context"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRoleDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(32);primaryKey"`
}

func (UserRoleDTO) TableName() string {
	return "user_roles"
}

type GormRoleRepository struct {
	db *gorm.DB
}

func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

// RolesOf skips rows holding unknown role names.
func (r *GormRoleRepository) RolesOf(ctx context.Context, userID kernel.UUID) ([]access.Role, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserRoleDTO
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()).Order("role").Find(&dtos).Error; err != nil {
		return nil, err
	}

	roles := make([]access.Role, 0, len(dtos))
	for _, dto := range dtos {
		role, err := access.ParseRole(dto.Role)
		if err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *GormRoleRepository) Grant(ctx context.Context, userID kernel.UUID, role access.Role) error {
	dto := UserRoleDTO{UserID: userID.Bytes(), Role: string(role)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
