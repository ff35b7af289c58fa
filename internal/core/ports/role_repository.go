package ports

import (
	"context"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
)

type RoleRepository interface {
	RolesOf(ctx context.Context, userID kernel.UUID) ([]access.Role, error)

	Grant(ctx context.Context, userID kernel.UUID, role access.Role) error
}
