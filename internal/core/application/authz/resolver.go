// Package authz turns an authenticated session into an access.Principal.
package authz

import (
	"context"
	"strings"
	"time"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/ports"
	"gestion/internal/pkg/errs"

	"go.uber.org/zap"
)

// Session is what the bearer token proves about the caller.
type Session struct {
	ID        string
	UserID    kernel.UUID
	Email     string
	ExpiresAt time.Time
}

// Resolver resolves the roles of a session once and caches them until the
// token expires. Stored roles come from user_roles; the collaborator role is
// granted by e-mail allow-list.
type Resolver struct {
	roles         ports.RoleRepository
	cache         ports.PermissionCache
	collaborators map[string]struct{}
	logger        *zap.Logger
	now           func() time.Time
}

func NewResolver(
	roles ports.RoleRepository,
	cache ports.PermissionCache,
	collaboratorEmails []string,
	logger *zap.Logger,
) *Resolver {
	collaborators := make(map[string]struct{}, len(collaboratorEmails))
	for _, e := range collaboratorEmails {
		if e = normalizeEmail(e); e != "" {
			collaborators[e] = struct{}{}
		}
	}
	return &Resolver{
		roles:         roles,
		cache:         cache,
		collaborators: collaborators,
		logger:        logger.With(zap.String("component", "authz")),
		now:           time.Now,
	}
}

// Resolve returns the principal of s. Cache failures are logged and the roles
// are read from the database instead.
func (r *Resolver) Resolve(ctx context.Context, s Session) (access.Principal, error) {
	if s.ID == "" {
		return access.Principal{}, errs.NewValueIsRequiredError("session id")
	}
	if err := s.UserID.Validate(); err != nil {
		return access.Principal{}, err
	}

	roles, found, err := r.cache.Get(ctx, s.ID)
	if err != nil {
		r.logger.Warn("permission cache read failed", zap.String("session", s.ID), zap.Error(err))
	}
	if !found {
		roles, err = r.load(ctx, s)
		if err != nil {
			return access.Principal{}, err
		}
		if ttl := s.ExpiresAt.Sub(r.now()); ttl > 0 {
			if err := r.cache.Set(ctx, s.ID, roles, ttl); err != nil {
				r.logger.Warn("permission cache write failed", zap.String("session", s.ID), zap.Error(err))
			}
		}
	}

	return access.NewPrincipal(s.UserID, s.Email, roles)
}

func (r *Resolver) load(ctx context.Context, s Session) ([]access.Role, error) {
	roles, err := r.roles.RolesOf(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if _, ok := r.collaborators[normalizeEmail(s.Email)]; ok {
		roles = append(roles, access.Collaborator)
	}
	return roles, nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
