package authz

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) RolesOf(ctx context.Context, userID kernel.UUID) ([]access.Role, error) {
	args := m.Called(ctx, userID)
	roles, _ := args.Get(0).([]access.Role)
	return roles, args.Error(1)
}

func (m *MockRoleRepository) Grant(ctx context.Context, userID kernel.UUID, role access.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

type MockPermissionCache struct {
	mock.Mock
}

func (m *MockPermissionCache) Get(ctx context.Context, sessionID string) ([]access.Role, bool, error) {
	args := m.Called(ctx, sessionID)
	roles, _ := args.Get(0).([]access.Role)
	return roles, args.Bool(1), args.Error(2)
}

func (m *MockPermissionCache) Set(ctx context.Context, sessionID string, roles []access.Role, ttl time.Duration) error {
	return m.Called(ctx, sessionID, roles, ttl).Error(0)
}

var fixedNow = time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

func newResolver(roles *MockRoleRepository, cache *MockPermissionCache, logger *zap.Logger) *Resolver {
	r := NewResolver(roles, cache, []string{" Ana@CHS.pt "}, logger)
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestResolver_CacheHitSkipsDatabase(t *testing.T) {
	// Arrange
	roles := &MockRoleRepository{}
	cache := &MockPermissionCache{}
	userID := kernel.NewUUID()
	cache.On("Get", mock.Anything, "jti-1").Return([]access.Role{access.Finance}, true, nil).Once()

	// Act
	p, err := newResolver(roles, cache, zap.NewNop()).Resolve(t.Context(), Session{
		ID: "jti-1", UserID: userID, Email: "rui@chs.pt", ExpiresAt: fixedNow.Add(time.Hour),
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, p.Can(access.PaymentRecord))
	assert.False(t, p.Can(access.OrderDelete))
	roles.AssertNotCalled(t, "RolesOf", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestResolver_MissLoadsRolesAndCachesUntilExpiry(t *testing.T) {
	// Arrange
	roles := &MockRoleRepository{}
	cache := &MockPermissionCache{}
	userID := kernel.NewUUID()
	cache.On("Get", mock.Anything, "jti-2").Return(nil, false, nil).Once()
	roles.On("RolesOf", mock.Anything, userID).Return([]access.Role{access.Viewer}, nil).Once()
	cache.On("Set", mock.Anything, "jti-2", []access.Role{access.Viewer, access.Collaborator}, 30*time.Minute).
		Return(nil).Once()

	// Act
	p, err := newResolver(roles, cache, zap.NewNop()).Resolve(t.Context(), Session{
		ID: "jti-2", UserID: userID, Email: "ana@chs.pt", ExpiresAt: fixedNow.Add(30 * time.Minute),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []access.Capability{access.OrderTransition}, p.Capabilities())
	roles.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestResolver_CacheFailureFallsBackToDatabase(t *testing.T) {
	// Arrange
	core, logs := observer.New(zap.WarnLevel)
	roles := &MockRoleRepository{}
	cache := &MockPermissionCache{}
	userID := kernel.NewUUID()
	cache.On("Get", mock.Anything, "jti-3").Return(nil, false, errors.New("connection refused")).Once()
	roles.On("RolesOf", mock.Anything, userID).Return([]access.Role{access.Admin}, nil).Once()
	cache.On("Set", mock.Anything, "jti-3", mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	// Act
	p, err := newResolver(roles, cache, zap.New(core)).Resolve(t.Context(), Session{
		ID: "jti-3", UserID: userID, ExpiresAt: fixedNow.Add(time.Minute),
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, p.Can(access.OrderDelete))
	assert.Equal(t, 1, logs.FilterMessage("permission cache read failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("permission cache write failed").Len())
}

func TestResolver_ExpiredTokenIsNotCached(t *testing.T) {
	// Arrange
	roles := &MockRoleRepository{}
	cache := &MockPermissionCache{}
	userID := kernel.NewUUID()
	cache.On("Get", mock.Anything, "jti-4").Return(nil, false, nil).Once()
	roles.On("RolesOf", mock.Anything, userID).Return(nil, nil).Once()

	// Act
	p, err := newResolver(roles, cache, zap.NewNop()).Resolve(t.Context(), Session{
		ID: "jti-4", UserID: userID, ExpiresAt: fixedNow.Add(-time.Second),
	})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, p.Capabilities())
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResolver_RejectsIncompleteSession(t *testing.T) {
	r := newResolver(&MockRoleRepository{}, &MockPermissionCache{}, zap.NewNop())

	_, err := r.Resolve(t.Context(), Session{UserID: kernel.NewUUID()})
	require.Error(t, err)

	_, err = r.Resolve(t.Context(), Session{ID: "jti"})
	require.Error(t, err)
}

func TestResolver_DatabaseErrorIsReturned(t *testing.T) {
	roles := &MockRoleRepository{}
	cache := &MockPermissionCache{}
	userID := kernel.NewUUID()
	cache.On("Get", mock.Anything, "jti-5").Return(nil, false, nil).Once()
	roles.On("RolesOf", mock.Anything, userID).Return(nil, errors.New("db down")).Once()

	_, err := newResolver(roles, cache, zap.NewNop()).Resolve(t.Context(), Session{ID: "jti-5", UserID: userID})

	require.EqualError(t, err, "db down")
}
