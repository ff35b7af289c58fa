package redis_test

import (
	"context"
	"testing"
	"time"

	cache "gestion/internal/adapters/out/redis"
	"gestion/internal/core/domain/model/access"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PermissionCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	cache     *cache.PermissionCache
}

func (suite *PermissionCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	addr, err := container.PortEndpoint(ctx, "6379/tcp", "")
	suite.Require().NoError(err)

	suite.rdb = cache.NewClient(cache.Config{Addr: addr})
	suite.cache = cache.NewPermissionCache(suite.rdb)
}

func (suite *PermissionCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
}

func (suite *PermissionCacheIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		_ = suite.rdb.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PermissionCacheIntegrationTestSuite) TestMiss() {
	roles, found, err := suite.cache.Get(context.Background(), "unknown-jti")
	suite.Require().NoError(err)
	suite.False(found)
	suite.Nil(roles)
}

func (suite *PermissionCacheIntegrationTestSuite) TestSetThenGet() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "jti-1", []access.Role{access.Finance, access.Collaborator}, time.Minute))

	roles, found, err := suite.cache.Get(ctx, "jti-1")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal([]access.Role{access.Finance, access.Collaborator}, roles)

	ttl, err := suite.rdb.TTL(ctx, "session:roles:jti-1").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, 50*time.Second)
}

func (suite *PermissionCacheIntegrationTestSuite) TestEmptyRoleSetIsAHit() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "jti-viewer", nil, time.Minute))

	roles, found, err := suite.cache.Get(ctx, "jti-viewer")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Empty(roles)
}

func (suite *PermissionCacheIntegrationTestSuite) TestExpiredTokenIsNotCached() {
	ctx := context.Background()
	suite.Require().NoError(suite.cache.Set(ctx, "jti-old", []access.Role{access.Admin}, 0))

	_, found, err := suite.cache.Get(ctx, "jti-old")
	suite.Require().NoError(err)
	suite.False(found)
}

func TestPermissionCacheIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionCacheIntegrationTestSuite))
}
