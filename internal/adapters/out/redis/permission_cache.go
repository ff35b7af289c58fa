// Package redis caches the roles resolved for a session.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gestion/internal/core/domain/model/access"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:roles:"

type Config struct {
	Addr     string
	Password string
	DB       int
}

func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type PermissionCache struct {
	rdb *redis.Client
}

func NewPermissionCache(rdb *redis.Client) *PermissionCache {
	return &PermissionCache{rdb: rdb}
}

func (c *PermissionCache) Get(ctx context.Context, sessionID string) ([]access.Role, bool, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read session roles: %w", err)
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false, fmt.Errorf("decode session roles: %w", err)
	}

	roles := make([]access.Role, 0, len(names))
	for _, name := range names {
		role, err := access.ParseRole(name)
		if err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, true, nil
}

// Set stores roles until ttl elapses. A non-positive ttl is not cached.
func (c *PermissionCache) Set(ctx context.Context, sessionID string, roles []access.Role, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}

	if err := c.rdb.Set(ctx, keyPrefix+sessionID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("write session roles: %w", err)
	}
	return nil
}
