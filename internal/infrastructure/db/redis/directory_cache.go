package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cloud-panel/admin-api/internal/core/domain"
)

const (
	directoryKey = "directory:users"
	directoryTTL = time.Minute
)

// DirectoryCache keeps the full user listing in Redis for a short TTL.
// Cached entries carry no password hashes: the service strips them
// before Set. Every mutation calls Invalidate.
type DirectoryCache struct {
	client *redis.Client
}

func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// cachedUser mirrors domain.User including fields the `json:"-"` tag
// would otherwise drop from the round-trip. The hash field stays empty
// by contract but the shape is explicit rather than relying on it.
type cachedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *DirectoryCache) Get(ctx context.Context) ([]*domain.User, bool, error) {
	raw, err := c.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}

	var cached []cachedUser
	if err := json.Unmarshal(raw, &cached); err != nil {
		// Treat a corrupt entry as a miss; it will be rewritten.
		return nil, false, nil
	}

	users := make([]*domain.User, 0, len(cached))
	for _, cu := range cached {
		users = append(users, &domain.User{
			ID:        cu.ID,
			Name:      cu.Name,
			Email:     cu.Email,
			Role:      domain.Role(cu.Role),
			CreatedAt: cu.CreatedAt,
			UpdatedAt: cu.UpdatedAt,
		})
	}
	return users, true, nil
}

func (c *DirectoryCache) Set(ctx context.Context, users []*domain.User) error {
	cached := make([]cachedUser, 0, len(users))
	for _, u := range users {
		cached = append(cached, cachedUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      string(u.Role),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("directory cache encode: %w", err)
	}
	return c.client.Set(ctx, directoryKey, raw, directoryTTL).Err()
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, directoryKey).Err()
}
