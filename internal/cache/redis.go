package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vivah/config"

	"github.com/redis/go-redis/v9"
)

// ProfileCache keeps formatted profile projections and the denormalized
// user-info view out of the hot query path. Entries are TTL-bounded and
// invalidated on any profile write for the user.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.RedisConfig) (*ProfileCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return &ProfileCache{client: client, ttl: cfg.ProfileTTL}, nil
}

// NewWithClient wraps an existing client (used by tests with miniredis).
func NewWithClient(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

func (p *ProfileCache) Close() error { return p.client.Close() }

func profileKey(userID uint) string { return fmt.Sprintf("profile:%d", userID) }
func userInfoKey(userID uint) string { return fmt.Sprintf("userinfo:%d", userID) }

func (p *ProfileCache) GetProfile(ctx context.Context, userID uint, out interface{}) (bool, error) {
	return p.get(ctx, profileKey(userID), out)
}

func (p *ProfileCache) SetProfile(ctx context.Context, userID uint, v interface{}) error {
	return p.set(ctx, profileKey(userID), v)
}

func (p *ProfileCache) GetUserInfo(ctx context.Context, userID uint, out interface{}) (bool, error) {
	return p.get(ctx, userInfoKey(userID), out)
}

func (p *ProfileCache) SetUserInfo(ctx context.Context, userID uint, v interface{}) error {
	return p.set(ctx, userInfoKey(userID), v)
}

// InvalidateUser drops both projections for the user after a profile write.
func (p *ProfileCache) InvalidateUser(ctx context.Context, userID uint) error {
	return p.client.Del(ctx, profileKey(userID), userInfoKey(userID)).Err()
}

func (p *ProfileCache) get(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := p.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, err
	}
	return true, nil
}

func (p *ProfileCache) set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.client.Set(ctx, key, data, p.ttl).Err()
}
