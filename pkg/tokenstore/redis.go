package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bukuloka/storefront/pkg/config"
	"github.com/redis/go-redis/v9"
)

const keyNamespace = "bukuloka"

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// RedisStore persists session tokens in Redis so multiple storefront
// processes can share one session.
type RedisStore struct {
	store cmdable
	ttl   time.Duration
}

// NewRedisStore bootstraps a Redis-backed token store and verifies
// connectivity.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{store: raw, ttl: ttl}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if opts.MinIdleConns == 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
	return opts, nil
}

func (r *RedisStore) Get(ctx context.Context, sessionKey string) (string, error) {
	token, err := r.store.Get(ctx, tokenKey(sessionKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get token: %w", err)
	}
	if token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (r *RedisStore) Set(ctx context.Context, sessionKey, token string) error {
	if err := r.store.Set(ctx, tokenKey(sessionKey), token, r.ttl).Err(); err != nil {
		return fmt.Errorf("set token: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, sessionKey string) error {
	if err := r.store.Del(ctx, tokenKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func tokenKey(sessionKey string) string {
	return fmt.Sprintf("%s:session:%s:token", keyNamespace, sessionKey)
}
