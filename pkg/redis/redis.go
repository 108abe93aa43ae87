// Package redis builds the Redis client backing the production rate limiter.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/Alijeyrad/cardioai/config"
)

const (
	defaultPoolSize     = 10
	defaultMinIdleConns = 2
	defaultDialTimeout  = 5
	defaultIOTimeout    = 3
)

// New connects and pings. The caller owns the client.
func New(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is empty")
	}

	rdb := goredis.NewClient(Options(cfg))

	pingCtx, cancel := context.WithTimeout(ctx, seconds(cfg.DialTimeoutSeconds, defaultDialTimeout))
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// Options maps config onto client options, filling unset values with defaults.
func Options(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     lo.Ternary(cfg.PoolSize > 0, cfg.PoolSize, defaultPoolSize),
		MinIdleConns: lo.Ternary(cfg.MinIdleConns > 0, cfg.MinIdleConns, defaultMinIdleConns),
		DialTimeout:  seconds(cfg.DialTimeoutSeconds, defaultDialTimeout),
		ReadTimeout:  seconds(cfg.ReadTimeoutSeconds, defaultIOTimeout),
		WriteTimeout: seconds(cfg.WriteTimeoutSeconds, defaultIOTimeout),
	}
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
