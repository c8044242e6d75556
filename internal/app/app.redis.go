package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/idgen-api/internal/shared/cache"
	"github.com/joshuarp/idgen-api/internal/shared/config"
	sharedratelimit "github.com/joshuarp/idgen-api/internal/shared/ratelimit"
)

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

func provideCacheStore(cfg config.ConfigProvider, client *redis.Client) (*cache.Store, error) {
	prefix := strings.TrimSpace(cfg.GetString("redis.prefix"))
	if prefix == "" {
		prefix = "idgen"
	}
	return cache.New(client, cache.WithPrefix(prefix))
}

func provideIDRateLimiter(cfg config.ConfigProvider, store *cache.Store, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("app: cache store is required for id rate limiter")
	}

	limit := cfg.GetInt64("rate_limit.ids.limit")
	if limit <= 0 {
		limit = 600
	}

	window := cfg.GetDuration("rate_limit.ids.window")
	if window <= 0 {
		window = time.Minute
	}

	return sharedratelimit.New(store, sharedratelimit.Config{
		Limit:  limit,
		Window: window,
		Prefix: "ratelimit",
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", "ids", "key", key, "limit", result.Limit)
			}
		},
	})
}
