// Package ratelimit provides fixed-window rate limiting backed by a shared
// counter store. Implementations are safe for concurrent use.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// KeyExtractor extracts a rate limit key from context.
// Common use: client id, IP address, or a combination.
type KeyExtractor func(ctx context.Context) (string, error)

// Result contains the rate limit decision and metadata.
type Result struct {
	// Allowed indicates if the request is permitted.
	Allowed bool

	// Limit is the maximum requests per window.
	Limit int64

	// Remaining is the number of requests left in current window.
	Remaining int64

	// ResetAt is when the rate limit window resets.
	ResetAt time.Time

	// RetryAfter is the duration to wait before retrying (if not allowed).
	RetryAfter time.Duration
}

// Config configures the rate limiter.
type Config struct {
	// Limit is the maximum number of requests allowed per window.
	Limit int64

	// Window is the time window for rate limiting.
	Window time.Duration

	// Prefix namespaces counter keys. Defaults to "ratelimit".
	Prefix string

	// KeyExtractor extracts the rate limit key from context.
	// If nil, defaults to IP-based extraction.
	KeyExtractor KeyExtractor

	// OnLimited is called when rate limit is exceeded.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Counter is the storage backend: an atomic per-key counter whose window
// starts on the first hit. cache.Store satisfies it.
type Counter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
	Del(ctx context.Context, keys ...string) (int64, error)
}

// Limiter is the main rate limiter interface.
type Limiter interface {
	// Allow checks if a request is allowed for the given context.
	// The key is extracted using the configured KeyExtractor.
	Allow(ctx context.Context) (Result, error)

	// AllowKey checks if a request is allowed for a specific key.
	AllowKey(ctx context.Context, key string) (Result, error)

	// ResetKey clears the counter for a specific key.
	ResetKey(ctx context.Context, key string) error
}

type limiter struct {
	counter Counter
	config  Config
	now     func() time.Time
}

// New creates a new rate limiter with the provided counter and configuration.
func New(counter Counter, config Config) (Limiter, error) {
	if counter == nil {
		return nil, errors.New("ratelimit: counter is required")
	}
	if config.Limit <= 0 {
		return nil, errors.New("ratelimit: limit must be positive")
	}
	if config.Window <= 0 {
		return nil, errors.New("ratelimit: window must be positive")
	}
	if config.Prefix == "" {
		config.Prefix = "ratelimit"
	}
	if config.KeyExtractor == nil {
		config.KeyExtractor = DefaultKeyExtractor
	}

	return &limiter{
		counter: counter,
		config:  config,
		now:     time.Now,
	}, nil
}

func (l *limiter) Allow(ctx context.Context) (Result, error) {
	key, err := l.config.KeyExtractor(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: failed to extract key: %w", err)
	}
	return l.AllowKey(ctx, key)
}

func (l *limiter) AllowKey(ctx context.Context, key string) (Result, error) {
	count, ttl, err := l.counter.IncrWindow(ctx, l.fullKey(key), l.config.Window)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	result := Result{
		Allowed:   count <= l.config.Limit,
		Limit:     l.config.Limit,
		Remaining: max(l.config.Limit-count, 0),
		ResetAt:   l.now().Add(ttl),
	}
	if !result.Allowed {
		result.RetryAfter = ttl
		if l.config.OnLimited != nil {
			l.config.OnLimited(ctx, key, result)
		}
	}

	return result, nil
}

func (l *limiter) ResetKey(ctx context.Context, key string) error {
	if _, err := l.counter.Del(ctx, l.fullKey(key)); err != nil {
		return fmt.Errorf("ratelimit: reset %q: %w", key, err)
	}
	return nil
}

func (l *limiter) fullKey(key string) string {
	return l.config.Prefix + ":" + key
}

// DefaultKeyExtractor extracts IP address as the rate limit key.
func DefaultKeyExtractor(ctx context.Context) (string, error) {
	if ip := GetIP(ctx); ip != "" {
		return "ip:" + ip, nil
	}
	return "default", nil
}

// ClientKeyExtractor keys requests by the authenticated client id.
func ClientKeyExtractor(prefix string) KeyExtractor {
	return func(ctx context.Context) (string, error) {
		clientID := GetClientID(ctx)
		if clientID == "" {
			return "", errors.New("ratelimit: client_id not found in context")
		}
		return joinKeys(prefix, "client", clientID), nil
	}
}

// IPKeyExtractor creates a KeyExtractor that uses IP address with a prefix.
func IPKeyExtractor(prefix string) KeyExtractor {
	return func(ctx context.Context) (string, error) {
		ip := GetIP(ctx)
		if ip == "" {
			return "", errors.New("ratelimit: ip not found in context")
		}
		return joinKeys(prefix, "ip", ip), nil
	}
}

// CompositeKeyExtractor creates a KeyExtractor from multiple extractors.
func CompositeKeyExtractor(extractors ...KeyExtractor) KeyExtractor {
	return func(ctx context.Context) (string, error) {
		parts := make([]string, 0, len(extractors))
		for _, ext := range extractors {
			part, err := ext(ctx)
			if err != nil {
				return "", err
			}
			parts = append(parts, part)
		}
		return joinKeys(parts...), nil
	}
}

func joinKeys(parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ":")
}

type contextKey string

const (
	contextKeyIP       contextKey = "ratelimit:ip"
	contextKeyClientID contextKey = "ratelimit:client_id"
)

// WithIP adds IP address to context for rate limiting.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKeyIP, ip)
}

// WithClientID adds the authenticated client id to context.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, contextKeyClientID, clientID)
}

// GetIP retrieves IP from context.
func GetIP(ctx context.Context) string {
	ip, _ := ctx.Value(contextKeyIP).(string)
	return ip
}

// GetClientID retrieves the client id from context.
func GetClientID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyClientID).(string)
	return id
}
