// Package cache is a thin facade over go-redis for the key/value operations
// the service needs: expiry management, counters and compare-and-act updates.
// A Store is safe for concurrent use.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrNotFound is returned when the key does not exist.
	ErrNotFound = errors.New("cache: key not found")

	// ErrNegativeDelta is returned when a counter step is below zero.
	ErrNegativeDelta = errors.New("cache: delta must not be negative")
)

// NoExpiry is reported by TTL for keys that exist without a timeout.
const NoExpiry time.Duration = -1

var (
	incrWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
local ttl = redis.call('PTTL', KEYS[1])
if current == 1 or ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

	compareAndExpireScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 0
`)

	compareAndDeleteScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)
)

// Store wraps a Redis client. Every key is namespaced with the configured
// prefix.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix namespaces all keys as "<prefix>:<key>".
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Store on top of client. The caller owns the client.
func New(client redis.UniversalClient, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, errors.New("cache: redis client is required")
	}
	s := &Store{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Store) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: ping failed: %w", err)
	}
	return nil
}

// Expire sets a timeout on key. It reports false when the key does not exist.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.PExpire(ctx, s.key(key), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: expire %q: %w", key, err)
	}
	return ok, nil
}

// TTL returns the remaining time to live of key, or NoExpiry when the key
// has no timeout.
func (s *Store) TTL(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := s.client.PTTL(ctx, s.key(key)).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: ttl %q: %w", key, err)
	}
	switch ttl {
	case -2:
		return 0, ErrNotFound
	case -1:
		return NoExpiry, nil
	}
	return ttl, nil
}

// Exists reports whether key is present.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("cache: exists %q: %w", key, err)
	}
	return n > 0, nil
}

// Del removes keys and returns how many existed.
func (s *Store) Del(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	n, err := s.client.Del(ctx, full...).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: del: %w", err)
	}
	return n, nil
}

// Get returns the value stored at key.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("cache: get %q: %w", key, err)
	}
	return v, nil
}

// Set stores value at key. A ttl of zero or less keeps the key forever.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %q: %w", key, err)
	}
	return nil
}

// SetIfAbsent stores value only when key does not exist yet and reports
// whether it did.
func (s *Store) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	if ttl < 0 {
		ttl = 0
	}
	ok, err := s.client.SetNX(ctx, s.key(key), value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("cache: setnx %q: %w", key, err)
	}
	return ok, nil
}

// IncrBy adds delta to the counter at key.
func (s *Store) IncrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if delta < 0 {
		return 0, ErrNegativeDelta
	}
	n, err := s.client.IncrBy(ctx, s.key(key), delta).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: incrby %q: %w", key, err)
	}
	return n, nil
}

// DecrBy subtracts delta from the counter at key.
func (s *Store) DecrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if delta < 0 {
		return 0, ErrNegativeDelta
	}
	n, err := s.client.DecrBy(ctx, s.key(key), delta).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: decrby %q: %w", key, err)
	}
	return n, nil
}

// IncrWindow increments the counter at key and starts its window on the
// first hit. It returns the count and the time left in the window.
func (s *Store) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if window <= 0 {
		return 0, 0, errors.New("cache: window must be positive")
	}
	vals, err := incrWindowScript.Run(ctx, s.client, []string{s.key(key)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, fmt.Errorf("cache: incr window %q: %w", key, err)
	}
	if len(vals) != 2 {
		return 0, 0, fmt.Errorf("cache: incr window %q: unexpected reply %v", key, vals)
	}
	return vals[0], time.Duration(vals[1]) * time.Millisecond, nil
}

// CompareAndExpire resets the timeout of key only while it still holds
// expected.
func (s *Store) CompareAndExpire(ctx context.Context, key, expected string, ttl time.Duration) (bool, error) {
	n, err := compareAndExpireScript.Run(ctx, s.client, []string{s.key(key)}, expected, ttl.Milliseconds()).Int64()
	if err != nil {
		return false, fmt.Errorf("cache: compare and expire %q: %w", key, err)
	}
	return n == 1, nil
}

// CompareAndDelete removes key only while it still holds expected.
func (s *Store) CompareAndDelete(ctx context.Context, key, expected string) (bool, error) {
	n, err := compareAndDeleteScript.Run(ctx, s.client, []string{s.key(key)}, expected).Int64()
	if err != nil {
		return false, fmt.Errorf("cache: compare and delete %q: %w", key, err)
	}
	return n == 1, nil
}
