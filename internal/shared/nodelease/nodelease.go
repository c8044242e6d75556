// Package nodelease claims a (datacenter, worker) slot in Redis so that two
// processes configured with the same identity cannot both issue ids.
package nodelease

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/joshuarp/idgen-api/internal/shared/cache"
)

var (
	// ErrSlotTaken is returned by Acquire when another process holds the slot.
	ErrSlotTaken = errors.New("nodelease: slot is held by another process")

	// ErrLeaseLost is returned by Renew when the slot expired or was taken over.
	ErrLeaseLost = errors.New("nodelease: lease lost")
)

const DefaultTTL = 30 * time.Second

// Store is the subset of cache.Store a lease needs.
type Store interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	CompareAndExpire(ctx context.Context, key, expected string, ttl time.Duration) (bool, error)
	CompareAndDelete(ctx context.Context, key, expected string) (bool, error)
}

var _ Store = (*cache.Store)(nil)

// Options identifies the slot to claim.
type Options struct {
	Prefix       string
	DatacenterID int64
	WorkerID     int64
	TTL          time.Duration
}

// Lease is a claimed slot. Acquire it once, keep it alive, release on stop.
type Lease struct {
	store  Store
	key    string
	token  string
	ttl    time.Duration
	logger *slog.Logger

	mu       sync.Mutex
	held     bool
	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// New prepares a lease; nothing is written until Acquire.
func New(store Store, opts Options, logger *slog.Logger) (*Lease, error) {
	if store == nil {
		return nil, errors.New("nodelease: store is required")
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.TTL < 3*time.Millisecond {
		return nil, fmt.Errorf("nodelease: ttl %s too short", opts.TTL)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "idgen:node"
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Lease{
		store:  store,
		key:    fmt.Sprintf("%s:%d:%d", prefix, opts.DatacenterID, opts.WorkerID),
		token:  ulid.Make().String(),
		ttl:    opts.TTL,
		logger: logger,
	}, nil
}

// Key returns the Redis key of the slot.
func (l *Lease) Key() string { return l.key }

// Token identifies this holder.
func (l *Lease) Token() string { return l.token }

// Acquire claims the slot.
func (l *Lease) Acquire(ctx context.Context) error {
	ok, err := l.store.SetIfAbsent(ctx, l.key, l.token, l.ttl)
	if err != nil {
		return fmt.Errorf("nodelease: acquire %s: %w", l.key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrSlotTaken, l.key)
	}

	l.mu.Lock()
	l.held = true
	l.mu.Unlock()
	return nil
}

// Renew extends the lease if this holder still owns it.
func (l *Lease) Renew(ctx context.Context) error {
	ok, err := l.store.CompareAndExpire(ctx, l.key, l.token, l.ttl)
	if err != nil {
		return fmt.Errorf("nodelease: renew %s: %w", l.key, err)
	}
	if !ok {
		l.mu.Lock()
		l.held = false
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrLeaseLost, l.key)
	}
	return nil
}

// KeepAlive renews the lease every ttl/3 until ctx ends or Release is
// called. onLost runs once, from the renewal goroutine, when the lease is lost.
// Transient Redis errors are logged and retried on the next tick.
func (l *Lease) KeepAlive(ctx context.Context, onLost func(error)) {
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	l.mu.Lock()
	if l.stopLoop != nil {
		l.mu.Unlock()
		cancel()
		return
	}
	l.stopLoop = cancel
	l.loopDone = done
	l.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(l.ttl / 3)
		defer ticker.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-ticker.C:
				err := l.Renew(loopCtx)
				if err == nil {
					continue
				}
				if errors.Is(err, ErrLeaseLost) {
					l.logger.Error("node lease lost", slog.String("key", l.key))
					if onLost != nil {
						onLost(err)
					}
					return
				}
				if loopCtx.Err() != nil {
					return
				}
				l.logger.Warn("node lease renewal failed", slog.String("key", l.key), slog.Any("error", err))
			}
		}
	}()
}

// Release stops renewal and frees the slot if still held.
func (l *Lease) Release(ctx context.Context) error {
	l.mu.Lock()
	stop, done, held := l.stopLoop, l.loopDone, l.held
	l.stopLoop, l.loopDone, l.held = nil, nil, false
	l.mu.Unlock()

	if stop != nil {
		stop()
		<-done
	}
	if !held {
		return nil
	}

	if _, err := l.store.CompareAndDelete(ctx, l.key, l.token); err != nil {
		return fmt.Errorf("nodelease: release %s: %w", l.key, err)
	}
	return nil
}
