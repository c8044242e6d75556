// Package idempotency records request outcomes under a client-supplied key so
// that retried requests replay the first response instead of running twice.
package idempotency

import (
	"context"
	"errors"
	"strings"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

type Request struct {
	Scope       string
	Key         string
	RequestHash string
	LockTTL     time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Store decides what to do with a keyed request and persists its outcome.
type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error

	// Release drops an in-progress claim so the key can be retried.
	Release(ctx context.Context, request Request) error
}

func (r Request) normalize() (Request, error) {
	r.Scope = strings.TrimSpace(r.Scope)
	if r.Scope == "" {
		return r, errors.New("idempotency: scope is required")
	}
	r.Key = strings.TrimSpace(r.Key)
	if r.Key == "" {
		return r, errors.New("idempotency: key is required")
	}
	r.RequestHash = strings.TrimSpace(r.RequestHash)
	if r.RequestHash == "" {
		return r, errors.New("idempotency: request hash is required")
	}
	return r, nil
}
