// Package secret hashes and verifies API client secrets.
package secret

import (
	"context"
	"errors"
	"fmt"
)

// Strategy defines which hashing algorithm to use.
type Strategy string

const (
	StrategyBcrypt Strategy = "bcrypt"
)

// ErrMismatch is returned by Compare when the plaintext does not match.
var ErrMismatch = errors.New("secret: hash does not match")

// Options configures the hasher.
type Options struct {
	// Strategy selects the hashing algorithm. Empty means bcrypt.
	Strategy Strategy

	// Cost is the bcrypt work factor. Zero uses bcrypt.DefaultCost.
	Cost int
}

// Hasher hashes client secrets and compares them against stored hashes.
// Implementations must be safe for concurrent use.
type Hasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)

	// Compare returns nil on match and an error wrapping ErrMismatch otherwise.
	Compare(ctx context.Context, hashed, plaintext string) error
}

// New creates a Hasher based on the provided options.
func New(opts Options) (Hasher, error) {
	switch opts.Strategy {
	case "", StrategyBcrypt:
		return NewBcrypt(opts.Cost)
	default:
		return nil, fmt.Errorf("secret: unknown strategy %q", opts.Strategy)
	}
}
