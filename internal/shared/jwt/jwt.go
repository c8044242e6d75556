package jwt

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Strategy defines which signing algorithm family to use.
type Strategy string

const (
	StrategyHMAC Strategy = "hmac"
)

// Options configures the token manager.
type Options struct {
	// Strategy selects the signing algorithm family.
	Strategy Strategy

	// Secret is the shared key for HMAC-based strategies.
	// Must be at least 32 bytes.
	Secret []byte

	// Algorithm is "HS256" (default), "HS384" or "HS512".
	Algorithm string

	// Issuer sets the default "iss" claim on generated tokens.
	Issuer string

	// Audience sets the default "aud" claim on generated tokens.
	Audience []string

	// TTL determines the "exp" claim. Zero means tokens do not expire.
	TTL time.Duration
}

// Claims carries the registered claims plus the granted scopes of an API
// client. Scopes travel as the space-delimited "scope" claim (RFC 8693).
type Claims struct {
	Subject   string
	Issuer    string
	Audience  []string
	ExpiresAt time.Time
	IssuedAt  time.Time
	NotBefore time.Time
	ID        string
	Scopes    []string
}

// HasScope reports whether scope was granted.
func (c *Claims) HasScope(scope string) bool {
	return c != nil && slices.Contains(c.Scopes, scope)
}

// Signer creates signed JWT tokens.
// Implementations must be safe for concurrent use.
type Signer interface {
	// Sign creates a signed JWT from the given claims.
	// Fields left zero in claims are filled with defaults from Options.
	Sign(ctx context.Context, claims Claims) (string, error)
}

// Verifier validates and parses JWT tokens.
// Implementations must be safe for concurrent use.
type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*Claims, error)
}

// TokenManager combines signing and verification capabilities.
type TokenManager interface {
	Signer
	Verifier

	// TTL is the lifetime applied to tokens without an explicit expiry.
	TTL() time.Duration
}

// New creates a TokenManager based on the provided options.
func New(opts Options) (TokenManager, error) {
	switch opts.Strategy {
	case "", StrategyHMAC:
		return NewHMAC(opts)
	default:
		return nil, fmt.Errorf("jwt: unknown strategy %q", opts.Strategy)
	}
}

func joinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}

func splitScopes(scope string) []string {
	return strings.Fields(scope)
}
