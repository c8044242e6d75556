package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

var _ TokenManager = (*hmacManager)(nil)

type tokenClaims struct {
	jwtlib.RegisteredClaims
	Scope string `json:"scope,omitempty"`
}

type hmacManager struct {
	secret   []byte
	method   jwtlib.SigningMethod
	issuer   string
	audience []string
	ttl      time.Duration
}

// NewHMAC creates an HMAC-based TokenManager.
func NewHMAC(opts Options) (TokenManager, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("jwt: HMAC secret must not be empty")
	}
	if len(opts.Secret) < 32 {
		return nil, fmt.Errorf("jwt: HMAC secret must be at least 32 bytes, got %d", len(opts.Secret))
	}

	method, err := resolveHMACMethod(opts.Algorithm)
	if err != nil {
		return nil, err
	}

	return &hmacManager{
		secret:   opts.Secret,
		method:   method,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		ttl:      opts.TTL,
	}, nil
}

func resolveHMACMethod(alg string) (jwtlib.SigningMethod, error) {
	switch alg {
	case "", "HS256":
		return jwtlib.SigningMethodHS256, nil
	case "HS384":
		return jwtlib.SigningMethodHS384, nil
	case "HS512":
		return jwtlib.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: unsupported HMAC algorithm %q", alg)
	}
}

func (m *hmacManager) TTL() time.Duration { return m.ttl }

func (m *hmacManager) Sign(_ context.Context, claims Claims) (string, error) {
	now := time.Now()

	registered := jwtlib.RegisteredClaims{
		Subject: claims.Subject,
		ID:      claims.ID,
		Issuer:  m.issuer,
	}
	if claims.Issuer != "" {
		registered.Issuer = claims.Issuer
	}

	if claims.Audience != nil {
		registered.Audience = jwtlib.ClaimStrings(claims.Audience)
	} else if m.audience != nil {
		registered.Audience = jwtlib.ClaimStrings(m.audience)
	}

	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = now
	}
	registered.IssuedAt = jwtlib.NewNumericDate(issuedAt)

	if !claims.ExpiresAt.IsZero() {
		registered.ExpiresAt = jwtlib.NewNumericDate(claims.ExpiresAt)
	} else if m.ttl > 0 {
		registered.ExpiresAt = jwtlib.NewNumericDate(now.Add(m.ttl))
	}

	if !claims.NotBefore.IsZero() {
		registered.NotBefore = jwtlib.NewNumericDate(claims.NotBefore)
	}

	token := jwtlib.NewWithClaims(m.method, tokenClaims{
		RegisteredClaims: registered,
		Scope:            joinScopes(claims.Scopes),
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *hmacManager) Verify(_ context.Context, tokenString string) (*Claims, error) {
	opts := []jwtlib.ParserOption{jwtlib.WithValidMethods([]string{m.method.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(m.issuer))
	}

	token, err := jwtlib.ParseWithClaims(tokenString, &tokenClaims{}, func(*jwtlib.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("jwt: token validation failed: %w", err)
	}

	parsed, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, errors.New("jwt: unexpected claims type")
	}

	return toClaims(parsed), nil
}

func toClaims(t *tokenClaims) *Claims {
	c := &Claims{
		Subject:  t.Subject,
		Issuer:   t.Issuer,
		Audience: []string(t.Audience),
		ID:       t.ID,
		Scopes:   splitScopes(t.Scope),
	}
	if t.ExpiresAt != nil {
		c.ExpiresAt = t.ExpiresAt.Time
	}
	if t.IssuedAt != nil {
		c.IssuedAt = t.IssuedAt.Time
	}
	if t.NotBefore != nil {
		c.NotBefore = t.NotBefore.Time
	}
	return c
}
