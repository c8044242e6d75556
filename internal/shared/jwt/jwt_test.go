package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type TokenManagerSuite struct {
	suite.Suite
}

func (s *TokenManagerSuite) TestNew_TableDriven() {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "hmac default", opts: Options{Secret: testSecret}},
		{name: "hs512", opts: Options{Strategy: StrategyHMAC, Secret: testSecret, Algorithm: "HS512"}},
		{name: "empty secret", opts: Options{}, wantErr: "must not be empty"},
		{name: "short secret", opts: Options{Secret: []byte("short")}, wantErr: "at least 32 bytes"},
		{name: "bad algorithm", opts: Options{Secret: testSecret, Algorithm: "RS256"}, wantErr: "unsupported HMAC algorithm"},
		{name: "unknown strategy", opts: Options{Strategy: "rsa", Secret: testSecret}, wantErr: "unknown strategy"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			m, err := New(tc.opts)
			if tc.wantErr != "" {
				assert.ErrorContains(s.T(), err, tc.wantErr)
				return
			}
			require.NoError(s.T(), err)
			assert.NotNil(s.T(), m)
		})
	}
}

func (s *TokenManagerSuite) TestSignVerify_RoundTripsScopes() {
	m, err := New(Options{Secret: testSecret, Issuer: "idgen-api", TTL: time.Hour})
	require.NoError(s.T(), err)
	ctx := context.Background()

	token, err := m.Sign(ctx, Claims{Subject: "svc-orders", ID: "jti-1", Scopes: []string{"ids:write", "files:write"}})
	require.NoError(s.T(), err)

	claims, err := m.Verify(ctx, token)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "svc-orders", claims.Subject)
	assert.Equal(s.T(), "idgen-api", claims.Issuer)
	assert.Equal(s.T(), "jti-1", claims.ID)
	assert.Equal(s.T(), []string{"ids:write", "files:write"}, claims.Scopes)
	assert.True(s.T(), claims.HasScope("ids:write"))
	assert.False(s.T(), claims.HasScope("admin"))
	assert.WithinDuration(s.T(), time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
	assert.Equal(s.T(), time.Hour, m.TTL())
}

func (s *TokenManagerSuite) TestVerify_Rejects() {
	ctx := context.Background()
	m, err := New(Options{Secret: testSecret, Issuer: "idgen-api"})
	require.NoError(s.T(), err)

	expired, err := m.Sign(ctx, Claims{Subject: "a", ExpiresAt: time.Now().Add(-time.Minute)})
	require.NoError(s.T(), err)

	other, err := New(Options{Secret: []byte("ffffffffffffffffffffffffffffffff"), Issuer: "idgen-api"})
	require.NoError(s.T(), err)
	foreign, err := other.Sign(ctx, Claims{Subject: "a"})
	require.NoError(s.T(), err)

	otherIssuer, err := New(Options{Secret: testSecret, Issuer: "someone-else"})
	require.NoError(s.T(), err)
	wrongIssuer, err := otherIssuer.Sign(ctx, Claims{Subject: "a"})
	require.NoError(s.T(), err)

	for name, token := range map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"wrong issuer": wrongIssuer,
		"garbage":      "not.a.token",
	} {
		s.Run(name, func() {
			_, err := m.Verify(ctx, token)
			assert.Error(s.T(), err)
		})
	}
}

func (s *TokenManagerSuite) TestContextClaims() {
	_, ok := GetClaims(context.Background())
	assert.False(s.T(), ok)

	_, ok = GetClaims(SetClaims(context.Background(), nil))
	assert.False(s.T(), ok)

	ctx := SetClaims(context.Background(), &Claims{Subject: "svc", Scopes: []string{"ids:write"}})
	claims, ok := GetClaims(ctx)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "svc", claims.Subject)
	assert.True(s.T(), claims.HasScope("ids:write"))
}

func TestTokenManagerSuite(t *testing.T) {
	suite.Run(t, new(TokenManagerSuite))
}
