package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/idgen-api/internal/shared/cache"
)

type LimiterSuite struct {
	suite.Suite

	server *miniredis.Miniredis
	client *redis.Client
	store  *cache.Store
}

func (s *LimiterSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.server.Addr()})
	store, err := cache.New(s.client)
	require.NoError(s.T(), err)
	s.store = store
}

func (s *LimiterSuite) TearDownTest() {
	_ = s.client.Close()
}

func (s *LimiterSuite) TestNew_TableDriven() {
	tests := []struct {
		name    string
		counter Counter
		config  Config
		wantErr string
	}{
		{name: "valid", counter: s.store, config: Config{Limit: 1, Window: time.Second}},
		{name: "missing counter", config: Config{Limit: 1, Window: time.Second}, wantErr: "counter is required"},
		{name: "zero limit", counter: s.store, config: Config{Window: time.Second}, wantErr: "limit must be positive"},
		{name: "zero window", counter: s.store, config: Config{Limit: 1}, wantErr: "window must be positive"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			l, err := New(tc.counter, tc.config)
			if tc.wantErr != "" {
				assert.ErrorContains(s.T(), err, tc.wantErr)
				return
			}
			require.NoError(s.T(), err)
			assert.NotNil(s.T(), l)
		})
	}
}

func (s *LimiterSuite) TestAllowKey_FixedWindow() {
	var limitedKey string
	l, err := New(s.store, Config{
		Limit:  2,
		Window: time.Minute,
		OnLimited: func(_ context.Context, key string, _ Result) {
			limitedKey = key
		},
	})
	require.NoError(s.T(), err)
	ctx := context.Background()

	first, err := l.AllowKey(ctx, "client:a")
	require.NoError(s.T(), err)
	assert.True(s.T(), first.Allowed)
	assert.Equal(s.T(), int64(1), first.Remaining)
	assert.Equal(s.T(), int64(2), first.Limit)

	second, err := l.AllowKey(ctx, "client:a")
	require.NoError(s.T(), err)
	assert.True(s.T(), second.Allowed)
	assert.Zero(s.T(), second.Remaining)

	third, err := l.AllowKey(ctx, "client:a")
	require.NoError(s.T(), err)
	assert.False(s.T(), third.Allowed)
	assert.Zero(s.T(), third.Remaining)
	assert.Greater(s.T(), third.RetryAfter, time.Duration(0))
	assert.Equal(s.T(), "client:a", limitedKey)

	other, err := l.AllowKey(ctx, "client:b")
	require.NoError(s.T(), err)
	assert.True(s.T(), other.Allowed)

	s.server.FastForward(time.Minute)
	again, err := l.AllowKey(ctx, "client:a")
	require.NoError(s.T(), err)
	assert.True(s.T(), again.Allowed)
}

func (s *LimiterSuite) TestResetKey() {
	l, err := New(s.store, Config{Limit: 1, Window: time.Minute})
	require.NoError(s.T(), err)
	ctx := context.Background()

	_, err = l.AllowKey(ctx, "k")
	require.NoError(s.T(), err)
	blocked, err := l.AllowKey(ctx, "k")
	require.NoError(s.T(), err)
	require.False(s.T(), blocked.Allowed)

	require.NoError(s.T(), l.ResetKey(ctx, "k"))
	res, err := l.AllowKey(ctx, "k")
	require.NoError(s.T(), err)
	assert.True(s.T(), res.Allowed)
}

func (s *LimiterSuite) TestAllow_UsesExtractor() {
	l, err := New(s.store, Config{Limit: 5, Window: time.Minute, KeyExtractor: ClientKeyExtractor("ids")})
	require.NoError(s.T(), err)

	_, err = l.Allow(context.Background())
	assert.ErrorContains(s.T(), err, "client_id not found")

	_, err = l.Allow(WithClientID(context.Background(), "svc-a"))
	require.NoError(s.T(), err)
	assert.True(s.T(), s.server.Exists("ratelimit:ids:client:svc-a"))
}

func (s *LimiterSuite) TestKeyExtractors_TableDriven() {
	ctx := WithClientID(WithIP(context.Background(), "10.0.0.1"), "svc")

	tests := []struct {
		name      string
		extractor KeyExtractor
		ctx       context.Context
		want      string
		wantErr   bool
	}{
		{name: "default with ip", extractor: DefaultKeyExtractor, ctx: ctx, want: "ip:10.0.0.1"},
		{name: "default without ip", extractor: DefaultKeyExtractor, ctx: context.Background(), want: "default"},
		{name: "ip with prefix", extractor: IPKeyExtractor("api"), ctx: ctx, want: "api:ip:10.0.0.1"},
		{name: "ip without prefix", extractor: IPKeyExtractor(""), ctx: ctx, want: "ip:10.0.0.1"},
		{name: "ip missing", extractor: IPKeyExtractor("api"), ctx: context.Background(), wantErr: true},
		{name: "client", extractor: ClientKeyExtractor("ids"), ctx: ctx, want: "ids:client:svc"},
		{
			name:      "composite",
			extractor: CompositeKeyExtractor(ClientKeyExtractor(""), IPKeyExtractor("")),
			ctx:       ctx,
			want:      "client:svc:ip:10.0.0.1",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			got, err := tc.extractor(tc.ctx)
			if tc.wantErr {
				assert.Error(s.T(), err)
				return
			}
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.want, got)
		})
	}
}

func TestLimiterSuite(t *testing.T) {
	suite.Run(t, new(LimiterSuite))
}
