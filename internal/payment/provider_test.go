// AngelaMos | 2026
// provider_test.go

package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/petal-commerce/internal/payment"
)

type fakeFetcher struct {
	calls int
	token *payment.AccessToken
	err   error
}

func (f *fakeFetcher) FetchToken(
	ctx context.Context,
) (*payment.AccessToken, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.token, nil
}

type memoryCache struct {
	token *payment.AccessToken
}

func (c *memoryCache) Get(ctx context.Context) (*payment.AccessToken, error) {
	return c.token, nil
}

func (c *memoryCache) Set(
	ctx context.Context,
	token *payment.AccessToken,
) error {
	c.token = token
	return nil
}

func freshToken(expiresIn time.Duration) *payment.AccessToken {
	return &payment.AccessToken{
		Scope:       "https://uri.paypal.com/services/payments/payment",
		AccessToken: "A21AA" + time.Now().Format("150405.000000"),
		TokenType:   "Bearer",
		AppID:       "APP-80W284485P519543T",
		ExpiresIn:   int64(expiresIn / time.Second),
		Nonce:       "nonce",
		ExpiresAt:   time.Now().Add(expiresIn),
	}
}

func TestToken_CachedTokenIsReused(t *testing.T) {
	cached := freshToken(time.Hour)
	fetcher := &fakeFetcher{token: freshToken(time.Hour)}
	provider := payment.NewProvider(fetcher, &memoryCache{token: cached})

	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached.AccessToken, token.AccessToken)
	assert.Zero(t, fetcher.calls)
}

func TestToken_ExpiredTokenTriggersRefresh(t *testing.T) {
	expired := freshToken(-time.Minute)
	replacement := freshToken(time.Hour)
	fetcher := &fakeFetcher{token: replacement}
	cache := &memoryCache{token: expired}
	provider := payment.NewProvider(fetcher, cache)

	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, replacement.AccessToken, token.AccessToken)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, replacement.AccessToken, cache.token.AccessToken)
}

func TestToken_NearExpiryCountsAsExpired(t *testing.T) {
	almostExpired := freshToken(5 * time.Second)
	fetcher := &fakeFetcher{token: freshToken(time.Hour)}
	provider := payment.NewProvider(
		fetcher,
		&memoryCache{token: almostExpired},
	)

	_, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
}

func TestToken_EmptyCacheFetches(t *testing.T) {
	fetcher := &fakeFetcher{token: freshToken(time.Hour)}
	cache := &memoryCache{}
	provider := payment.NewProvider(fetcher, cache)

	token, err := provider.Token(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.calls)
	assert.NotNil(t, cache.token)
	assert.Equal(t, fetcher.token.AccessToken, token.AccessToken)
}

func TestToken_FetchErrorPropagates(t *testing.T) {
	fetchErr := errors.New("gateway unavailable")
	fetcher := &fakeFetcher{err: fetchErr}
	provider := payment.NewProvider(fetcher, &memoryCache{})

	_, err := provider.Token(context.Background())

	require.ErrorIs(t, err, fetchErr)
}

func TestAccessTokenIsExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		expiresAt time.Time
		expired   bool
	}{
		{"far future", now.Add(time.Hour), false},
		{"already past", now.Add(-time.Minute), true},
		{"inside slack window", now.Add(10 * time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &payment.AccessToken{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.expired, token.IsExpired(now))
		})
	}
}
