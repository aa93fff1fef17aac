// AngelaMos | 2026
// provider.go

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "paypal:access_token"

// TokenFetcher requests a fresh gateway token.
type TokenFetcher interface {
	FetchToken(ctx context.Context) (*AccessToken, error)
}

// TokenCache holds the current token between requests.
type TokenCache interface {
	Get(ctx context.Context) (*AccessToken, error)
	Set(ctx context.Context, token *AccessToken) error
}

// Provider hands out a valid gateway token, fetching a new one only when
// the cached token is missing or expired.
type Provider struct {
	fetcher TokenFetcher
	cache   TokenCache
	now     func() time.Time

	mu sync.Mutex
}

func NewProvider(fetcher TokenFetcher, cache TokenCache) *Provider {
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
		now:     time.Now,
	}
}

func (p *Provider) Token(ctx context.Context) (*AccessToken, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cached, err := p.cache.Get(ctx)
	if err == nil && cached != nil && !cached.IsExpired(p.now()) {
		return cached, nil
	}
	if err != nil {
		slog.Warn("paypal token cache read failed", "error", err)
	}

	token, err := p.fetcher.FetchToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh gateway token: %w", err)
	}

	if cacheErr := p.cache.Set(ctx, token); cacheErr != nil {
		slog.Warn("paypal token cache write failed", "error", cacheErr)
	}

	return token, nil
}

type redisTokenCache struct {
	client *redis.Client
}

func NewRedisTokenCache(client *redis.Client) TokenCache {
	return &redisTokenCache{client: client}
}

func (c *redisTokenCache) Get(ctx context.Context) (*AccessToken, error) {
	data, err := c.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get cached token: %w", err)
	}

	var token AccessToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("decode cached token: %w", err)
	}

	return &token, nil
}

func (c *redisTokenCache) Set(
	ctx context.Context,
	token *AccessToken,
) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := c.client.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache token: %w", err)
	}

	return nil
}
