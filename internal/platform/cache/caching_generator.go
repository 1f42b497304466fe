// Package cache provides caching decorators for outbound model calls.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"news_risk_backend/internal/feature/riskanalysis/usecase"
	"news_risk_backend/internal/shared/digest"
)

// CachingGenerator decorates a TextGenerator with Redis caching keyed by the prompt digest.
// Only responses that normalize into a JSON object are stored, so a malformed reply is
// never replayed from cache.
type CachingGenerator struct {
	inner     usecase.TextGenerator
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.TextGenerator = (*CachingGenerator)(nil)

// NewCachingGenerator decorates a TextGenerator with Redis caching.
// If ttl is 0, it defaults to 1 hour. If namespace is empty, it uses "generation".
func NewCachingGenerator(rdb *redis.Client, ttl time.Duration, inner usecase.TextGenerator, namespace string) *CachingGenerator {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if namespace == "" {
		namespace = "generation"
	}
	return &CachingGenerator{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Generate returns the cached response for the prompt, falling back to the inner generator.
func (c *CachingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Generate(ctx, prompt)
	}

	key := c.cacheKey(prompt)

	// 1) Check cache
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil && strings.TrimSpace(s) != "" {
		return s, nil
	}

	// 2) Fallback to the model
	out, err := c.inner.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	// 3) Store in cache (best effort)
	if _, ok := usecase.Normalize(out).(usecase.ParsedFields); ok {
		_ = c.rdb.Set(ctx, key, out, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a prompt.
func (c *CachingGenerator) cacheKey(prompt string) string {
	return fmt.Sprintf("%s:%s", c.namespace, digest.Hex(prompt))
}
