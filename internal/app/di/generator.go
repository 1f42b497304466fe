// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"news_risk_backend/internal/feature/riskanalysis/adapters/gemini"
	"news_risk_backend/internal/feature/riskanalysis/usecase"
	"news_risk_backend/internal/platform/cache"
)

// NewTextGenerator creates the Gemini generator and, when Redis is available,
// wraps it with the response cache.
func NewTextGenerator(ctx context.Context, cfg gemini.Config, rdb *redis.Client, ttl time.Duration) (usecase.TextGenerator, error) {
	gen, err := gemini.NewGeminiGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WrapWithCache(gen, rdb, ttl), nil
}

// WrapWithCache returns gen unchanged when rdb is nil.
func WrapWithCache(gen usecase.TextGenerator, rdb *redis.Client, ttl time.Duration) usecase.TextGenerator {
	if rdb == nil {
		return gen
	}
	return cache.NewCachingGenerator(rdb, ttl, gen, "generation")
}
