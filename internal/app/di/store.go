package di

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	riskadapters "news_risk_backend/internal/feature/riskanalysis/adapters"
	"news_risk_backend/internal/feature/riskanalysis/usecase"
	"news_risk_backend/internal/platform/http/handler"
)

// NewAnalysisRepository creates the history store.
// It returns nil when no database is configured, which disables persistence.
func NewAnalysisRepository(db *gorm.DB) usecase.AnalysisRepository {
	if db == nil {
		return nil
	}
	return riskadapters.NewAnalysisRepository(db)
}

// NewHealthChecks returns the dependency checks for /healthz.
// Components that are not configured are omitted.
func NewHealthChecks(db *gorm.DB, rdb *redis.Client) map[string]handler.Check {
	checks := map[string]handler.Check{}
	if db != nil {
		checks["database"] = func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
