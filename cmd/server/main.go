package main

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"news_risk_backend/internal/app/di"
	"news_risk_backend/internal/app/router"
	"news_risk_backend/internal/feature/riskanalysis/adapters/gemini"
	"news_risk_backend/internal/feature/riskanalysis/adapters/language"
	"news_risk_backend/internal/feature/riskanalysis/adapters/vision"
	"news_risk_backend/internal/feature/riskanalysis/transport/handler"
	"news_risk_backend/internal/feature/riskanalysis/usecase"
	infradb "news_risk_backend/internal/platform/db"
	platformhandler "news_risk_backend/internal/platform/http/handler"
	jwtmw "news_risk_backend/internal/platform/jwt"
	infraredis "news_risk_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	ctx := context.Background()

	// Redis（任意。生成応答のキャッシュに使用）
	redisCfg := infraredis.LoadConfig()
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, redisCfg); err != nil {
		if !errors.Is(err, infraredis.ErrNotConfigured) {
			log.Println("[WARN] Redis unavailable. Running without generation cache.")
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// db（任意。分析履歴に使用）
	var db *gorm.DB
	if tmp, err := infradb.OpenDB(infradb.LoadConfigFromEnv()); err != nil {
		if !errors.Is(err, infradb.ErrDisabled) {
			log.Fatal("failed to open database: ", err)
		}
		log.Println("[INFO] DB_DRIVER is not set. Analysis history is disabled.")
	} else {
		db = tmp
	}

	// 外部モデル
	gen, err := di.NewTextGenerator(ctx, gemini.LoadConfig(), rdb, redisCfg.CacheTTL)
	if err != nil {
		log.Fatal(err)
	}
	extractor, err := language.NewNaturalLanguageExtractor(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer extractor.Close()

	var opts []usecase.Option
	if enabled, _ := strconv.ParseBool(os.Getenv("ENABLE_VISION")); enabled {
		reader, err := vision.NewVisionTextReader(ctx)
		if err != nil {
			log.Fatal(err)
		}
		defer reader.Close()
		opts = append(opts, usecase.WithTextReader(reader))
	}

	// Repository
	repo := di.NewAnalysisRepository(db)
	if repo != nil {
		opts = append(opts, usecase.WithRepository(repo))
	}

	// Usecase / Handler
	analysisUC := usecase.NewAnalysisUsecase(extractor, gen, opts...)
	handlers := router.Handlers{
		Analysis: handler.NewAnalysisHandler(analysisUC),
		Health:   platformhandler.NewHealthHandler(di.NewHealthChecks(db, rdb)),
	}
	if repo != nil {
		handlers.History = handler.NewHistoryHandler(usecase.NewHistoryUsecase(repo))
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" && repo != nil {
		log.Println("[WARN] JWT_SECRET is not set. Analysis history is served without authentication.")
	}

	// ルータ生成
	r := router.NewRouter(handlers, router.Options{
		JWTSecret:      secret,
		AllowedOrigins: splitOrigins(os.Getenv("FRONTEND_URL")),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

// splitOrigins はカンマ区切りのオリジン一覧を分解します。
func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
