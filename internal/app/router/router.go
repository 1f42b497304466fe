package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	riskhandler "news_risk_backend/internal/feature/riskanalysis/transport/handler"
	platformhandler "news_risk_backend/internal/platform/http/handler"
	jwtmw "news_risk_backend/internal/platform/jwt"
)

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Analysis *riskhandler.AnalysisHandler
	History  *riskhandler.HistoryHandler // データベース未設定時は nil
	Health   *platformhandler.HealthHandler
}

// Options はルーター全体の設定です。
type Options struct {
	// JWTSecret が設定されている場合、履歴APIは Bearer トークン必須になります。
	JWTSecret string
	// AllowedOrigins が空の場合は CORS ミドルウェアを登録しません。
	AllowedOrigins []string
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドから呼ばれる場合のみ
	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// 導通確認用
	r.GET("/", h.Analysis.Root)
	if h.Health != nil {
		r.GET("/healthz", h.Health.Health)
		r.HEAD("/healthz", h.Health.Health)
	}

	// 分析
	r.POST("/analyze", h.Analysis.Analyze)
	r.POST("/analyze/image", h.Analysis.AnalyzeImage)

	// 分析履歴（データベース設定時のみ）
	if h.History != nil {
		history := r.Group("/analyses")
		if opts.JWTSecret != "" {
			history.Use(jwtmw.AuthRequired(opts.JWTSecret))
		}
		{
			history.GET("", h.History.List)
			history.GET("/:id", h.History.Get)
		}
	}

	return r
}
