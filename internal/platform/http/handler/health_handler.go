// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// Check は依存コンポーネント（DB・Redis など）の疎通を確認する関数です。
type Check func(ctx context.Context) error

// DefaultCheckTimeout は各 Check に与える待ち時間です。
const DefaultCheckTimeout = 2 * time.Second

// HealthHandler は /healthz を処理し、登録された依存コンポーネントの状態を返します。
type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewHealthHandler は HealthHandler を生成します。nil の Check は無視されます。
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	cs := make(map[string]Check, len(checks))
	for name, fn := range checks {
		if fn != nil {
			cs[name] = fn
		}
	}
	return &HealthHandler{checks: cs, timeout: DefaultCheckTimeout}
}

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// いずれかの Check が失敗した場合は 503 を返します。キャッシュは常に無効化します。
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	components, healthy := h.run(c.Request.Context())
	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	body := gin.H{"status": overall}
	if len(components) > 0 {
		body["components"] = components
	}
	c.JSON(status, body)
}

func (h *HealthHandler) run(ctx context.Context) (map[string]string, bool) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	out := make(map[string]string, len(names))
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, h.timeout)
		err := h.checks[name](cctx)
		cancel()
		if err != nil {
			slog.Warn("health check failed", "component", name, "err", err)
			out[name] = "unavailable"
			healthy = false
			continue
		}
		out[name] = "ok"
	}
	return out, healthy
}
