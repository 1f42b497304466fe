// Package ratelimiter は外部API呼び出しの頻度制限を提供します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter は固定ウィンドウ方式で操作の頻度を制限します。複数のgoroutineから安全に使用できます。
type RateLimiter struct {
	mu          sync.Mutex
	limit       int           // ウィンドウあたりの上限
	interval    time.Duration // ウィンドウの長さ
	count       int
	windowStart time.Time
	now         func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Wait はレートリミットの上限に達している場合、次のウィンドウまで待機します。
// 待機中にctxがキャンセルされた場合はctxのエラーを返します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	delay := rl.reserve()
	if delay <= 0 {
		return nil
	}

	slog.Info("rate limit reached, waiting", "limit", rl.limit, "delay", delay)
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// reserve は呼び出し枠を1つ確保し、その枠が使えるまでの待ち時間を返します。
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.windowStart) >= rl.interval {
		rl.windowStart = now
		rl.count = 0
	}

	if rl.count >= rl.limit {
		// 上限に達したので次のウィンドウの枠を確保する
		rl.windowStart = rl.windowStart.Add(rl.interval)
		rl.count = 0
	}
	rl.count++

	return rl.windowStart.Sub(now)
}
