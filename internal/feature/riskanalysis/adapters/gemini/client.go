// Package gemini はGoogle Gemini APIを使用したテキスト生成クライアントを提供します。
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"news_risk_backend/internal/feature/riskanalysis/usecase"
	"news_risk_backend/internal/shared/ratelimiter"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiGenerator はGoogle Gemini APIを使用してテキストを生成します。
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	limiter ratelimiter.Limiter
}

// GeminiGeneratorがTextGeneratorを実装していることをコンパイル時に検証します。
var _ usecase.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator はGeminiGeneratorの新しいインスタンスを生成します。
// cfg.APIKeyが空の場合はADCを使用し、環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION を参照します。
func NewGeminiGenerator(ctx context.Context, cfg Config) (*GeminiGenerator, error) {
	var cc *genai.ClientConfig
	if cfg.APIKey != "" {
		cc = &genai.ClientConfig{APIKey: cfg.APIKey, Backend: genai.BackendGeminiAPI}
	}
	return newGenerator(ctx, cc, cfg)
}

func newGenerator(ctx context.Context, cc *genai.ClientConfig, cfg Config) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	g := &GeminiGenerator{client: client, model: model}
	if cfg.RPM > 0 {
		g.limiter = ratelimiter.NewRateLimiter(cfg.RPM, time.Minute)
	}
	return g, nil
}

// Generate はプロンプトに対する生成テキストを返します。
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("gemini rate limiter: %w", err)
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
