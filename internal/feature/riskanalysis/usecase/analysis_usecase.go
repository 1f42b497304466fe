// Package usecase はriskanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"news_risk_backend/internal/feature/riskanalysis/domain"
	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

// MaxImageSize は記事画像アップロードの最大サイズ（10MB）です。
const MaxImageSize = 10 * 1024 * 1024

// EntityExtractor は記事本文から固有表現スパンを抽出するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EntityExtractor interface {
	// ExtractSpans はラベル付きスパンを返します。ラベルの絞り込みは呼び出し側で行います。
	ExtractSpans(ctx context.Context, text string) ([]entity.Span, error)
}

// TextGenerator はプロンプトからテキストを生成するインターフェースです。
type TextGenerator interface {
	// Generate はプロンプトに対する生成テキストを返します。出力形式は保証されません。
	Generate(ctx context.Context, prompt string) (string, error)
}

// TextReader は画像から記事本文を読み取るインターフェースです。
type TextReader interface {
	ReadText(ctx context.Context, imageData []byte) (string, error)
}

// analysisUsecase はリスク分析のビジネスロジックを提供します。
type analysisUsecase struct {
	extractor EntityExtractor
	generator TextGenerator
	reader    TextReader
	repo      AnalysisRepository
}

// Option はanalysisUsecaseの任意の依存を設定します。
type Option func(*analysisUsecase)

// WithTextReader は画像入力用のTextReaderを設定します。
func WithTextReader(r TextReader) Option {
	return func(u *analysisUsecase) { u.reader = r }
}

// WithRepository は分析結果の保存先を設定します。未設定の場合は保存しません。
func WithRepository(repo AnalysisRepository) Option {
	return func(u *analysisUsecase) { u.repo = repo }
}

// NewAnalysisUsecase はanalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase(ex EntityExtractor, gen TextGenerator, opts ...Option) *analysisUsecase {
	u := &analysisUsecase{extractor: ex, generator: gen}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Analyze は記事本文のリスク評価を行います。
// 入力検証 → 固有表現抽出 → プロンプト生成 → 生成モデル呼び出し（1回、リトライなし）→ 正規化 → マージ の順に処理します。
func (u *analysisUsecase) Analyze(ctx context.Context, articleText string) (*entity.AnalysisResult, error) {
	text := strings.TrimSpace(articleText)
	if text == "" {
		return nil, domain.ErrEmptyArticle
	}

	spans, err := u.extractor.ExtractSpans(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEntityExtraction, err)
	}
	entities := BundleEntities(spans)

	raw, err := u.generator.Generate(ctx, BuildPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err)
	}
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("%w: empty response", domain.ErrGeneratorUnavailable)
	}

	var fields ParsedFields
	switch out := Normalize(raw).(type) {
	case ParsedFields:
		fields = out
	case MalformedOutput:
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedOutput, out.Err)
	}

	result := &entity.AnalysisResult{
		Summary:       fields.Summary,
		Sentiment:     fields.Sentiment,
		RiskType:      fields.RiskType,
		RiskRationale: fields.RiskRationale,
		RiskScore:     fields.RiskScore,
		KeyPoints:     fields.KeyPoints,
		Entities:      entities,
	}

	if u.repo != nil {
		// 保存失敗は分析結果の返却を妨げない
		if _, err := u.repo.Save(ctx, text, *result); err != nil {
			slog.Warn("failed to save analysis", "error", err)
		}
	}

	return result, nil
}

// AnalyzeImage は記事画像から本文を読み取り、Analyzeと同じ処理を行います。
func (u *analysisUsecase) AnalyzeImage(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error) {
	if len(imageData) == 0 {
		return nil, domain.ErrEmptyImage
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("%w of %d bytes", domain.ErrImageTooLarge, MaxImageSize)
	}
	if u.reader == nil {
		return nil, fmt.Errorf("%w: no text reader configured", domain.ErrTextReader)
	}

	text, err := u.reader.ReadText(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTextReader, err)
	}
	return u.Analyze(ctx, text)
}
