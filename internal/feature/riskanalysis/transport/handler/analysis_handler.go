// Package handler はriskanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"news_risk_backend/internal/api"
	"news_risk_backend/internal/feature/riskanalysis/domain"
	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

// クライアントに返すエラー詳細です。内部エラーの内容は公開しません。
const (
	DetailInvalidRequest       = "Invalid request body."
	DetailEmptyArticle         = "Article text cannot be empty."
	DetailImageRequired        = "Image file is required."
	DetailImageEmpty           = "Image file is empty."
	DetailImageTooLarge        = "Image file exceeds the 10MB limit."
	DetailGeneratorUnavailable = "Text generation model returned no usable response."
	DetailMalformedOutput      = "Text generation model did not return valid JSON."
	DetailEntityExtraction     = "Entity extraction failed."
	DetailTextReader           = "Text extraction from image failed."
	DetailAnalysisFailed       = "Analysis failed."
)

// LivenessMessage は GET / が返すメッセージです。
const LivenessMessage = "Financial news risk analyzer backend is running"

// AnalysisUsecase はリスク分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, articleText string) (*entity.AnalysisResult, error)
	AnalyzeImage(ctx context.Context, imageData []byte) (*entity.AnalysisResult, error)
}

// AnalysisHandler はリスク分析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Root は稼働確認用のメッセージを返します。
//
// エンドポイント: GET /
func (h *AnalysisHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Message: LivenessMessage})
}

// Analyze は記事本文のリスク評価を返します。
//
// エンドポイント: POST /analyze
// Content-Type: application/json
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req api.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("分析リクエストのバインドに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: DetailInvalidRequest})
		return
	}

	var text string
	if req.ArticleText != nil {
		text = *req.ArticleText
	}

	result, err := h.uc.Analyze(c.Request.Context(), text)
	if err != nil {
		status, detail := statusFor(err)
		logFailure(c, "記事分析に失敗", status, err)
		c.JSON(status, api.ErrorResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, ToAnalysisResponse(*result))
}

// AnalyzeImage は記事画像から本文を読み取り、リスク評価を返します。
//
// エンドポイント: POST /analyze/image
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *AnalysisHandler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: DetailImageRequired})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: DetailAnalysisFailed})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: DetailAnalysisFailed})
		return
	}

	result, err := h.uc.AnalyzeImage(c.Request.Context(), imageData)
	if err != nil {
		status, detail := statusFor(err)
		logFailure(c, "記事画像の分析に失敗", status, err)
		c.JSON(status, api.ErrorResponse{Detail: detail})
		return
	}

	c.JSON(http.StatusOK, ToAnalysisResponse(*result))
}

// statusFor はドメインエラーをHTTPステータスとエラー詳細に変換します。
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyArticle):
		return http.StatusBadRequest, DetailEmptyArticle
	case errors.Is(err, domain.ErrEmptyImage):
		return http.StatusBadRequest, DetailImageEmpty
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusBadRequest, DetailImageTooLarge
	case errors.Is(err, domain.ErrMalformedOutput):
		return http.StatusInternalServerError, DetailMalformedOutput
	case errors.Is(err, domain.ErrGeneratorUnavailable):
		return http.StatusInternalServerError, DetailGeneratorUnavailable
	case errors.Is(err, domain.ErrEntityExtraction):
		return http.StatusInternalServerError, DetailEntityExtraction
	case errors.Is(err, domain.ErrTextReader):
		return http.StatusInternalServerError, DetailTextReader
	default:
		return http.StatusInternalServerError, DetailAnalysisFailed
	}
}

func logFailure(c *gin.Context, msg string, status int, err error) {
	if status < http.StatusInternalServerError {
		slog.Warn(msg, "error", err, "remote_addr", c.ClientIP())
		return
	}
	slog.Error(msg, "error", err, "remote_addr", c.ClientIP())
}

// ToAnalysisResponse はドメインの分析結果をレスポンスDTOに変換します。
func ToAnalysisResponse(r entity.AnalysisResult) api.AnalysisResponse {
	return api.AnalysisResponse{
		Summary:       r.Summary,
		Sentiment:     r.Sentiment,
		RiskType:      r.RiskType,
		RiskRationale: r.RiskRationale,
		RiskScore:     r.RiskScore,
		KeyPoints:     nonNil(r.KeyPoints),
		Entities: api.EntityBundle{
			Organizations: nonNil(r.Entities.Organizations),
			Persons:       nonNil(r.Entities.Persons),
			Locations:     nonNil(r.Entities.Locations),
		},
	}
}

// nonNil はJSONで null ではなく [] を出力するために空スライスを返します。
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
