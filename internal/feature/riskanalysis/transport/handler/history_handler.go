package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"news_risk_backend/internal/api"
	"news_risk_backend/internal/feature/riskanalysis/domain"
	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

// HistoryUsecase は分析履歴参照のユースケースインターフェースを定義します。
type HistoryUsecase interface {
	Get(ctx context.Context, id uint) (*entity.AnalysisRecord, error)
	List(ctx context.Context, limit int) ([]entity.AnalysisRecord, error)
}

// HistoryHandler は分析履歴のHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler はHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List は新しい順に分析履歴を返します。
//
// エンドポイント: GET /analyses?limit=N
func (h *HistoryHandler) List(c *gin.Context) {
	var params api.ListAnalysesParams
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.Request.URL.Query(), &params.Limit); err != nil {
		slog.Warn("limitパラメータが不正", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid limit parameter."})
		return
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	records, err := h.uc.List(c.Request.Context(), limit)
	if err != nil {
		slog.Error("分析履歴の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to load analyses."})
		return
	}

	out := api.AnalysisRecordList{Items: make([]api.AnalysisRecordResponse, 0, len(records))}
	for _, r := range records {
		out.Items = append(out.Items, toRecordResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// Get はIDで分析履歴を1件返します。
//
// エンドポイント: GET /analyses/:id
func (h *HistoryHandler) Get(c *gin.Context) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil || id <= 0 {
		slog.Warn("idパラメータが不正", "error", err, "id", c.Param("id"), "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "Invalid analysis id."})
		return
	}

	rec, err := h.uc.Get(c.Request.Context(), uint(id))
	if errors.Is(err, domain.ErrAnalysisNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "Analysis not found."})
		return
	}
	if err != nil {
		slog.Error("分析履歴の取得に失敗", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Failed to load analysis."})
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(*rec))
}

func toRecordResponse(r entity.AnalysisRecord) api.AnalysisRecordResponse {
	return api.AnalysisRecordResponse{
		Id:            int(r.ID),
		ArticleDigest: r.ArticleDigest,
		ArticleText:   r.ArticleText,
		CreatedAt:     r.CreatedAt,
		Result:        ToAnalysisResponse(r.Result),
	}
}
