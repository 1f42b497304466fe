package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"news_risk_backend/internal/feature/riskanalysis/domain"
	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
	"news_risk_backend/internal/feature/riskanalysis/transport/handler"
)

// mockHistoryUsecase はHistoryUsecaseインターフェースのモック実装です。
type mockHistoryUsecase struct {
	GetFunc  func(ctx context.Context, id uint) (*entity.AnalysisRecord, error)
	ListFunc func(ctx context.Context, limit int) ([]entity.AnalysisRecord, error)
}

func (m *mockHistoryUsecase) Get(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockHistoryUsecase) List(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
	return m.ListFunc(ctx, limit)
}

func sampleRecord() entity.AnalysisRecord {
	return entity.AnalysisRecord{
		ID:            7,
		ArticleDigest: "abc",
		ArticleText:   "RBI fined HDFC Bank.",
		CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Result:        *sampleResult(),
	}
}

const sampleRecordJSON = `{
	"id":7,
	"article_digest":"abc",
	"article_text":"RBI fined HDFC Bank.",
	"created_at":"2024-01-02T03:04:05Z",
	"result":` + sampleResultJSON + `
}`

func TestHistoryHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		mockFunc       func(ctx context.Context, id uint) (*entity.AnalysisRecord, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: record found",
			path: "/analyses/7",
			mockFunc: func(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
				assert.Equal(t, uint(7), id)
				rec := sampleRecord()
				return &rec, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   sampleRecordJSON,
		},
		{
			name: "error: not found",
			path: "/analyses/8",
			mockFunc: func(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
				return nil, domain.ErrAnalysisNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"detail":"Analysis not found."}`,
		},
		{
			name:           "error: non numeric id",
			path:           "/analyses/abc",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"Invalid analysis id."}`,
		},
		{
			name:           "error: zero id",
			path:           "/analyses/0",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"Invalid analysis id."}`,
		},
		{
			name: "error: repository failure",
			path: "/analyses/7",
			mockFunc: func(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"Failed to load analysis."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHistoryHandler(&mockHistoryUsecase{GetFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/analyses/:id", h.Get)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHistoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		mockFunc       func(ctx context.Context, limit int) ([]entity.AnalysisRecord, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: with limit",
			path: "/analyses?limit=5",
			mockFunc: func(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
				assert.Equal(t, 5, limit)
				return []entity.AnalysisRecord{sampleRecord()}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"items":[` + sampleRecordJSON + `]}`,
		},
		{
			name: "success: without limit",
			path: "/analyses",
			mockFunc: func(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
				assert.Equal(t, 0, limit)
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"items":[]}`,
		},
		{
			name:           "error: invalid limit",
			path:           "/analyses?limit=many",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"detail":"Invalid limit parameter."}`,
		},
		{
			name: "error: repository failure",
			path: "/analyses",
			mockFunc: func(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"detail":"Failed to load analyses."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHistoryHandler(&mockHistoryUsecase{ListFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/analyses", h.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
