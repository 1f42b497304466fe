package usecase

import (
	"context"

	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

const (
	// DefaultHistoryLimit は履歴一覧のデフォルト件数です。
	DefaultHistoryLimit = 20
	// MaxHistoryLimit は履歴一覧の最大件数です。
	MaxHistoryLimit = 100
)

// AnalysisRepository は分析結果の永続化を行うリポジトリインターフェースです。
type AnalysisRepository interface {
	// Save は記事本文と分析結果を保存し、採番したIDを返します。
	Save(ctx context.Context, articleText string, result entity.AnalysisResult) (uint, error)
	// FindByID はIDで分析結果を取得します。存在しない場合は domain.ErrAnalysisNotFound を返します。
	FindByID(ctx context.Context, id uint) (*entity.AnalysisRecord, error)
	// ListRecent は新しい順に最大limit件の分析結果を返します。
	ListRecent(ctx context.Context, limit int) ([]entity.AnalysisRecord, error)
}

// historyUsecase は保存済み分析結果の参照を提供します。
type historyUsecase struct {
	repo AnalysisRepository
}

// NewHistoryUsecase はhistoryUsecaseの新しいインスタンスを生成します。
func NewHistoryUsecase(repo AnalysisRepository) *historyUsecase {
	return &historyUsecase{repo: repo}
}

// Get はIDで分析結果を1件取得します。
func (u *historyUsecase) Get(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
	return u.repo.FindByID(ctx, id)
}

// List は新しい順に分析結果を返します。limitが0以下ならデフォルト、上限超過なら上限に丸めます。
func (u *historyUsecase) List(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return u.repo.ListRecent(ctx, limit)
}
