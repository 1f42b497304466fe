// Package adapters はriskanalysisフィーチャーの永続化アダプターを提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"news_risk_backend/internal/feature/riskanalysis/domain"
	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
	"news_risk_backend/internal/feature/riskanalysis/usecase"
	"news_risk_backend/internal/shared/digest"
)

type analysisGorm struct {
	db *gorm.DB
}

var _ usecase.AnalysisRepository = (*analysisGorm)(nil)

// NewAnalysisRepository はgormを使用したAnalysisRepositoryを生成します。
func NewAnalysisRepository(db *gorm.DB) *analysisGorm {
	return &analysisGorm{db: db}
}

// AnalysisModel は分析履歴テーブルの行です。
type AnalysisModel struct {
	ID            uint   `gorm:"primaryKey"`
	ArticleDigest string `gorm:"size:64;not null;index"`
	ArticleText   string `gorm:"type:text;not null"`

	Summary       string              `gorm:"type:text;not null"`
	Sentiment     string              `gorm:"size:64;not null"`
	RiskType      string              `gorm:"size:64;not null"`
	RiskRationale string              `gorm:"type:text;not null"`
	RiskScore     int                 `gorm:"not null;default:0"`
	KeyPoints     []string            `gorm:"serializer:json"`
	Entities      entity.EntityBundle `gorm:"serializer:json"`

	CreatedAt time.Time `gorm:"index"`
}

func (AnalysisModel) TableName() string {
	return "analyses"
}

func toModel(articleText string, r entity.AnalysisResult) AnalysisModel {
	return AnalysisModel{
		ArticleDigest: digest.Hex(articleText),
		ArticleText:   articleText,
		Summary:       r.Summary,
		Sentiment:     r.Sentiment,
		RiskType:      r.RiskType,
		RiskRationale: r.RiskRationale,
		RiskScore:     r.RiskScore,
		KeyPoints:     r.KeyPoints,
		Entities:      r.Entities,
	}
}

func toEntity(m AnalysisModel) entity.AnalysisRecord {
	keyPoints := m.KeyPoints
	if keyPoints == nil {
		keyPoints = []string{}
	}
	return entity.AnalysisRecord{
		ID:            m.ID,
		ArticleDigest: m.ArticleDigest,
		ArticleText:   m.ArticleText,
		CreatedAt:     m.CreatedAt,
		Result: entity.AnalysisResult{
			Summary:       m.Summary,
			Sentiment:     m.Sentiment,
			RiskType:      m.RiskType,
			RiskRationale: m.RiskRationale,
			RiskScore:     m.RiskScore,
			KeyPoints:     keyPoints,
			Entities:      m.Entities,
		},
	}
}

func (r *analysisGorm) Save(ctx context.Context, articleText string, result entity.AnalysisResult) (uint, error) {
	m := toModel(articleText, result)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return 0, fmt.Errorf("save analysis: %w", err)
	}
	return m.ID, nil
}

func (r *analysisGorm) FindByID(ctx context.Context, id uint) (*entity.AnalysisRecord, error) {
	var m AnalysisModel
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find analysis %d: %w", id, err)
	}
	rec := toEntity(m)
	return &rec, nil
}

func (r *analysisGorm) ListRecent(ctx context.Context, limit int) ([]entity.AnalysisRecord, error) {
	var ms []AnalysisModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	out := make([]entity.AnalysisRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, toEntity(m))
	}
	return out, nil
}
