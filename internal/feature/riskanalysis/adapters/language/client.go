// Package language はGoogle Cloud Natural Language APIを使用した固有表現抽出クライアントを提供します。
package language

import (
	"context"
	"fmt"

	lang "cloud.google.com/go/language/apiv2"
	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"

	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
	"news_risk_backend/internal/feature/riskanalysis/usecase"
)

// entityAnnotator は*lang.Clientのうち本パッケージが使用するメソッドです。
type entityAnnotator interface {
	AnalyzeEntities(ctx context.Context, req *languagepb.AnalyzeEntitiesRequest, opts ...gax.CallOption) (*languagepb.AnalyzeEntitiesResponse, error)
	Close() error
}

// NaturalLanguageExtractor はCloud Natural Language APIを使用して固有表現を抽出します。
type NaturalLanguageExtractor struct {
	client entityAnnotator
}

// NaturalLanguageExtractorがEntityExtractorを実装していることをコンパイル時に検証します。
var _ usecase.EntityExtractor = (*NaturalLanguageExtractor)(nil)

// NewNaturalLanguageExtractor はADCを使用してNaturalLanguageExtractorの新しいインスタンスを生成します。
func NewNaturalLanguageExtractor(ctx context.Context) (*NaturalLanguageExtractor, error) {
	client, err := lang.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create natural language client: %w", err)
	}
	return &NaturalLanguageExtractor{client: client}, nil
}

// Close はNatural Language APIクライアントを解放します。
func (n *NaturalLanguageExtractor) Close() error {
	return n.client.Close()
}

// ExtractSpans は記事本文の固有名詞の言及をラベル付きスパンとして返します。
func (n *NaturalLanguageExtractor) ExtractSpans(ctx context.Context, text string) ([]entity.Span, error) {
	req := &languagepb.AnalyzeEntitiesRequest{
		Document: &languagepb.Document{
			Type:   languagepb.Document_PLAIN_TEXT,
			Source: &languagepb.Document_Content{Content: text},
		},
		EncodingType: languagepb.EncodingType_UTF8,
	}

	resp, err := n.client.AnalyzeEntities(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("natural language API request failed: %w", err)
	}

	var spans []entity.Span
	for _, e := range resp.GetEntities() {
		label := labelFor(e.GetType())
		for _, m := range e.GetMentions() {
			// 普通名詞（"the bank" など）は固有表現として扱わない
			if m.GetType() != languagepb.EntityMention_PROPER {
				continue
			}
			spans = append(spans, entity.Span{Text: m.GetText().GetContent(), Label: label})
		}
	}
	return spans, nil
}

// labelFor はNatural Language APIのエンティティ種別をスパンラベルに変換します。
func labelFor(t languagepb.Entity_Type) entity.SpanLabel {
	switch t {
	case languagepb.Entity_ORGANIZATION:
		return entity.LabelOrganization
	case languagepb.Entity_PERSON:
		return entity.LabelPerson
	case languagepb.Entity_LOCATION:
		return entity.LabelLocation
	default:
		return entity.LabelOther
	}
}
