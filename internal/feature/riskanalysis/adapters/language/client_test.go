package language

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/language/apiv2/languagepb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

// fakeAnnotator はentityAnnotatorのテスト用実装です。
type fakeAnnotator struct {
	resp   *languagepb.AnalyzeEntitiesResponse
	err    error
	gotReq *languagepb.AnalyzeEntitiesRequest
}

func (f *fakeAnnotator) AnalyzeEntities(ctx context.Context, req *languagepb.AnalyzeEntitiesRequest, opts ...gax.CallOption) (*languagepb.AnalyzeEntitiesResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func (f *fakeAnnotator) Close() error { return nil }

func mention(text string, typ languagepb.EntityMention_Type) *languagepb.EntityMention {
	return &languagepb.EntityMention{
		Text: &languagepb.TextSpan{Content: text},
		Type: typ,
	}
}

func TestNaturalLanguageExtractor_ExtractSpans(t *testing.T) {
	t.Parallel()

	fake := &fakeAnnotator{resp: &languagepb.AnalyzeEntitiesResponse{
		Entities: []*languagepb.Entity{
			{
				Name: "HDFC Bank",
				Type: languagepb.Entity_ORGANIZATION,
				Mentions: []*languagepb.EntityMention{
					mention("HDFC Bank", languagepb.EntityMention_PROPER),
					mention("the lender", languagepb.EntityMention_COMMON),
					mention("HDFC Bank", languagepb.EntityMention_PROPER),
				},
			},
			{
				Name:     "Sashidhar Jagdishan",
				Type:     languagepb.Entity_PERSON,
				Mentions: []*languagepb.EntityMention{mention("Sashidhar Jagdishan", languagepb.EntityMention_PROPER)},
			},
			{
				Name:     "Mumbai",
				Type:     languagepb.Entity_LOCATION,
				Mentions: []*languagepb.EntityMention{mention("Mumbai", languagepb.EntityMention_PROPER)},
			},
			{
				Name:     "10 crore",
				Type:     languagepb.Entity_PRICE,
				Mentions: []*languagepb.EntityMention{mention("₹10 crore", languagepb.EntityMention_TYPE_UNKNOWN)},
			},
			{
				Name:     "RBI Act",
				Type:     languagepb.Entity_WORK_OF_ART,
				Mentions: []*languagepb.EntityMention{mention("RBI Act", languagepb.EntityMention_PROPER)},
			},
		},
	}}
	ex := &NaturalLanguageExtractor{client: fake}

	spans, err := ex.ExtractSpans(context.Background(), "RBI fined HDFC Bank.")

	require.NoError(t, err)
	assert.Equal(t, []entity.Span{
		{Text: "HDFC Bank", Label: entity.LabelOrganization},
		{Text: "HDFC Bank", Label: entity.LabelOrganization},
		{Text: "Sashidhar Jagdishan", Label: entity.LabelPerson},
		{Text: "Mumbai", Label: entity.LabelLocation},
		{Text: "RBI Act", Label: entity.LabelOther},
	}, spans)
	assert.Equal(t, "RBI fined HDFC Bank.", fake.gotReq.GetDocument().GetContent())
	assert.Equal(t, languagepb.Document_PLAIN_TEXT, fake.gotReq.GetDocument().GetType())
}

func TestNaturalLanguageExtractor_ExtractSpans_Error(t *testing.T) {
	t.Parallel()

	ex := &NaturalLanguageExtractor{client: &fakeAnnotator{err: errors.New("unavailable")}}

	spans, err := ex.ExtractSpans(context.Background(), "text")

	require.Error(t, err)
	assert.Nil(t, spans)
	assert.Contains(t, err.Error(), "natural language API request failed")
}
