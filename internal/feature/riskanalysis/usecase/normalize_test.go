package usecase_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
	"news_risk_backend/internal/feature/riskanalysis/usecase"
)

func TestCoerceRiskScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want int
	}{
		{name: "integer number", in: json.Number("4"), want: 4},
		{name: "float string truncates", in: "3.7", want: 3},
		{name: "float number truncates", in: json.Number("2.9"), want: 2},
		{name: "integer string with spaces", in: " 2 ", want: 2},
		{name: "garbage string", in: "garbage", want: 0},
		{name: "above range clamps", in: json.Number("7"), want: 5},
		{name: "below range clamps", in: json.Number("-2"), want: 0},
		{name: "negative fraction", in: "-0.5", want: 0},
		{name: "large float clamps", in: json.Number("1e10"), want: 5},
		{name: "plain int", in: 3, want: 3},
		{name: "plain float", in: 4.99, want: 4},
		{name: "nan", in: math.NaN(), want: 0},
		{name: "infinity string", in: "inf", want: 0},
		{name: "true counts as one", in: true, want: 1},
		{name: "false counts as zero", in: false, want: 0},
		{name: "missing", in: nil, want: 0},
		{name: "object", in: map[string]any{"v": 1}, want: 0},
		{name: "array", in: []any{json.Number("3")}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := usecase.CoerceRiskScore(tt.in)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, entity.MinRiskScore)
			assert.LessOrEqual(t, got, entity.MaxRiskScore)
		})
	}
}

func TestNormalize_ExtractsEmbeddedObject(t *testing.T) {
	t.Parallel()

	raw := `Here is the result: {"summary":"x","sentiment":"Bullish","risk_type":"Credit","risk_rationale":"y","risk_score":4,"key_points":["a","b"]} Thanks!`

	out := usecase.Normalize(raw)

	fields, ok := out.(usecase.ParsedFields)
	require.True(t, ok, "expected ParsedFields, got %T", out)
	assert.Equal(t, usecase.ParsedFields{
		Summary:       "x",
		Sentiment:     "Bullish",
		RiskType:      "Credit",
		RiskRationale: "y",
		RiskScore:     4,
		KeyPoints:     []string{"a", "b"},
	}, fields)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		raw           string
		wantMalformed bool
		want          usecase.ParsedFields
	}{
		{
			name: "markdown fenced json",
			raw:  "```json\n{\"summary\":\"s\",\"sentiment\":\"Bearish\",\"risk_type\":\"Market\",\"risk_rationale\":\"r\",\"risk_score\":\"3.7\",\"key_points\":[\"k\"]}\n```",
			want: usecase.ParsedFields{
				Summary: "s", Sentiment: "Bearish", RiskType: "Market", RiskRationale: "r",
				RiskScore: 3, KeyPoints: []string{"k"},
			},
		},
		{
			name: "only risk score present",
			raw:  `{"risk_score": 2}`,
			want: usecase.ParsedFields{
				Summary: entity.NotAvailable, Sentiment: entity.NotAvailable,
				RiskType: entity.NotAvailable, RiskRationale: entity.NotAvailable,
				RiskScore: 2, KeyPoints: []string{},
			},
		},
		{
			name: "wrong shapes default independently",
			raw:  `{"summary": 12, "sentiment": "Neutral", "risk_type": null, "key_points": "not a list", "risk_score": "high"}`,
			want: usecase.ParsedFields{
				Summary: entity.NotAvailable, Sentiment: "Neutral",
				RiskType: entity.NotAvailable, RiskRationale: entity.NotAvailable,
				RiskScore: 0, KeyPoints: []string{},
			},
		},
		{
			name: "non string key points are dropped",
			raw:  `{"key_points": ["a", 1, null, "b", {"c": 1}], "risk_score": 9}`,
			want: usecase.ParsedFields{
				Summary: entity.NotAvailable, Sentiment: entity.NotAvailable,
				RiskType: entity.NotAvailable, RiskRationale: entity.NotAvailable,
				RiskScore: 5, KeyPoints: []string{"a", "b"},
			},
		},
		{
			name: "nested braces use the outermost span",
			raw:  `note {"summary": "a {b} c", "risk_score": 1} end`,
			want: usecase.ParsedFields{
				Summary: "a {b} c", Sentiment: entity.NotAvailable,
				RiskType: entity.NotAvailable, RiskRationale: entity.NotAvailable,
				RiskScore: 1, KeyPoints: []string{},
			},
		},
		{name: "plain prose", raw: "The article describes a bank fine.", wantMalformed: true},
		{name: "empty string", raw: "", wantMalformed: true},
		{name: "broken object", raw: `Result: {"summary": "x", }`, wantMalformed: true},
		{name: "two objects", raw: `{"summary":"a"} and {"summary":"b"}`, wantMalformed: true},
		{name: "array is not an object", raw: `["a", "b"]`, wantMalformed: true},
		{name: "bare number", raw: `42`, wantMalformed: true},
		{name: "closing brace before opening", raw: `} oops {`, wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := usecase.Normalize(tt.raw)

			if tt.wantMalformed {
				m, ok := out.(usecase.MalformedOutput)
				require.True(t, ok, "expected MalformedOutput, got %T", out)
				assert.Equal(t, tt.raw, m.Raw)
				assert.Error(t, m.Err)
				return
			}

			fields, ok := out.(usecase.ParsedFields)
			require.True(t, ok, "expected ParsedFields, got %T", out)
			assert.Equal(t, tt.want, fields)
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := usecase.BuildPrompt("RBI fined HDFC Bank.")

	assert.Contains(t, prompt, "Article:\nRBI fined HDFC Bank.")
	for _, key := range []string{`"summary"`, `"sentiment"`, `"risk_type"`, `"risk_rationale"`, `"risk_score"`, `"key_points"`} {
		assert.Contains(t, prompt, key)
	}
	assert.Equal(t, prompt, usecase.BuildPrompt("RBI fined HDFC Bank."))
}

func TestBundleEntities(t *testing.T) {
	t.Parallel()

	spans := []entity.Span{
		{Text: "HDFC Bank", Label: entity.LabelOrganization},
		{Text: "RBI", Label: entity.LabelOrganization},
		{Text: "HDFC Bank", Label: entity.LabelOrganization},
		{Text: "Shaktikanta Das", Label: entity.LabelPerson},
		{Text: "Mumbai", Label: entity.LabelLocation},
		{Text: " Mumbai ", Label: entity.LabelLocation},
		{Text: "₹10 crore", Label: entity.LabelOther},
		{Text: "   ", Label: entity.LabelPerson},
	}

	got := usecase.BundleEntities(spans)

	assert.Equal(t, entity.EntityBundle{
		Organizations: []string{"HDFC Bank", "RBI"},
		Persons:       []string{"Shaktikanta Das"},
		Locations:     []string{"Mumbai"},
	}, got)
}

func TestBundleEntities_EmptyInput(t *testing.T) {
	t.Parallel()

	got := usecase.BundleEntities(nil)

	assert.NotNil(t, got.Organizations)
	assert.NotNil(t, got.Persons)
	assert.NotNil(t, got.Locations)
	assert.Empty(t, got.Organizations)
}
