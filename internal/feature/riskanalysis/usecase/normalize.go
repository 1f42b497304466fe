package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

// NormalizedOutput は生成モデル出力の正規化結果です。
// ParsedFields か MalformedOutput のどちらかになります。
type NormalizedOutput interface {
	isNormalizedOutput()
}

// ParsedFields はJSONとして解釈できた出力から読み取った6項目です。
// 欠落・型不一致の項目は項目ごとにデフォルト値になります。
type ParsedFields struct {
	Summary       string
	Sentiment     string
	RiskType      string
	RiskRationale string
	RiskScore     int
	KeyPoints     []string
}

// MalformedOutput はJSONオブジェクトを取り出せなかった出力です。
type MalformedOutput struct {
	Raw string
	Err error
}

func (ParsedFields) isNormalizedOutput()    {}
func (MalformedOutput) isNormalizedOutput() {}

// Normalize は生成モデルが返した任意の文字列を固定スキーマに変換します。
//
//  1. 最初の "{" から最後の "}" までを切り出せればそれをJSONとして解析する
//  2. 切り出せなければ文字列全体をJSONとして解析する
//  3. 解析に失敗するか結果がオブジェクトでなければ MalformedOutput を返す
func Normalize(raw string) NormalizedOutput {
	candidate := raw
	if span, ok := braceSpan(raw); ok {
		candidate = span
	}

	obj, err := decodeObject(candidate)
	if err != nil {
		return MalformedOutput{Raw: raw, Err: err}
	}

	return ParsedFields{
		Summary:       stringField(obj, "summary"),
		Sentiment:     stringField(obj, "sentiment"),
		RiskType:      stringField(obj, "risk_type"),
		RiskRationale: stringField(obj, "risk_rationale"),
		RiskScore:     CoerceRiskScore(obj["risk_score"]),
		KeyPoints:     stringListField(obj, "key_points"),
	}
}

// braceSpan は最初の "{" から最後の "}" までの部分文字列を返します。
func braceSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// decodeObject は文字列を単一のJSONオブジェクトとして解析します。数値はjson.Numberのまま保持します。
func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after json value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("json value is %T, not an object", v)
	}
	return obj, nil
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return entity.NotAvailable
}

// stringListField は配列中の文字列要素だけを順序どおりに返します。
func stringListField(obj map[string]any, key string) []string {
	items, ok := obj[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// CoerceRiskScore は任意の値を0〜5の整数スコアに変換します。
// 整数として解析できなければ浮動小数点として解析して切り捨て、それも失敗すれば0とします。
// 範囲外の値は拒否せずにクランプします。
func CoerceRiskScore(v any) int {
	switch x := v.(type) {
	case json.Number:
		return coerceScoreString(x.String())
	case string:
		return coerceScoreString(x)
	case float64:
		return scoreFromFloat(x)
	case float32:
		return scoreFromFloat(float64(x))
	case int:
		return ClampRiskScore(x)
	case int64:
		return scoreFromFloat(float64(x))
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func coerceScoreString(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ClampRiskScore(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return scoreFromFloat(f)
}

// scoreFromFloat は有限値をゼロ方向に切り捨ててクランプします。NaNと無限大は0です。
func scoreFromFloat(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	switch {
	case f >= entity.MaxRiskScore:
		return entity.MaxRiskScore
	case f <= entity.MinRiskScore:
		return entity.MinRiskScore
	}
	return int(math.Trunc(f))
}

// ClampRiskScore はスコアを[0, 5]に収めます。
func ClampRiskScore(n int) int {
	return max(entity.MinRiskScore, min(n, entity.MaxRiskScore))
}
