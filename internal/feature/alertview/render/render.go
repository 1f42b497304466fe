// Package render はリスク評価結果を端末向けに整形して出力します。
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"news_risk_backend/internal/api"
	"news_risk_backend/internal/feature/alertview/adapters/backend"
)

// スコアバーのセル数です。
const scoreCells = 5

// ScoreLegend はスコア欄の凡例です。
const ScoreLegend = "🟢 1–2 = Low | 🟡 3 = Moderate | 🔴 4–5 = High"

// NoKeyPoints はキーポイントが空の場合の表示です。
const NoKeyPoints = "No key points provided."

// EmptyTextWarning は入力が空の場合にリクエスト前に表示する警告です。
const EmptyTextWarning = "⚠️ Please enter some article text before analyzing."

// Style は表示色と絵文字の組です。
type Style struct {
	Label string
	Emoji string
	Color color.Attribute
}

// riskTypeColors はリスク種別（小文字）ごとの表示色です。未知の値はグレーです。
var riskTypeColors = map[string]color.Attribute{
	"regulatory":  color.FgHiYellow, // orange
	"credit":      color.FgRed,
	"market":      color.FgYellow, // gold
	"operational": color.FgMagenta,
	"liquidity":   color.FgBlue,
}

// SentimentStyle はセンチメントの表示スタイルを返します。ラベルは先頭のみ大文字化します。
func SentimentStyle(sentiment string) Style {
	label := capitalize(sentiment)
	switch label {
	case "Bullish":
		return Style{Label: label, Emoji: "🟩", Color: color.FgGreen}
	case "Bearish":
		return Style{Label: label, Emoji: "🟥", Color: color.FgRed}
	default:
		return Style{Label: label, Emoji: "⬜", Color: color.FgHiBlack}
	}
}

// RiskTypeStyle はリスク種別の表示スタイルを返します。ラベルは受け取った値のままです。
func RiskTypeStyle(riskType string) Style {
	key := strings.ToLower(riskType)
	s := Style{Label: riskType, Emoji: "⚪", Color: color.FgHiBlack}
	if c, ok := riskTypeColors[key]; ok {
		s.Color = c
	}
	if key == "regulatory" {
		s.Emoji = "🟠"
	}
	return s
}

// ScoreStyle はスコアを0〜5に丸め、リスク水準のスタイルと丸めたスコアを返します。
func ScoreStyle(score int) (Style, int) {
	score = max(0, min(score, scoreCells))
	switch {
	case score <= 2:
		return Style{Label: "Low Risk", Emoji: "🟢", Color: color.FgGreen}, score
	case score == 3:
		return Style{Label: "Moderate Risk", Emoji: "🟡", Color: color.FgHiYellow}, score
	default:
		return Style{Label: "High Risk", Emoji: "🔴", Color: color.FgRed}, score
	}
}

// ScoreBar はスコアを5セルのバーで表します。
func ScoreBar(score int) string {
	score = max(0, min(score, scoreCells))
	return strings.Repeat("█", score) + strings.Repeat("░", scoreCells-score)
}

// Renderer は評価結果を書き出します。
type Renderer struct {
	colorize bool
}

// NewRenderer はRendererを生成します。colorizeがfalseの場合はANSIエスケープを出力しません。
func NewRenderer(colorize bool) *Renderer {
	return &Renderer{colorize: colorize}
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (r *Renderer) section(w io.Writer, emoji, title string) {
	fmt.Fprintln(w)
	r.paint(color.Bold).Fprintf(w, "%s %s\n", emoji, title)
}

// Render は各セクションを順に出力します。
func (r *Renderer) Render(w io.Writer, res *api.AnalysisResponse) error {
	r.section(w, "🧾", "Summary")
	fmt.Fprintln(w, res.Summary)

	r.section(w, "📈", "Sentiment")
	s := SentimentStyle(res.Sentiment)
	r.paint(s.Color, color.Bold).Fprintf(w, "%s %s\n", s.Emoji, s.Label)

	r.section(w, "⚠️", "Primary Risk Type")
	rt := RiskTypeStyle(res.RiskType)
	r.paint(rt.Color, color.Bold).Fprintf(w, "%s %s\n", rt.Emoji, rt.Label)

	r.section(w, "🧠", "Risk Rationale")
	fmt.Fprintln(w, res.RiskRationale)

	r.section(w, "⭐", "Risk Score (1–5)")
	lvl, score := ScoreStyle(res.RiskScore)
	fmt.Fprintf(w, "[%s]\n", ScoreBar(score))
	r.paint(lvl.Color, color.Bold).Fprintf(w, "%d / 5 — %s %s\n", score, lvl.Emoji, lvl.Label)
	r.paint(color.Faint).Fprintln(w, ScoreLegend)

	r.section(w, "📋", "Key Points")
	if len(res.KeyPoints) == 0 {
		fmt.Fprintln(w, NoKeyPoints)
	}
	for _, p := range res.KeyPoints {
		fmt.Fprintf(w, "• %s\n", p)
	}

	r.section(w, "🏢", "Extracted Entities")
	ents, err := entitiesJSON(res.Entities)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, ents)
	return err
}

// RenderError はバックエンドのエラーまたは通信エラーを出力します。
func (r *Renderer) RenderError(w io.Writer, err error) {
	var se *backend.StatusError
	if errors.As(err, &se) {
		r.paint(color.FgRed).Fprintf(w, "Backend Error: %d - %s\n", se.Code, se.Body)
		return
	}
	r.paint(color.FgRed).Fprintf(w, "An error occurred: %v\n", err)
}

// RenderEmptyWarning は入力が空の場合の警告を出力します。
func (r *Renderer) RenderEmptyWarning(w io.Writer) {
	r.paint(color.FgYellow).Fprintln(w, EmptyTextWarning)
}

// entitiesJSON はレスポンスと同じキー順で2スペースインデントのJSONを返します。
func entitiesJSON(e api.EntityBundle) (string, error) {
	ordered := struct {
		Organizations []string `json:"organizations"`
		Persons       []string `json:"persons"`
		Locations     []string `json:"locations"`
	}{
		Organizations: nonNil(e.Organizations),
		Persons:       nonNil(e.Persons),
		Locations:     nonNil(e.Locations),
	}
	b, err := json.MarshalIndent(ordered, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// capitalize は先頭の1文字を大文字、残りを小文字にします。
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}
