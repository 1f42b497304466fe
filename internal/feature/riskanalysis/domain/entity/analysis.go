// Package entity はriskanalysisフィーチャーのドメインモデルを定義します。
package entity

// NotAvailable は生成モデルの出力に項目が含まれない場合に使用するセンチネル値です。
const NotAvailable = "N/A"

// センチメントの既知ラベルです。生成モデルの出力は厳密には検証しません。
const (
	SentimentBullish = "Bullish"
	SentimentBearish = "Bearish"
	SentimentNeutral = "Neutral"
)

// リスク種別の既知ラベルです。表示時の色分けにのみ使用します。
const (
	RiskCredit       = "Credit"
	RiskMarket       = "Market"
	RiskLiquidity    = "Liquidity"
	RiskOperational  = "Operational"
	RiskRegulatory   = "Regulatory"
	RiskReputational = "Reputational"
	RiskNone         = "None"
)

// スコアの範囲です。
const (
	MinRiskScore = 0
	MaxRiskScore = 5
)

// EntityBundle は記事から抽出した固有表現をカテゴリ別に保持します。
// 各スライスは重複排除済みで、順序に意味はありません。
type EntityBundle struct {
	Organizations []string `json:"organizations"`
	Persons       []string `json:"persons"`
	Locations     []string `json:"locations"`
}

// AnalysisResult は1件の記事に対するリスク評価結果です。
type AnalysisResult struct {
	Summary       string       // 記事の要約
	Sentiment     string       // Bullish / Bearish / Neutral など
	RiskType      string       // 主なリスク種別
	RiskRationale string       // リスク種別の根拠
	RiskScore     int          // 0〜5にクランプ済みのスコア
	KeyPoints     []string     // 要点（順序あり）
	Entities      EntityBundle // 抽出した固有表現
}
