package usecase

import "fmt"

// AnalysisPromptTemplate はリスク分析のプロンプトテンプレートです。%sに記事本文が入ります。
const AnalysisPromptTemplate = `You are a financial analyst AI. Analyze this financial news article and return a JSON with these fields:
{
  "summary": "short 1–2 sentence summary of the key financial event",
  "sentiment": "Bearish / Bullish / Neutral",
  "risk_type": "Credit / Market / Liquidity / Operational / Regulatory / Reputational / None",
  "risk_rationale": "brief reason for the risk type chosen",
  "risk_score": 1-5,
  "key_points": ["point1", "point2", "point3"]
}

Article:
%s
`

// BuildPrompt は記事本文を埋め込んだ生成モデル向けの指示文を組み立てます。
func BuildPrompt(articleText string) string {
	return fmt.Sprintf(AnalysisPromptTemplate, articleText)
}
