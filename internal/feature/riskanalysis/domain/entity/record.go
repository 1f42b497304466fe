package entity

import "time"

// AnalysisRecord は保存済みの分析履歴1件を表します。
type AnalysisRecord struct {
	ID            uint
	ArticleDigest string // 記事本文のBLAKE2b-256ダイジェスト（16進）
	ArticleText   string
	Result        AnalysisResult
	CreatedAt     time.Time
}
