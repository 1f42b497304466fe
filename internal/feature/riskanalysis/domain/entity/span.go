package entity

// SpanLabel は固有表現認識モデルが付与するラベルです。
type SpanLabel string

const (
	LabelOrganization SpanLabel = "ORG"
	LabelPerson       SpanLabel = "PERSON"
	LabelLocation     SpanLabel = "GPE"
	LabelOther        SpanLabel = "OTHER"
)

// Span は固有表現認識モデルが返すラベル付きの文字列です。
type Span struct {
	Text  string
	Label SpanLabel
}
