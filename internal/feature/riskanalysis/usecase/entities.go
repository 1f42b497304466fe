package usecase

import (
	"slices"
	"strings"

	"news_risk_backend/internal/feature/riskanalysis/domain/entity"
)

// BundleEntities はラベル付きスパンを組織・人物・地名に分類し、重複を除いて返します。
// それ以外のラベルは無視します。
func BundleEntities(spans []entity.Span) entity.EntityBundle {
	orgs := map[string]struct{}{}
	persons := map[string]struct{}{}
	locations := map[string]struct{}{}

	for _, s := range spans {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		switch s.Label {
		case entity.LabelOrganization:
			orgs[text] = struct{}{}
		case entity.LabelPerson:
			persons[text] = struct{}{}
		case entity.LabelLocation:
			locations[text] = struct{}{}
		}
	}

	return entity.EntityBundle{
		Organizations: sortedKeys(orgs),
		Persons:       sortedKeys(persons),
		Locations:     sortedKeys(locations),
	}
}

// sortedKeys は集合をソート済みスライスに変換します。空集合でもnilではなく空スライスを返します。
func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
