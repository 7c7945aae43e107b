package match

import (
	"cmp"
	"slices"
	"strings"

	"unchecker-generator/internal/common"
)

// MinSuggestionScore is the normalized similarity a known name needs to be
// offered as a suggestion.
const MinSuggestionScore = 0.6

// Suggestion is a known name ranked against an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every known name against name, best first, dropping those
// below MinSuggestionScore. Only simple names are compared, so "Fuction"
// finds "java.util.function.Function" and a shared package prefix does not
// make unrelated names look alike.
func Rank(name string, known []string) []Suggestion {
	simple := common.SimpleName(name)

	var out []Suggestion

	for _, k := range known {
		if k == name {
			continue
		}

		score := NormalizedLevenshteinScore(simple, common.SimpleName(k))
		if score >= MinSuggestionScore {
			out = append(out, Suggestion{Name: k, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Suggest returns up to limit known names close to name, best first.
// A limit of zero or less means no limit.
func Suggest(name string, known []string, limit int) []string {
	ranked := Rank(name, known)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return common.Map(ranked, func(s Suggestion) string { return s.Name })
}
