package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var knownTypes = []string{
	"java.lang.Runnable",
	"java.util.function.BiFunction",
	"java.util.function.Function",
	"java.util.function.IntSupplier",
	"java.util.function.Supplier",
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  []string
	}{
		{
			name:  "simple name against qualified",
			input: "Fuction",
			want:  []string{"java.util.function.Function", "java.util.function.BiFunction"},
		},
		{
			name:  "limit",
			input: "Fuction",
			limit: 1,
			want:  []string{"java.util.function.Function"},
		},
		{
			name:  "qualified input",
			input: "java.util.function.Suplier",
			want:  []string{"java.util.function.Supplier", "java.util.function.IntSupplier"},
		},
		{
			name:  "nothing close",
			input: "Comparator",
			want:  nil,
		},
		{
			name:  "exact match is not a suggestion",
			input: "java.lang.Runnable",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, knownTypes, tt.limit))
		})
	}
}

func TestRank_Ordering(t *testing.T) {
	ranked := Rank("Supplier", []string{"p.IntSupplier", "q.Supplier", "p.Supplier"})

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}

	// Equal scores fall back to name order.
	assert.Equal(t, []string{"p.Supplier", "q.Supplier", "p.IntSupplier"}, names)
	assert.InDelta(t, 1.0, ranked[0].Score, 0.001)
}
