package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unchecker-generator/internal/analyze"
)

func refs(ss ...string) []analyze.TypeRef {
	out := make([]analyze.TypeRef, len(ss))
	for i, s := range ss {
		out[i] = analyze.MustParseTypeRef(s)
	}

	return out
}

func TestParamNames(t *testing.T) {
	tests := []struct {
		name  string
		types []string
		want  []string
	}{
		{"repeated type then single", []string{"int", "int", "String"}, []string{"i", "i1", "s"}},
		{"single", []string{"int"}, []string{"i"}},
		{"none", nil, []string{}},
		{"three of a kind", []string{"int", "int", "int"}, []string{"i", "i1", "i2"}},
		{"different types, same candidate", []string{"int", "int", "Integer"}, []string{"i", "i1", "i2"}},
		{"type variables", []string{"T", "U"}, []string{"t", "u"}},
		{"repeated type variable", []string{"T", "T"}, []string{"t", "t1"}},
		{"acronym", []string{"URL", "java.net.URI"}, []string{"url", "uri"}},
		{"generic and array", []string{"java.util.List<T>", "long[]", "String..."}, []string{"l", "l1", "s"}},
		{"keyword candidate", []string{"IF", "DO"}, []string{"if1", "do1"}},
		{"wildcard", []string{"List<?>", "? extends Number"}, []string{"l", "n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParamNames(refs(tt.types...)))
		})
	}
}

func TestUniqueName(t *testing.T) {
	assert.Equal(t, "e", uniqueName("e", map[string]bool{"i": true}))
	assert.Equal(t, "e1", uniqueName("e", map[string]bool{"e": true}))
	assert.Equal(t, "e2", uniqueName("e", map[string]bool{"e": true, "e1": true}))
	assert.Equal(t, "int1", uniqueName("int", nil))
}
