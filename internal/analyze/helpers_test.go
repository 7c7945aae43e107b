package analyze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// typeSpec is a compact way to declare types in tests.
type typeSpec struct {
	name       string
	kind       TypeKind
	typeParams []string
	extends    []string
	methods    []string
}

func buildGraph(t *testing.T, specs ...typeSpec) *TypeGraph {
	t.Helper()

	g := NewTypeGraph()

	for _, s := range specs {
		info := &TypeInfo{ID: ParseTypeID(s.name), Kind: s.kind}
		if info.Kind == TypeKindUnknown {
			info.Kind = TypeKindInterface
		}

		for _, p := range s.typeParams {
			tp, err := ParseTypeParam(p)
			require.NoError(t, err)
			info.TypeParams = append(info.TypeParams, tp)
		}

		for _, e := range s.extends {
			ref, err := ParseTypeRef(e)
			require.NoError(t, err)
			info.Extends = append(info.Extends, ref)
		}

		for _, sig := range s.methods {
			m, err := ParseSignature(sig)
			require.NoError(t, err)

			if info.Kind == TypeKindInterface && !m.Default && !m.Static {
				m.Abstract = true
			}

			info.Methods = append(info.Methods, m)
		}

		require.NoError(t, g.Add(info))
	}

	return g
}

// baseSpecs is a minimal java.lang plus a small exception hierarchy.
func baseSpecs() []typeSpec {
	return []typeSpec{
		{name: "java.lang.Object", kind: TypeKindClass, methods: []string{
			"boolean equals(Object obj)",
			"int hashCode()",
			"String toString()",
			"Class<?> getClass()",
			"Object clone() throws CloneNotSupportedException",
		}},
		{name: "java.lang.Throwable", kind: TypeKindClass, extends: []string{"Object"}},
		{name: "java.lang.Exception", kind: TypeKindClass, extends: []string{"Throwable"}},
		{name: "java.lang.Error", kind: TypeKindClass, extends: []string{"Throwable"}},
		{name: "java.lang.RuntimeException", kind: TypeKindClass, extends: []string{"Exception"}},
		{name: "java.lang.CloneNotSupportedException", kind: TypeKindClass, extends: []string{"Exception"}},
		{name: "java.io.IOException", kind: TypeKindClass, extends: []string{"java.lang.Exception"}},
		{name: "java.io.UncheckedIOException", kind: TypeKindClass, extends: []string{"java.lang.RuntimeException"}},
	}
}
