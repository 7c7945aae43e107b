package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsChecked(t *testing.T) {
	g := buildGraph(t, baseSpecs()...)

	tests := []struct {
		name string
		want bool
	}{
		{"java.lang.Exception", true},
		{"java.io.IOException", true},
		{"java.lang.CloneNotSupportedException", true},
		{"java.lang.RuntimeException", false},
		{"java.io.UncheckedIOException", false},
		{"java.lang.Throwable", false},
		{"java.lang.Error", false},
		{"java.lang.Object", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsChecked(ParseTypeID(tt.name)))
		})
	}
}

func TestIsCheckedRef(t *testing.T) {
	g := buildGraph(t, baseSpecs()...)
	from := TypeID{Package: "java.io", Name: "Reader"}

	assert.True(t, g.IsCheckedRef(MustParseTypeRef("IOException"), from, nil))
	assert.False(t, g.IsCheckedRef(MustParseTypeRef("UncheckedIOException"), from, nil))
	assert.False(t, g.IsCheckedRef(MustParseTypeRef("RuntimeException"), from, nil))

	checkedVar, err := ParseTypeParam("E extends Exception")
	require.NoError(t, err)
	uncheckedVar, err := ParseTypeParam("X extends RuntimeException")
	require.NoError(t, err)

	vars := []TypeParam{checkedVar, uncheckedVar, {Name: "T"}}

	assert.True(t, g.IsCheckedRef(MustParseTypeRef("E"), from, vars))
	assert.False(t, g.IsCheckedRef(MustParseTypeRef("X"), from, vars))
	assert.True(t, g.IsCheckedRef(MustParseTypeRef("T"), from, vars), "unbounded variable")
	assert.True(t, g.IsCheckedRef(MustParseTypeRef("com.example.Missing"), from, nil), "unknown type")
}

func TestIsSubtype(t *testing.T) {
	g := buildGraph(t, baseSpecs()...)

	io := ParseTypeID("java.io.IOException")
	assert.True(t, g.IsSubtype(io, io))
	assert.True(t, g.IsSubtype(io, ParseTypeID("java.lang.Throwable")))
	assert.True(t, g.IsSubtype(io, ParseTypeID("java.lang.Object")))
	assert.False(t, g.IsSubtype(io, ParseTypeID("java.lang.RuntimeException")))
	assert.False(t, g.IsSubtype(ParseTypeID("java.lang.Exception"), io))
}

func TestFindCycle(t *testing.T) {
	t.Run("acyclic", func(t *testing.T) {
		g := buildGraph(t, baseSpecs()...)
		assert.Nil(t, g.FindCycle())
	})

	t.Run("two types", func(t *testing.T) {
		g := buildGraph(t,
			typeSpec{name: "p.A", extends: []string{"B"}},
			typeSpec{name: "p.B", extends: []string{"A"}},
		)

		assert.Equal(t, []TypeID{ParseTypeID("p.A"), ParseTypeID("p.B"), ParseTypeID("p.A")}, g.FindCycle())
	})

	t.Run("self", func(t *testing.T) {
		g := buildGraph(t, typeSpec{name: "p.Self", extends: []string{"p.Self"}})
		assert.Len(t, g.FindCycle(), 2)
	})
}

func TestTypeGraph_Lookup(t *testing.T) {
	g := buildGraph(t, append(baseSpecs(),
		typeSpec{name: "com.example.Exception", kind: TypeKindClass},
		typeSpec{name: "com.example.Task"},
	)...)

	task := ParseTypeID("com.example.Task")

	info, ok := g.Lookup("Exception", task)
	require.True(t, ok)
	assert.Equal(t, "com.example.Exception", info.ID.String(), "own package wins over java.lang")

	info, ok = g.Lookup("RuntimeException", task)
	require.True(t, ok)
	assert.Equal(t, "java.lang.RuntimeException", info.ID.String())

	info, ok = g.Lookup("java.lang.Exception", task)
	require.True(t, ok)
	assert.Equal(t, "java.lang.Exception", info.ID.String())

	_, ok = g.Lookup("IOException", task)
	assert.False(t, ok, "java.io is not implicit")
}

func TestTypeGraph_AddMergeClone(t *testing.T) {
	g := buildGraph(t, typeSpec{name: "p.A"})

	err := g.Add(&TypeInfo{ID: ParseTypeID("p.A")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")

	require.Error(t, g.Add(&TypeInfo{}))

	c := g.Clone()
	require.NoError(t, c.Add(&TypeInfo{ID: ParseTypeID("p.B")}))
	assert.Nil(t, g.GetType(ParseTypeID("p.B")), "clone must not share indexes")
	assert.Equal(t, []TypeID{ParseTypeID("p.A"), ParseTypeID("p.B")}, c.Order)
	assert.Equal(t, []TypeID{ParseTypeID("p.A"), ParseTypeID("p.B")}, c.Packages["p"].Types)

	other := buildGraph(t, typeSpec{name: "q.C"})
	require.NoError(t, g.Merge(other))
	assert.NotNil(t, g.GetType(ParseTypeID("q.C")))
	assert.Error(t, g.Merge(other))
}

func TestTypeKind_String(t *testing.T) {
	assert.Equal(t, "interface", TypeKindInterface.String())
	assert.Equal(t, "class", TypeKindClass.String())
	assert.Equal(t, "unknown", TypeKindUnknown.String())
}
