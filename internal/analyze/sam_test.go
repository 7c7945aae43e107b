package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func functionSpecs() []typeSpec {
	return append(baseSpecs(),
		typeSpec{
			name:       "java.util.function.Function",
			typeParams: []string{"T", "R"},
			methods: []string{
				"R apply(T t)",
				"default <V> Function<V, R> compose(Function<? super V, ? extends T> before)",
				"static <T> Function<T, T> identity()",
			},
		},
		typeSpec{
			name:       "java.util.function.BiFunction",
			typeParams: []string{"T", "U", "R"},
			methods:    []string{"R apply(T t, U u)"},
		},
		typeSpec{
			name:       "java.util.function.BinaryOperator",
			typeParams: []string{"T"},
			extends:    []string{"BiFunction<T, T, T>"},
			methods:    []string{"static <T> BinaryOperator<T> minBy(java.util.Comparator<? super T> comparator)"},
		},
		typeSpec{
			name:       "java.util.function.UnaryOperator",
			typeParams: []string{"T"},
			extends:    []string{"Function<T, T>"},
		},
		typeSpec{
			name:       "java.util.Comparator",
			typeParams: []string{"T"},
			methods: []string{
				"int compare(T o1, T o2)",
				"boolean equals(Object obj)",
				"default Comparator<T> reversed()",
			},
		},
	)
}

func TestAbstractMethods_Substitution(t *testing.T) {
	g := buildGraph(t, functionSpecs()...)

	t.Run("BinaryOperator", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("java.util.function.BinaryOperator"))
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, "T apply(T, T)", ms[0].String())
		assert.Equal(t, "java.util.function.BiFunction", ms[0].DeclaredIn.String())
	})

	t.Run("UnaryOperator", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("java.util.function.UnaryOperator"))
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, "T apply(T)", ms[0].String())
	})

	t.Run("Function skips default and static", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("java.util.function.Function"))
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, "R apply(T)", ms[0].String())
	})
}

func TestAbstractMethods_ExcludesObjectMethods(t *testing.T) {
	g := buildGraph(t, functionSpecs()...)

	ms, err := g.AbstractMethods(ParseTypeID("java.util.Comparator"))
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "compare", ms[0].Name)
}

func TestAbstractMethods_Overrides(t *testing.T) {
	g := buildGraph(t, append(functionSpecs(),
		typeSpec{name: "p.Base", methods: []string{"void run()", "void stop()"}},
		typeSpec{name: "p.Quiet", extends: []string{"Base"}, methods: []string{"default void stop()"}},
		typeSpec{name: "p.Silent", extends: []string{"Quiet"}, methods: []string{"default void run()"}},
		typeSpec{
			name:       "p.Narrow",
			typeParams: []string{"T"},
			extends:    []string{"java.util.function.Function<T, String>"},
			methods:    []string{"String apply(T t)"},
		},
	)...)

	t.Run("default hides inherited abstract", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("p.Quiet"))
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, "run", ms[0].Name)
	})

	t.Run("no abstract methods left", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("p.Silent"))
		require.NoError(t, err)
		assert.Empty(t, ms)
	})

	t.Run("two abstract methods", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("p.Base"))
		require.NoError(t, err)
		assert.Len(t, ms, 2)
	})

	t.Run("abstract redeclaration", func(t *testing.T) {
		ms, err := g.AbstractMethods(ParseTypeID("p.Narrow"))
		require.NoError(t, err)
		require.Len(t, ms, 1)
		assert.Equal(t, "p.Narrow", ms[0].DeclaredIn.String())
		assert.Equal(t, "String apply(T)", ms[0].String())
	})
}

func TestMethods_Errors(t *testing.T) {
	g := buildGraph(t,
		typeSpec{name: "p.A", extends: []string{"B"}, methods: []string{"void a()"}},
		typeSpec{name: "p.B", extends: []string{"A"}},
	)

	_, err := g.AbstractMethods(ParseTypeID("p.A"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")

	_, err = g.Methods(ParseTypeID("p.Missing"))
	assert.Error(t, err)
}

func TestSupertypeBindings_Raw(t *testing.T) {
	g := buildGraph(t, append(functionSpecs(),
		typeSpec{name: "p.RawFunction", extends: []string{"java.util.function.Function"}},
	)...)

	ms, err := g.AbstractMethods(ParseTypeID("p.RawFunction"))
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "Object apply(Object)", ms[0].String())
}
