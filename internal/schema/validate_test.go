package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unchecker-generator/internal/analyze"
)

const javaLang = `
types:
  - name: java.lang.Object
    kind: class
    methods:
      - boolean equals(Object obj)
      - int hashCode()
      - String toString()
  - name: java.lang.Throwable
    kind: class
    extends: Object
  - name: java.lang.Exception
    kind: class
    extends: Throwable
  - name: java.lang.RuntimeException
    kind: class
    extends: Exception
  - name: java.io.IOException
    kind: class
    extends: java.lang.Exception
`

const functions = `
types:
  - name: java.util.function.BiFunction
    type_params: [T, U, R]
    methods:
      - R apply(T t, U u)
  - name: java.util.function.BinaryOperator
    type_params: T
    extends: BiFunction<T, T, T>
    methods:
      - static <T> BinaryOperator<T> minBy(java.util.Comparator<? super T> comparator)
`

func mustParse(t *testing.T, yaml string) *File {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return f
}

func TestBuild(t *testing.T) {
	g, err := Build(mustParse(t, javaLang), mustParse(t, functions))
	require.NoError(t, err)

	op := g.GetType(analyze.ParseTypeID("java.util.function.BinaryOperator"))
	require.NotNil(t, op)
	assert.Equal(t, analyze.TypeKindInterface, op.Kind)
	require.Len(t, op.Methods, 1)
	assert.True(t, op.Methods[0].Static)
	assert.False(t, op.Methods[0].Abstract)

	apply := g.GetType(analyze.ParseTypeID("java.util.function.BiFunction")).Methods[0]
	assert.True(t, apply.Abstract, "interface methods are abstract by default")

	obj := g.GetType(analyze.ParseTypeID("java.lang.Object"))
	assert.False(t, obj.Methods[0].Abstract, "class methods are concrete by default")

	ms, err := g.AbstractMethods(op.ID)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, "T apply(T, T)", ms[0].String())

	assert.True(t, g.IsChecked(analyze.ParseTypeID("java.io.IOException")))
}

func TestExtend_LeavesBaseUntouched(t *testing.T) {
	base, err := Build(mustParse(t, javaLang))
	require.NoError(t, err)

	n := len(base.Order)

	g, err := Extend(base, mustParse(t, functions))
	require.NoError(t, err)

	assert.Len(t, base.Order, n)
	assert.Len(t, g.Order, n+2)
	assert.Nil(t, base.GetType(analyze.ParseTypeID("java.util.function.BiFunction")))
}

func TestValidate_Errors(t *testing.T) {
	base, err := Build(mustParse(t, javaLang), mustParse(t, functions))
	require.NoError(t, err)

	tests := []struct {
		name        string
		yaml        string
		code        string
		suggestions []string
	}{
		{
			name: "missing name",
			yaml: "types:\n  - kind: class\n",
			code: CodeMissingName,
		},
		{
			name: "invalid name",
			yaml: "types:\n  - name: com.example.1Bad\n",
			code: CodeInvalidName,
		},
		{
			name: "duplicate against base",
			yaml: "types:\n  - name: java.lang.Exception\n    kind: class\n",
			code: CodeDuplicateType,
		},
		{
			name: "duplicate within file",
			yaml: "types:\n  - name: p.A\n  - name: p.A\n",
			code: CodeDuplicateType,
		},
		{
			name: "unknown kind",
			yaml: "types:\n  - name: p.A\n    kind: enum\n",
			code: CodeUnknownKind,
		},
		{
			name: "bad type param",
			yaml: "types:\n  - name: p.A\n    type_params: \"T extends\"\n",
			code: CodeBadTypeParam,
		},
		{
			name: "wildcard supertype",
			yaml: "types:\n  - name: p.A\n    extends: \"? extends p.B\"\n",
			code: CodeBadExtends,
		},
		{
			name: "bad signature",
			yaml: "types:\n  - name: p.A\n    methods: [\"R apply(T\"]\n",
			code: CodeBadSignature,
		},
		{
			name: "default in class",
			yaml: "types:\n  - name: p.A\n    kind: class\n    methods: [\"default void run()\"]\n",
			code: CodeBadModifier,
		},
		{
			name: "default and static",
			yaml: "types:\n  - name: p.A\n    methods: [\"default static void run()\"]\n",
			code: CodeBadModifier,
		},
		{
			name:        "unknown supertype",
			yaml:        "types:\n  - name: p.A\n    type_params: [T]\n    extends: java.util.function.BiFuncton<T, T, T>\n",
			code:        CodeUnknownType,
			suggestions: []string{"java.util.function.BiFunction"},
		},
		{
			name:        "unknown thrown type",
			yaml:        "types:\n  - name: p.A\n    methods: [\"void run() throws IOExeption\"]\n",
			code:        CodeUnknownType,
			suggestions: []string{"java.io.IOException", "java.lang.Exception"},
		},
		{
			name: "interface extends class",
			yaml: "types:\n  - name: p.A\n    extends: java.lang.Exception\n",
			code: CodeKindMismatch,
		},
		{
			name: "wrong type argument count",
			yaml: "types:\n  - name: p.A\n    extends: java.util.function.BiFunction<String, String>\n",
			code: CodeBadExtends,
		},
		{
			name: "two superclasses",
			yaml: "types:\n  - name: p.E\n    kind: class\n    extends: [java.lang.Exception, java.lang.Throwable]\n",
			code: CodeMultipleSuperclass,
		},
		{
			name: "cycle",
			yaml: "types:\n  - name: p.A\n    extends: B\n  - name: p.B\n    extends: A\n",
			code: CodeInheritanceCycle,
		},
		{
			name: "unsupported version",
			yaml: "version: \"2\"\ntypes: []\n",
			code: CodeUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(base, mustParse(t, tt.yaml))
			require.True(t, diags.HasErrors())
			assert.Equal(t, tt.code, diags.Errors[0].Code, diags.Error())

			if tt.suggestions != nil {
				assert.Equal(t, tt.suggestions, diags.Errors[0].Suggestions)
			}

			_, err := Extend(base, mustParse(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestValidate_TypeVariableThrows(t *testing.T) {
	base, err := Build(mustParse(t, javaLang))
	require.NoError(t, err)

	diags := Validate(base, mustParse(t, `
types:
  - name: p.ThrowingSupplier
    type_params: [T, "E extends Exception"]
    methods:
      - T get() throws E
      - <X extends Throwable> void fail() throws X
`))
	assert.False(t, diags.HasErrors(), diags.Error())
}

func TestValidate_BrokenTypeDoesNotCascade(t *testing.T) {
	diags := Validate(nil, mustParse(t, `
types:
  - name: p.A
    methods: ["R apply(T"]
  - name: p.B
    extends: A
`))
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, CodeBadSignature, diags.Errors[0].Code)
}
