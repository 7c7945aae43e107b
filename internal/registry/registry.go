// Package registry provides the embedded catalog of standard Java types and
// resolves user-supplied type names against a type graph.
package registry

import (
	_ "embed"
	"fmt"
	"sync"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/common"
	"unchecker-generator/internal/diagnostic"
	"unchecker-generator/internal/match"
	"unchecker-generator/internal/schema"
)

//go:embed catalog/java.yaml
var javaCatalog []byte

// StandardSamTypes is the default ordered list of SAM types to generate
// for: Runnable, Comparator, then every java.util.function type.
var StandardSamTypes = []string{
	"java.lang.Runnable",
	"java.util.Comparator",
	"java.util.function.BiConsumer",
	"java.util.function.BiFunction",
	"java.util.function.BiPredicate",
	"java.util.function.BinaryOperator",
	"java.util.function.BooleanSupplier",
	"java.util.function.Consumer",
	"java.util.function.DoubleBinaryOperator",
	"java.util.function.DoubleConsumer",
	"java.util.function.DoubleFunction",
	"java.util.function.DoublePredicate",
	"java.util.function.DoubleSupplier",
	"java.util.function.DoubleToIntFunction",
	"java.util.function.DoubleToLongFunction",
	"java.util.function.DoubleUnaryOperator",
	"java.util.function.Function",
	"java.util.function.IntBinaryOperator",
	"java.util.function.IntConsumer",
	"java.util.function.IntFunction",
	"java.util.function.IntPredicate",
	"java.util.function.IntSupplier",
	"java.util.function.IntToDoubleFunction",
	"java.util.function.IntToLongFunction",
	"java.util.function.IntUnaryOperator",
	"java.util.function.LongBinaryOperator",
	"java.util.function.LongConsumer",
	"java.util.function.LongFunction",
	"java.util.function.LongPredicate",
	"java.util.function.LongSupplier",
	"java.util.function.LongToDoubleFunction",
	"java.util.function.LongToIntFunction",
	"java.util.function.LongUnaryOperator",
	"java.util.function.ObjDoubleConsumer",
	"java.util.function.ObjIntConsumer",
	"java.util.function.ObjLongConsumer",
	"java.util.function.Predicate",
	"java.util.function.Supplier",
	"java.util.function.ToDoubleBiFunction",
	"java.util.function.ToDoubleFunction",
	"java.util.function.ToIntBiFunction",
	"java.util.function.ToIntFunction",
	"java.util.function.ToLongBiFunction",
	"java.util.function.ToLongFunction",
	"java.util.function.UnaryOperator",
}

var standard = sync.OnceValues(func() (*analyze.TypeGraph, error) {
	f, err := schema.Parse(javaCatalog)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}

	g, err := schema.Build(f)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}

	return g, nil
})

// Standard returns the graph of the embedded catalog. The graph is built
// once and shared; callers must not modify it. Use Load to add types.
func Standard() (*analyze.TypeGraph, error) {
	return standard()
}

// Load returns the standard graph extended with the types of the given
// descriptor files, in order.
func Load(paths ...string) (*analyze.TypeGraph, error) {
	base, err := Standard()
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return base, nil
	}

	files := make([]*schema.File, 0, len(paths))

	for _, p := range paths {
		f, err := schema.LoadFile(p)
		if err != nil {
			return nil, err
		}

		files = append(files, f)
	}

	g, err := schema.Extend(base, files...)
	if err != nil {
		return nil, fmt.Errorf("invalid type descriptors: %w", err)
	}

	return g, nil
}

// Diagnostic codes reported by Resolve.
const (
	CodeUnknownType   = "unknown_type"
	CodeAmbiguousType = "ambiguous_type"
)

// Resolve maps type names to IDs, preserving order and repetitions. A
// qualified name must match exactly; a simple name must match exactly one
// type of the graph.
func Resolve(g *analyze.TypeGraph, names []string) ([]analyze.TypeID, error) {
	var (
		diags diagnostic.Diagnostics
		known []string
		out   = make([]analyze.TypeID, 0, len(names))
	)

	bySimple := map[string][]analyze.TypeID{}
	for _, id := range g.Order {
		bySimple[id.Name] = append(bySimple[id.Name], id)
	}

	for _, name := range names {
		var matches []analyze.TypeID

		if common.PackageOf(name) != "" {
			if id := analyze.ParseTypeID(name); g.GetType(id) != nil {
				matches = []analyze.TypeID{id}
			}
		} else {
			matches = bySimple[name]
		}

		switch len(matches) {
		case 1:
			out = append(out, matches[0])
		case 0:
			if known == nil {
				known = common.Map(g.Order, analyze.TypeID.String)
			}

			diags.AddError(CodeUnknownType, "unknown type "+name, name, "",
				match.Suggest(name, known, 3)...)
		default:
			diags.AddError(CodeAmbiguousType, "ambiguous type "+name, name, "",
				common.Map(matches, analyze.TypeID.String)...)
		}
	}

	if err := diags.Error(); err != nil {
		return nil, err
	}

	return out, nil
}
