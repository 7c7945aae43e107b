package analyze

import (
	"fmt"

	"unchecker-generator/internal/common"
)

// TypeID uniquely identifies a type by its package and simple name.
type TypeID struct {
	Package string // e.g., "java.util.function"
	Name    string // e.g., "Function"
}

// ParseTypeID splits a qualified name at its last dot.
func ParseTypeID(qualified string) TypeID {
	return TypeID{Package: common.PackageOf(qualified), Name: common.SimpleName(qualified)}
}

// String returns the qualified name.
func (t TypeID) String() string {
	return common.Qualify(t.Package, t.Name)
}

// IsZero reports whether the ID is unset.
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

//go:generate go tool stringer -type=TypeKind -linecomment -output=kind_string.go

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota // unknown
	TypeKindInterface                 // interface
	TypeKindClass                     // class
)

// MethodInfo describes a method as declared on its type.
type MethodInfo struct {
	Name       string
	TypeParams []TypeParam // Method-level type variables, e.g. <V> in andThen.
	Params     []TypeRef   // In declaration order.
	Return     TypeRef
	Throws     []TypeRef
	Abstract   bool
	Default    bool
	Static     bool
}

// TypeInfo describes an interface or class in the type graph.
type TypeInfo struct {
	ID         TypeID
	Kind       TypeKind
	TypeParams []TypeParam
	Extends    []TypeRef // Superinterfaces, or the single superclass.
	Methods    []MethodInfo
}

// Ref returns the type applied to its own type variables: Function<T, R>.
func (t *TypeInfo) Ref() TypeRef {
	ref := TypeRef{Name: t.ID.String()}
	for _, p := range t.TypeParams {
		ref.Args = append(ref.Args, TypeRef{Name: p.Name})
	}

	return ref
}

// Roots names the types with a fixed role in the hierarchy.
type Roots struct {
	// Object is the universal root; its methods never count as abstract
	// methods of an interface.
	Object TypeID
	// Failure is the root of exceptions that must be declared.
	Failure TypeID
	// Unchecked is the root of exceptions that propagate without declaration.
	Unchecked TypeID
}

// DefaultRoots are the java.lang roots.
func DefaultRoots() Roots {
	return Roots{
		Object:    TypeID{Package: "java.lang", Name: "Object"},
		Failure:   TypeID{Package: "java.lang", Name: "Exception"},
		Unchecked: TypeID{Package: "java.lang", Name: "RuntimeException"},
	}
}

// implicitPackage is searched for unqualified names after the referring
// type's own package.
const implicitPackage = "java.lang"

// TypeGraph holds all described types.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all known types.
	Types map[TypeID]*TypeInfo
	// Packages maps package names to their package info.
	Packages map[string]*PackageInfo
	// Order lists types in the order they were added.
	Order []TypeID
	// Roots of the hierarchy.
	Roots Roots
}

// NewTypeGraph creates a new empty TypeGraph with the java.lang roots.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
		Roots:    DefaultRoots(),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// Add registers a type. Adding the same ID twice is an error.
func (g *TypeGraph) Add(info *TypeInfo) error {
	if info == nil || info.ID.IsZero() {
		return fmt.Errorf("type has no name")
	}

	if _, ok := g.Types[info.ID]; ok {
		return fmt.Errorf("type %s is already defined", info.ID)
	}

	g.Types[info.ID] = info
	g.Order = append(g.Order, info.ID)

	pkg, ok := g.Packages[info.ID.Package]
	if !ok {
		pkg = &PackageInfo{Name: info.ID.Package}
		g.Packages[info.ID.Package] = pkg
	}

	pkg.Types = append(pkg.Types, info.ID)

	return nil
}

// Merge adds every type of other, in order, to g.
func (g *TypeGraph) Merge(other *TypeGraph) error {
	for _, id := range other.Order {
		if err := g.Add(other.Types[id]); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns a graph sharing the TypeInfo values but with its own
// indexes, so types can be added without touching g.
func (g *TypeGraph) Clone() *TypeGraph {
	c := NewTypeGraph()
	c.Roots = g.Roots

	for _, id := range g.Order {
		_ = c.Add(g.Types[id])
	}

	return c
}

// Lookup resolves a type name as it would be seen from inside type from:
// qualified names first, then from's package, then java.lang.
func (g *TypeGraph) Lookup(name string, from TypeID) (*TypeInfo, bool) {
	if name == "" {
		return nil, false
	}

	if common.PackageOf(name) != "" {
		info, ok := g.Types[ParseTypeID(name)]
		return info, ok
	}

	for _, pkg := range []string{from.Package, implicitPackage} {
		if info, ok := g.Types[TypeID{Package: pkg, Name: name}]; ok {
			return info, true
		}
	}

	return nil, false
}

// PackageInfo holds information about a described package.
type PackageInfo struct {
	Name  string   // Dotted package name
	Types []TypeID // Types defined in this package, in order
}
