package analyze

import (
	"fmt"
	"strings"

	"unchecker-generator/internal/common"
)

// ResolvedMethod is a method as seen from a particular type: inherited
// methods have the type arguments of the extends chain substituted in.
type ResolvedMethod struct {
	Name       string
	TypeParams []TypeParam
	Params     []TypeRef
	Return     TypeRef
	Throws     []TypeRef
	Abstract   bool
	DeclaredIn TypeID
}

// String renders "Ret name(A, B)".
func (m ResolvedMethod) String() string {
	return m.Return.String() + " " + m.Name + "(" +
		strings.Join(common.Map(m.Params, TypeRef.String), ", ") + ")"
}

// declaration is a method found while walking the hierarchy.
type declaration struct {
	key    string
	method ResolvedMethod
}

// Methods returns the instance methods visible on type id, most specific
// declaration first. A method redeclared in a subtype hides the supertype's
// declaration, so a default method overriding an inherited abstract one
// makes it non-abstract. Static methods are not inherited and are skipped.
func (g *TypeGraph) Methods(id TypeID) ([]ResolvedMethod, error) {
	root := g.Types[id]
	if root == nil {
		return nil, fmt.Errorf("type %s not found", id)
	}

	var decls []declaration

	onPath := map[TypeID]bool{}

	var walk func(info *TypeInfo, b Bindings) error

	walk = func(info *TypeInfo, b Bindings) error {
		if onPath[info.ID] {
			return fmt.Errorf("inheritance cycle through %s", info.ID)
		}

		onPath[info.ID] = true
		defer delete(onPath, info.ID)

		for _, m := range info.Methods {
			if m.Static {
				continue
			}

			rm := ResolvedMethod{
				Name:       m.Name,
				TypeParams: m.TypeParams,
				Params:     common.Map(m.Params, func(t TypeRef) TypeRef { return t.Substitute(b) }),
				Return:     m.Return.Substitute(b),
				Throws:     common.Map(m.Throws, func(t TypeRef) TypeRef { return t.Substitute(b) }),
				Abstract:   m.Abstract,
				DeclaredIn: info.ID,
			}

			vars := append(append([]TypeParam{}, root.TypeParams...), m.TypeParams...)
			decls = append(decls, declaration{key: g.erasedKey(rm.Name, rm.Params, info.ID, vars), method: rm})
		}

		for _, ext := range info.Extends {
			sup, ok := g.Lookup(ext.Name, info.ID)
			if !ok {
				continue
			}

			if err := walk(sup, supertypeBindings(sup, ext, b)); err != nil {
				return err
			}
		}

		return nil
	}

	if err := walk(root, nil); err != nil {
		return nil, err
	}

	return g.mostSpecific(decls), nil
}

// supertypeBindings binds the supertype's type variables to the arguments
// given in the extends clause, themselves resolved through b. A raw
// supertype binds each variable to its erasure.
func supertypeBindings(sup *TypeInfo, ext TypeRef, b Bindings) Bindings {
	if len(sup.TypeParams) == 0 {
		return nil
	}

	out := make(Bindings, len(sup.TypeParams))

	for i, p := range sup.TypeParams {
		switch {
		case i < len(ext.Args):
			out[p.Name] = ext.Args[i].Substitute(b)
		case len(p.Bounds) > 0:
			out[p.Name] = p.Bounds[0].Substitute(b)
		default:
			out[p.Name] = TypeRef{Name: "Object"}
		}
	}

	return out
}

// mostSpecific keeps, for each erased signature, the declarations not
// hidden by a declaration in a subtype. The order of first appearance is
// preserved.
func (g *TypeGraph) mostSpecific(decls []declaration) []ResolvedMethod {
	var (
		keys   []string
		groups = map[string][]ResolvedMethod{}
	)

	for _, d := range decls {
		if _, ok := groups[d.key]; !ok {
			keys = append(keys, d.key)
		}

		groups[d.key] = append(groups[d.key], d.method)
	}

	out := make([]ResolvedMethod, 0, len(keys))

	for _, key := range keys {
		group := groups[key]

		var visible []ResolvedMethod

		for i, m := range group {
			hidden := false

			for j, other := range group {
				if i != j && other.DeclaredIn != m.DeclaredIn && g.IsSubtype(other.DeclaredIn, m.DeclaredIn) {
					hidden = true
					break
				}
			}

			if !hidden {
				visible = append(visible, m)
			}
		}

		if len(visible) == 0 {
			visible = group
		}

		chosen := visible[0]

		for _, m := range visible {
			if !m.Abstract {
				chosen = m
				break
			}
		}

		out = append(out, chosen)
	}

	return out
}

// AbstractMethods returns the abstract methods of type id that are not
// redeclarations of a method of the universal root type.
func (g *TypeGraph) AbstractMethods(id TypeID) ([]ResolvedMethod, error) {
	methods, err := g.Methods(id)
	if err != nil {
		return nil, err
	}

	rootKeys := g.rootMethodKeys()
	vars := g.Types[id].TypeParams

	var out []ResolvedMethod

	for _, m := range methods {
		if !m.Abstract {
			continue
		}

		key := g.erasedKey(m.Name, m.Params, m.DeclaredIn, append(append([]TypeParam{}, vars...), m.TypeParams...))
		if _, ok := rootKeys[key]; ok {
			continue
		}

		out = append(out, m)
	}

	return out, nil
}

func (g *TypeGraph) rootMethodKeys() map[string]struct{} {
	keys := map[string]struct{}{}

	root := g.Types[g.Roots.Object]
	if root == nil {
		return keys
	}

	for _, m := range root.Methods {
		if m.Static {
			continue
		}

		keys[g.erasedKey(m.Name, m.Params, root.ID, m.TypeParams)] = struct{}{}
	}

	return keys
}

// erasedKey identifies a method by name and erased parameter types, so that
// overrides and root-method redeclarations compare equal regardless of how
// their types were spelled.
func (g *TypeGraph) erasedKey(name string, params []TypeRef, from TypeID, vars []TypeParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = g.erasure(p, from, vars)
	}

	return name + "(" + strings.Join(parts, ",") + ")"
}

func (g *TypeGraph) erasure(t TypeRef, from TypeID, vars []TypeParam) string {
	base := g.Roots.Object.String()
	if t.Wildcard == NotWildcard {
		base = g.eraseName(t.Name, from, vars)
	}

	return base + strings.Repeat("[]", t.Dims)
}

func (g *TypeGraph) eraseName(name string, from TypeID, vars []TypeParam) string {
	if _, ok := primitives[name]; ok {
		return name
	}

	for _, v := range vars {
		if v.Name == name {
			if len(v.Bounds) > 0 {
				return g.eraseName(v.Bounds[0].Name, from, nil)
			}

			return g.Roots.Object.String()
		}
	}

	if info, ok := g.Lookup(name, from); ok {
		return info.ID.String()
	}

	return name
}
