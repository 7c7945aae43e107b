package analyze

// supertypes returns the direct supertypes of info that are present in the
// graph, in declaration order.
func (g *TypeGraph) supertypes(info *TypeInfo) []*TypeInfo {
	var out []*TypeInfo

	for _, ext := range info.Extends {
		if sup, ok := g.Lookup(ext.Name, info.ID); ok {
			out = append(out, sup)
		}
	}

	return out
}

// IsSubtype reports whether sub is sup or inherits from it, directly or
// transitively.
func (g *TypeGraph) IsSubtype(sub, sup TypeID) bool {
	if sub == sup {
		return true
	}

	visited := map[TypeID]bool{}
	stack := []TypeID{sub}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[id] {
			continue
		}

		visited[id] = true

		info := g.Types[id]
		if info == nil {
			continue
		}

		for _, s := range g.supertypes(info) {
			if s.ID == sup {
				return true
			}

			stack = append(stack, s.ID)
		}
	}

	return false
}

// IsChecked reports whether id names a checked exception: a subtype of the
// failure root that is not a subtype of the unchecked root.
func (g *TypeGraph) IsChecked(id TypeID) bool {
	return g.IsSubtype(id, g.Roots.Failure) && !g.IsSubtype(id, g.Roots.Unchecked)
}

// IsCheckedRef classifies a thrown type as seen from type from. Type
// variables are classified by their first bound; an unbounded variable or a
// name missing from the graph could stand for any exception and counts as
// checked.
func (g *TypeGraph) IsCheckedRef(t TypeRef, from TypeID, vars []TypeParam) bool {
	for _, v := range vars {
		if v.Name != t.Name || len(t.Args) > 0 {
			continue
		}

		if len(v.Bounds) == 0 {
			return true
		}

		return g.IsCheckedRef(v.Bounds[0], from, nil)
	}

	info, ok := g.Lookup(t.Name, from)
	if !ok {
		return true
	}

	return g.IsChecked(info.ID)
}

// FindCycle returns the types forming an inheritance cycle, starting and
// ending with the same type, or nil if the graph is acyclic.
func (g *TypeGraph) FindCycle() []TypeID {
	const (
		unvisited = iota
		active
		done
	)

	state := make(map[TypeID]int, len(g.Types))

	var (
		path  []TypeID
		visit func(id TypeID) []TypeID
	)

	visit = func(id TypeID) []TypeID {
		switch state[id] {
		case done:
			return nil
		case active:
			for i, p := range path {
				if p == id {
					return append(append([]TypeID{}, path[i:]...), id)
				}
			}
		}

		state[id] = active
		path = append(path, id)

		for _, s := range g.supertypes(g.Types[id]) {
			if cycle := visit(s.ID); cycle != nil {
				return cycle
			}
		}

		path = path[:len(path)-1]
		state[id] = done

		return nil
	}

	for _, id := range g.Order {
		if cycle := visit(id); cycle != nil {
			return cycle
		}
	}

	return nil
}
