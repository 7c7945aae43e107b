package schema

import (
	"fmt"
	"strings"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/common"
	"unchecker-generator/internal/diagnostic"
	"unchecker-generator/internal/match"
)

// Diagnostic codes reported by Validate.
const (
	CodeMissingName        = "missing_name"
	CodeInvalidName        = "invalid_name"
	CodeDuplicateType      = "duplicate_type"
	CodeUnknownKind        = "unknown_kind"
	CodeBadTypeParam       = "bad_type_param"
	CodeBadExtends         = "bad_extends"
	CodeBadSignature       = "bad_signature"
	CodeBadModifier        = "bad_modifier"
	CodeUnknownType        = "unknown_type"
	CodeKindMismatch       = "kind_mismatch"
	CodeMultipleSuperclass = "multiple_superclasses"
	CodeInheritanceCycle   = "inheritance_cycle"
	CodeUnsupportedVersion = "unsupported_version"
)

const maxSuggestions = 3

// Validate checks descriptor files against each other and against base,
// which may be nil. The files are not modified.
func Validate(base *analyze.TypeGraph, files ...*File) diagnostic.Diagnostics {
	_, diags := compile(base, files)
	return diags
}

// Build creates a type graph from descriptor files alone.
func Build(files ...*File) (*analyze.TypeGraph, error) {
	return Extend(nil, files...)
}

// Extend creates a type graph holding the types of base followed by those
// of files. base itself is left unchanged.
func Extend(base *analyze.TypeGraph, files ...*File) (*analyze.TypeGraph, error) {
	g, diags := compile(base, files)
	if err := diags.Error(); err != nil {
		return nil, err
	}

	return g, nil
}

func compile(base *analyze.TypeGraph, files []*File) (*analyze.TypeGraph, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	g := analyze.NewTypeGraph()
	if base != nil {
		g = base.Clone()
	}

	var added []*analyze.TypeInfo

	for _, f := range files {
		if f.Version != "" && f.Version != CurrentVersion {
			diags.AddError(CodeUnsupportedVersion,
				fmt.Sprintf("unsupported descriptor version %q", f.Version), "", "version")

			continue
		}

		for i := range f.Types {
			// A type with errors still joins the graph so references
			// to it do not cascade into unknown_type reports.
			info, ok := convert(&f.Types[i], i, &diags)
			if info == nil {
				continue
			}

			if err := g.Add(info); err != nil {
				diags.AddError(CodeDuplicateType, err.Error(), info.ID.String(), "")
				continue
			}

			if ok {
				added = append(added, info)
			}
		}
	}

	r := &referenceChecker{graph: g, diags: &diags}
	for _, info := range added {
		r.check(info)
	}

	if !diags.HasErrors() {
		if cycle := g.FindCycle(); cycle != nil {
			names := common.Map(cycle, analyze.TypeID.String)
			diags.AddError(CodeInheritanceCycle,
				"inheritance cycle: "+strings.Join(names, " -> "), names[0], "extends")
		}
	}

	return g, diags
}

// convert turns a spec into a TypeInfo, reporting every problem it finds.
// It returns nil only when the descriptor has no usable name.
func convert(spec *TypeSpec, index int, diags *diagnostic.Diagnostics) (*analyze.TypeInfo, bool) {
	if spec.Name == "" {
		diags.AddError(CodeMissingName, "type has no name", "", fmt.Sprintf("types[%d]", index))
		return nil, false
	}

	if !common.IsQualifiedName(spec.Name) {
		diags.AddError(CodeInvalidName, fmt.Sprintf("%q is not a valid type name", spec.Name), spec.Name, "name")
		return nil, false
	}

	info := &analyze.TypeInfo{ID: analyze.ParseTypeID(spec.Name)}
	ok := true

	switch spec.Kind {
	case "", KindInterface:
		info.Kind = analyze.TypeKindInterface
	case KindClass:
		info.Kind = analyze.TypeKindClass
	default:
		diags.AddError(CodeUnknownKind,
			fmt.Sprintf("unknown kind %q, expected %s or %s", spec.Kind, KindInterface, KindClass),
			spec.Name, "kind")

		ok = false
	}

	for i, p := range spec.TypeParams {
		tp, err := analyze.ParseTypeParam(p)
		if err != nil {
			diags.AddError(CodeBadTypeParam, err.Error(), spec.Name, fmt.Sprintf("type_params[%d]", i))
			ok = false

			continue
		}

		info.TypeParams = append(info.TypeParams, tp)
	}

	for i, e := range spec.Extends {
		ref, err := analyze.ParseTypeRef(e)
		if err == nil && (ref.Wildcard != analyze.NotWildcard || ref.Dims > 0 || ref.IsPrimitive()) {
			err = fmt.Errorf("%q cannot be a supertype", e)
		}

		if err != nil {
			diags.AddError(CodeBadExtends, err.Error(), spec.Name, fmt.Sprintf("extends[%d]", i))
			ok = false

			continue
		}

		info.Extends = append(info.Extends, ref)
	}

	if info.Kind == analyze.TypeKindClass && len(info.Extends) > 1 {
		diags.AddError(CodeMultipleSuperclass, "a class extends at most one class", spec.Name, "extends")
		ok = false
	}

	for i := range spec.Methods {
		member := fmt.Sprintf("methods[%d]", i)

		m, err := spec.Methods[i].Method()
		if err != nil {
			diags.AddError(CodeBadSignature, err.Error(), spec.Name, member)
			ok = false

			continue
		}

		if err := checkModifiers(m, info.Kind); err != nil {
			diags.AddError(CodeBadModifier, err.Error(), spec.Name, member)
			ok = false

			continue
		}

		if info.Kind == analyze.TypeKindInterface {
			m.Abstract = !m.Default && !m.Static
		}

		info.Methods = append(info.Methods, m)
	}

	return info, ok
}

func checkModifiers(m analyze.MethodInfo, kind analyze.TypeKind) error {
	switch {
	case m.Default && m.Static:
		return fmt.Errorf("method %s cannot be both default and static", m.Name)
	case m.Abstract && (m.Default || m.Static):
		return fmt.Errorf("abstract method %s cannot have a body", m.Name)
	case m.Default && kind == analyze.TypeKindClass:
		return fmt.Errorf("default method %s is only allowed in interfaces", m.Name)
	}

	return nil
}

// referenceChecker verifies that supertypes and thrown types resolve.
type referenceChecker struct {
	graph *analyze.TypeGraph
	diags *diagnostic.Diagnostics
	known []string
}

func (r *referenceChecker) check(info *analyze.TypeInfo) {
	name := info.ID.String()

	for i, ext := range info.Extends {
		member := fmt.Sprintf("extends[%d]", i)

		sup, ok := r.graph.Lookup(ext.Name, info.ID)
		if !ok {
			r.unknown(ext.Name, name, member)
			continue
		}

		if sup.Kind != analyze.TypeKindUnknown && sup.Kind != info.Kind {
			r.diags.AddError(CodeKindMismatch,
				fmt.Sprintf("%s %s cannot extend %s %s", info.Kind, name, sup.Kind, sup.ID),
				name, member)
		}

		if n := len(sup.TypeParams); len(ext.Args) > 0 && len(ext.Args) != n {
			r.diags.AddError(CodeBadExtends,
				fmt.Sprintf("%s takes %d type arguments, got %d", sup.ID, n, len(ext.Args)),
				name, member)
		}
	}

	for i, m := range info.Methods {
		vars := append(append([]analyze.TypeParam{}, info.TypeParams...), m.TypeParams...)

		for _, t := range m.Throws {
			if isTypeVar(t, vars) {
				continue
			}

			if _, ok := r.graph.Lookup(t.Name, info.ID); !ok {
				r.unknown(t.Name, name, fmt.Sprintf("methods[%d]", i))
			}
		}
	}
}

func (r *referenceChecker) unknown(ref, typeName, member string) {
	if r.known == nil {
		r.known = common.Map(r.graph.Order, analyze.TypeID.String)
	}

	r.diags.AddError(CodeUnknownType, fmt.Sprintf("unknown type %s", ref), typeName, member,
		match.Suggest(ref, r.known, maxSuggestions)...)
}

func isTypeVar(t analyze.TypeRef, vars []analyze.TypeParam) bool {
	if len(t.Args) > 0 || t.Dims > 0 {
		return false
	}

	for _, v := range vars {
		if v.Name == t.Name {
			return true
		}
	}

	return false
}
