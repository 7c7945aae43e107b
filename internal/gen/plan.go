package gen

import (
	"strings"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/common"
)

// FilePlan is the fully resolved model of one generated compilation unit.
// Rendering is a pure function of it.
type FilePlan struct {
	Banner    string
	Package   string
	Class     string
	SiteURL   string
	Checked   ExceptionCategory
	Unchecked ExceptionCategory
	Types     []*SamPlan
}

// SamPlan is the resolved model of one SAM type and its three artifacts.
type SamPlan struct {
	ID         analyze.TypeID
	TypeParams []analyze.TypeParam
	Method     analyze.ResolvedMethod
	Params     []Param

	CheckedInterface string
	Adapter          string
	DirectInvoke     string

	// Instance names the checked-interface parameter of the adapter and
	// direct-invoke functions.
	Instance string
	// CatchVar names the caught exception.
	CatchVar string
}

// Qualified returns the qualified name of the SAM type.
func (p *SamPlan) Qualified() string {
	return p.ID.String()
}

// Simple returns the simple name of the SAM type.
func (p *SamPlan) Simple() string {
	return p.ID.Name
}

// DeclaredTypeParams returns the type parameter declaration, bounds
// included: "<T extends Comparable<T>>".
func (p *SamPlan) DeclaredTypeParams() string {
	return analyze.DeclareTypeParams(p.TypeParams)
}

// TypeArgs returns the type parameters as arguments: "<T, R>".
func (p *SamPlan) TypeArgs() string {
	return analyze.UseTypeParams(p.TypeParams)
}

// MethodTypeParams is DeclaredTypeParams followed by a space, or "" for a
// non-generic type. It prefixes the return type of static methods.
func (p *SamPlan) MethodTypeParams() string {
	if len(p.TypeParams) == 0 {
		return ""
	}

	return p.DeclaredTypeParams() + " "
}

// ParamDecls returns "int i, int i1".
func (p *SamPlan) ParamDecls() string {
	return strings.Join(common.Map(p.Params, func(pr Param) string {
		return pr.Type.String() + " " + pr.Name
	}), ", ")
}

// Args returns "i, i1".
func (p *SamPlan) Args() string {
	return strings.Join(common.Map(p.Params, func(pr Param) string { return pr.Name }), ", ")
}

// Return returns the resolved return type.
func (p *SamPlan) Return() string {
	return p.Method.Return.String()
}

// ReturnsValue reports whether the method returns a value.
func (p *SamPlan) ReturnsValue() bool {
	return !p.Method.Return.IsVoid()
}

// MethodName returns the name of the single abstract method.
func (p *SamPlan) MethodName() string {
	return p.Method.Name
}

// Imports lists the qualified names imported by the generated file, in
// order: checked category, unchecked category, then the SAM types.
func (f *FilePlan) Imports() []string {
	out := []string{f.Checked.Qualified(), f.Unchecked.Qualified()}
	for _, t := range f.Types {
		out = append(out, t.Qualified())
	}

	return out
}
