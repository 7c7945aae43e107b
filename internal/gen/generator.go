package gen

import (
	"bytes"
	"fmt"
	"strings"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/common"
)

// Generator renders unchecker classes for SAM types described in a type
// graph. It never mutates the graph, so one graph may back many concurrent
// generators.
type Generator struct {
	graph  *analyze.TypeGraph
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(graph *analyze.TypeGraph, config Config) *Generator {
	if config.Banner == "" {
		config.Banner = DefaultBanner
	}

	return &Generator{graph: graph, config: config}
}

// GeneratedFile represents a generated Java source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "Uncheckers.java").
	Filename string
	// Content is the Java source.
	Content []byte
}

// Generate renders the unchecker class for samTypes, in order. It returns
// a complete file or an error, never partial output.
func (g *Generator) Generate(samTypes []analyze.TypeID) (*GeneratedFile, error) {
	p, err := g.Plan(samTypes)
	if err != nil {
		return nil, err
	}

	content, err := Render(p)
	if err != nil {
		return nil, err
	}

	return &GeneratedFile{Filename: p.Class + ".java", Content: content}, nil
}

// Render executes the file template over a plan.
func Render(p *FilePlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.ExecuteTemplate(&buf, "file", p); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// Plan validates the configuration and resolves every SAM type without
// rendering.
func (g *Generator) Plan(samTypes []analyze.TypeID) (*FilePlan, error) {
	checked, unchecked, err := g.checkConfig()
	if err != nil {
		return nil, err
	}

	if err := g.checkDuplicates(samTypes, checked, unchecked); err != nil {
		return nil, err
	}

	p := &FilePlan{
		Banner:    g.config.Banner,
		Package:   g.config.Package,
		Class:     g.config.Class,
		SiteURL:   g.config.SiteURL,
		Checked:   checked,
		Unchecked: unchecked,
		Types:     make([]*SamPlan, 0, len(samTypes)),
	}

	for _, id := range samTypes {
		sp, err := g.planType(id)
		if err != nil {
			return nil, err
		}

		p.Types = append(p.Types, sp)
	}

	if err := checkArtifactNames(p); err != nil {
		return nil, err
	}

	return p, nil
}

// ExtractSam resolves a single type the way Plan does, without the
// file-level checks.
func (g *Generator) ExtractSam(id analyze.TypeID) (*SamPlan, error) {
	if g.config.Naming == nil {
		return nil, NewConfigurationError("naming", "no naming policy")
	}

	return g.planType(id)
}

func (g *Generator) checkConfig() (checked, unchecked ExceptionCategory, err error) {
	cfg := g.config

	if !common.IsQualifiedName(cfg.Package) {
		return checked, unchecked, NewConfigurationError("package",
			fmt.Sprintf("%q is not a valid package name", cfg.Package), cfg.Package)
	}

	if !common.IsIdentifier(cfg.Class) {
		return checked, unchecked, NewConfigurationError("class",
			fmt.Sprintf("%q is not a valid class name", cfg.Class), cfg.Class)
	}

	if cfg.Naming == nil {
		return checked, unchecked, NewConfigurationError("naming", "no naming policy")
	}

	if strings.ContainsAny(cfg.Banner, "\r\n") {
		return checked, unchecked, NewConfigurationError("banner", "banner must be a single line")
	}

	checked, err = g.category("checked", cfg.Checked)
	if err != nil {
		return checked, unchecked, err
	}

	unchecked, err = g.category("unchecked", cfg.Unchecked)
	if err != nil {
		return checked, unchecked, err
	}

	if unchecked.Checked {
		return checked, unchecked, NewConfigurationError("unchecked",
			fmt.Sprintf("%s is a checked exception type", unchecked.Qualified()), unchecked.Qualified())
	}

	if checked.Simple() == unchecked.Simple() {
		return checked, unchecked, NewConfigurationError("unchecked",
			fmt.Sprintf("%s and %s share the simple name %s",
				checked.Qualified(), unchecked.Qualified(), checked.Simple()),
			checked.Qualified(), unchecked.Qualified())
	}

	return checked, unchecked, nil
}

func (g *Generator) category(option string, id analyze.TypeID) (ExceptionCategory, error) {
	if id.IsZero() {
		return ExceptionCategory{}, NewConfigurationError(option, "no exception type given")
	}

	info := g.graph.GetType(id)
	if info == nil {
		return ExceptionCategory{}, NewConfigurationError(option,
			fmt.Sprintf("exception type %s is not described", id), id.String())
	}

	if info.Kind != analyze.TypeKindClass {
		return ExceptionCategory{}, NewConfigurationError(option,
			fmt.Sprintf("%s is not an exception class (kind %s)", id, info.Kind), id.String())
	}

	return ExceptionCategory{ID: id, Checked: g.graph.IsChecked(id)}, nil
}

// checkDuplicates rejects a repeated handle, then a repeated simple name,
// before any type is resolved. SAM simple names are imported next to the
// categories and live beside the enclosing class, so those clash too.
func (g *Generator) checkDuplicates(samTypes []analyze.TypeID, checked, unchecked ExceptionCategory) error {
	seen := make(map[analyze.TypeID]bool, len(samTypes))

	for _, id := range samTypes {
		if seen[id] {
			return NewConfigurationError("sam_types",
				fmt.Sprintf("the list of SAM types includes %s more than once", id), id.String())
		}

		seen[id] = true
	}

	bySimple := map[string]string{
		checked.Simple():   checked.Qualified(),
		unchecked.Simple(): unchecked.Qualified(),
	}

	for _, id := range samTypes {
		if prev, ok := bySimple[id.Name]; ok {
			return NewConfigurationError("sam_types",
				fmt.Sprintf("the list of SAM types includes more than one with simple name %s (%s and %s)",
					id.Name, prev, id),
				prev, id.String())
		}

		bySimple[id.Name] = id.String()
	}

	if q, ok := bySimple[g.config.Class]; ok {
		return NewConfigurationError("class",
			fmt.Sprintf("class name %s clashes with imported type %s", g.config.Class, q),
			g.config.Class, q)
	}

	return nil
}

func (g *Generator) planType(id analyze.TypeID) (*SamPlan, error) {
	info := g.graph.GetType(id)
	if info == nil {
		return nil, &MalformedSamTypeError{Type: id.String(), Message: "type is not described"}
	}

	if info.Kind != analyze.TypeKindInterface {
		return nil, &MalformedSamTypeError{
			Type:    id.String(),
			Message: fmt.Sprintf("%s is not an interface (kind %s)", id, info.Kind),
		}
	}

	methods, err := g.graph.AbstractMethods(id)
	if err != nil {
		return nil, &MalformedSamTypeError{Type: id.String(), Cause: err}
	}

	if len(methods) != 1 {
		names := common.Map(methods, func(m analyze.ResolvedMethod) string { return m.Name })

		return nil, &MalformedSamTypeError{
			Type:    id.String(),
			Count:   len(methods),
			Methods: names,
			Message: fmt.Sprintf("%s has %d abstract methods: %v", id, len(methods), names),
		}
	}

	m := methods[0]

	if len(m.TypeParams) > 0 {
		return nil, &MalformedSamTypeError{
			Type:    id.String(),
			Count:   1,
			Methods: []string{m.Name},
			Message: fmt.Sprintf("%s.%s declares its own type parameters %s",
				id, m.Name, analyze.DeclareTypeParams(m.TypeParams)),
		}
	}

	vars := info.TypeParams
	for _, t := range m.Throws {
		if g.graph.IsCheckedRef(t, m.DeclaredIn, vars) {
			return nil, &MalformedSamTypeError{
				Type:      id.String(),
				Count:     1,
				Methods:   []string{m.Name},
				Exception: t.String(),
				Message:   fmt.Sprintf("%s.%s already throws checked exception %s", id, m.Name, t),
			}
		}
	}

	sp := &SamPlan{
		ID:         id,
		TypeParams: info.TypeParams,
		Method:     m,
	}

	names := ParamNames(m.Params)
	taken := make(map[string]bool, len(names)+1)

	for i, t := range m.Params {
		sp.Params = append(sp.Params, Param{Type: t, Name: names[i]})
		taken[names[i]] = true
	}

	naming := g.config.Naming
	sp.CheckedInterface = naming.CheckedInterfaceName(id.Name)
	sp.Adapter = naming.AdapterName(id.Name)
	sp.DirectInvoke = naming.DirectInvokeName(id.Name)

	for _, n := range []struct{ option, name string }{
		{"naming.checked_interface", sp.CheckedInterface},
		{"naming.adapter", sp.Adapter},
		{"naming.direct_invoke", sp.DirectInvoke},
	} {
		if !common.IsIdentifier(n.name) {
			return nil, NewConfigurationError(n.option,
				fmt.Sprintf("derived name %q for %s is not a valid identifier", n.name, id), id.String(), n.name)
		}
	}

	sp.Instance = uniqueName(common.LowerFirst(sp.CheckedInterface), taken)
	taken[sp.Instance] = true
	sp.CatchVar = uniqueName("e", taken)

	return sp, nil
}

// checkArtifactNames rejects derived names that would not compile side by
// side: checked interfaces are nested types of the enclosing class, and
// the adapter and direct-invoke functions are its static methods, which may
// share a name as long as their parameter lists differ.
func checkArtifactNames(p *FilePlan) error {
	typeNames := map[string]string{p.Class: "the enclosing class"}
	for _, q := range p.Imports() {
		typeNames[common.SimpleName(q)] = "imported type " + q
	}

	for _, t := range p.Types {
		if owner, ok := typeNames[t.CheckedInterface]; ok {
			return NewConfigurationError("naming.checked_interface",
				fmt.Sprintf("checked interface name %s for %s clashes with %s", t.CheckedInterface, t.ID, owner),
				t.CheckedInterface)
		}

		typeNames[t.CheckedInterface] = "checked interface for " + t.Qualified()
	}

	methods := map[string]string{}

	for _, t := range p.Types {
		for _, n := range []struct {
			option, what, name string
			arity              int
		}{
			{"naming.adapter", "adapter", t.Adapter, 1},
			{"naming.direct_invoke", "direct-invoke method", t.DirectInvoke, 1 + len(t.Params)},
		} {
			// Overloads differ by checked interface or by arity.
			sig := fmt.Sprintf("%s(%s/%d)", n.name, t.CheckedInterface, n.arity)
			if owner, ok := methods[sig]; ok {
				return NewConfigurationError(n.option,
					fmt.Sprintf("method %s(%s) for %s has the same signature as the %s",
						n.name, t.CheckedInterface, t.ID, owner),
					n.name)
			}

			methods[sig] = n.what + " for " + t.Qualified()
		}
	}

	return nil
}
