package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"unchecker-generator/internal/common"
)

// NamingPolicy derives the names of the three generated artifacts from a
// SAM type's simple name. Implementations must be pure.
type NamingPolicy interface {
	CheckedInterfaceName(simpleName string) string
	AdapterName(simpleName string) string
	DirectInvokeName(simpleName string) string
}

// AffixPolicy wraps the simple name in a fixed prefix and suffix per
// artifact.
type AffixPolicy struct {
	CheckedInterfacePrefix string
	CheckedInterfaceSuffix string
	AdapterPrefix          string
	AdapterSuffix          string
	DirectInvokePrefix     string
	DirectInvokeSuffix     string
}

func (p AffixPolicy) CheckedInterfaceName(simpleName string) string {
	return p.CheckedInterfacePrefix + simpleName + p.CheckedInterfaceSuffix
}

func (p AffixPolicy) AdapterName(simpleName string) string {
	return p.AdapterPrefix + simpleName + p.AdapterSuffix
}

func (p AffixPolicy) DirectInvokeName(simpleName string) string {
	return p.DirectInvokePrefix + simpleName + p.DirectInvokeSuffix
}

// FuncPolicy adapts three plain functions to a NamingPolicy.
type FuncPolicy struct {
	CheckedInterface func(string) string
	Adapter          func(string) string
	DirectInvoke     func(string) string
}

func (p FuncPolicy) CheckedInterfaceName(simpleName string) string {
	return p.CheckedInterface(simpleName)
}

func (p FuncPolicy) AdapterName(simpleName string) string {
	return p.Adapter(simpleName)
}

func (p FuncPolicy) DirectInvokeName(simpleName string) string {
	return p.DirectInvoke(simpleName)
}

// TemplatePolicy derives names from text/template strings executed with
// the simple name as dot, e.g. "Checked{{.}}" or "{{lowerFirst .}}Unchecked".
type TemplatePolicy struct {
	checkedInterface *template.Template
	adapter          *template.Template
	directInvoke     *template.Template
}

// namingFuncs are available to naming templates.
var namingFuncs = template.FuncMap{
	"lowerFirst":        common.LowerFirst,
	"upperFirst":        inflect.Capitalize,
	"camelize":          inflect.Camelize,
	"camelizeDownFirst": inflect.CamelizeDownFirst,
	"underscore":        inflect.Underscore,
	"dasherize":         inflect.Dasherize,
	"pluralize":         inflect.Pluralize,
	"singularize":       inflect.Singularize,
	"title":             func(s string) string { return cases.Title(language.English, cases.NoLower).String(s) },
	"upper":             func(s string) string { return cases.Upper(language.Und).String(s) },
	"lower":             func(s string) string { return cases.Lower(language.Und).String(s) },
	"trimPrefix":        strings.TrimPrefix,
	"trimSuffix":        strings.TrimSuffix,
	"replace":           strings.ReplaceAll,
}

// NewTemplatePolicy parses the three naming templates. Each template is
// tried once on a sample name so that execution errors surface here.
func NewTemplatePolicy(checkedInterface, adapter, directInvoke string) (*TemplatePolicy, error) {
	p := &TemplatePolicy{}

	for _, t := range []struct {
		name string
		text string
		dst  **template.Template
	}{
		{"checked_interface", checkedInterface, &p.checkedInterface},
		{"adapter", adapter, &p.adapter},
		{"direct_invoke", directInvoke, &p.directInvoke},
	} {
		if t.text == "" {
			return nil, NewConfigurationError("naming."+t.name, "naming template is empty")
		}

		tmpl, err := template.New(t.name).Option("missingkey=error").Funcs(namingFuncs).Parse(t.text)
		if err != nil {
			return nil, NewConfigurationError("naming."+t.name, fmt.Sprintf("invalid naming template: %v", err))
		}

		if _, err := execName(tmpl, "Function"); err != nil {
			return nil, NewConfigurationError("naming."+t.name, fmt.Sprintf("invalid naming template: %v", err))
		}

		*t.dst = tmpl
	}

	return p, nil
}

// MustTemplatePolicy is NewTemplatePolicy for templates known to be valid.
func MustTemplatePolicy(checkedInterface, adapter, directInvoke string) *TemplatePolicy {
	p, err := NewTemplatePolicy(checkedInterface, adapter, directInvoke)
	if err != nil {
		panic(err)
	}

	return p
}

func execName(t *template.Template, simpleName string) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, simpleName); err != nil {
		return "", err
	}

	return strings.TrimSpace(buf.String()), nil
}

// A failed execution yields "", which Generate rejects as an invalid
// identifier.
func (p *TemplatePolicy) CheckedInterfaceName(simpleName string) string {
	name, _ := execName(p.checkedInterface, simpleName)
	return name
}

func (p *TemplatePolicy) AdapterName(simpleName string) string {
	name, _ := execName(p.adapter, simpleName)
	return name
}

func (p *TemplatePolicy) DirectInvokeName(simpleName string) string {
	name, _ := execName(p.directInvoke, simpleName)
	return name
}
