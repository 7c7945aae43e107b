package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"unchecker-generator/internal/common"
)

// Diagnostics is the outcome of a validation pass, split by severity.
// Only Errors make the pass fail.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is one finding.
type Diagnostic struct {
	Code    string // stable identifier, e.g. "unknown_type"
	Message string
	Type    string // qualified type or target name, if any
	Member  string // method, field or config key, if any
	// Suggestions are close matches for a misspelled name.
	Suggestions []string
}

func (d *Diagnostics) AddError(code, message, typeName, member string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{code, message, typeName, member, suggestions})
}

func (d *Diagnostics) AddWarning(code, message, typeName, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{code, message, typeName, member, nil})
}

func (d *Diagnostics) AddInfo(code, message, typeName, member string) {
	d.Infos = append(d.Infos, Diagnostic{code, message, typeName, member, nil})
}

// Merge appends every finding of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

func (d Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Error joins the errors into one, or returns nil when there are none.
// Warnings and infos are left to the caller to report.
func (d Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	return errors.New(strings.Join(common.Map(d.Errors, Diagnostic.String), "; "))
}

// String renders "[Type] Member: [code] message (did you mean X?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Type != "" {
		fmt.Fprintf(&b, "[%s]", d.Type)
	}

	if d.Member != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(d.Member)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	switch len(d.Suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(&b, " (did you mean %s?)", d.Suggestions[0])
	default:
		fmt.Fprintf(&b, " (did you mean one of %s?)", strings.Join(d.Suggestions, ", "))
	}

	return b.String()
}
