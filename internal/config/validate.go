package config

import (
	"fmt"
	"strings"

	"unchecker-generator/internal/common"
	"unchecker-generator/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeMissingField  = "missing_field"
	CodeInvalidName   = "invalid_name"
	CodeMissingOutput = "missing_output"
	CodeDuplicateOut  = "duplicate_output"
	CodeSiteURL       = "site_url_scheme"
	CodeDefaultTypes  = "default_sam_types"
	CodeEmptyBatch    = "empty_batch"
)

// Validate checks a resolved target. Type names are only checked for
// syntax here; whether they exist is decided against the type graph when
// the job is built.
func (t *Target) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	name := t.DisplayName()

	required := []struct{ key, value string }{
		{"package", t.Package},
		{"class", t.Class},
		{"checked", t.Checked},
		{"unchecked", t.Unchecked},
		{"naming.checked_interface", t.Naming.CheckedInterface},
		{"naming.adapter", t.Naming.Adapter},
		{"naming.direct_invoke", t.Naming.DirectInvoke},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			diags.AddError(CodeMissingField, r.key+" is required", name, r.key)
		}
	}

	if t.Package != "" && !common.IsQualifiedName(t.Package) {
		diags.AddError(CodeInvalidName, fmt.Sprintf("%q is not a valid package name", t.Package), name, "package")
	}

	if t.Class != "" && !common.IsIdentifier(t.Class) {
		diags.AddError(CodeInvalidName, fmt.Sprintf("%q is not a valid class name", t.Class), name, "class")
	}

	for _, kv := range []struct{ key, value string }{{"checked", t.Checked}, {"unchecked", t.Unchecked}} {
		if kv.value != "" && !common.IsQualifiedName(kv.value) {
			diags.AddError(CodeInvalidName, fmt.Sprintf("%q is not a valid type name", kv.value), name, kv.key)
		}
	}

	for i, s := range t.SamTypes {
		if !common.IsQualifiedName(s) {
			diags.AddError(CodeInvalidName, fmt.Sprintf("%q is not a valid type name", s), name,
				fmt.Sprintf("sam_types[%d]", i))
		}
	}

	if t.SiteURL != "" && !strings.HasPrefix(t.SiteURL, "http://") && !strings.HasPrefix(t.SiteURL, "https://") {
		diags.AddWarning(CodeSiteURL, fmt.Sprintf("site_url %q is not an http(s) URL", t.SiteURL), name, "site_url")
	}

	if t.SamTypes == nil {
		diags.AddInfo(CodeDefaultTypes, "sam_types not set; using the standard SAM types", name, "sam_types")
	}

	return diags
}

// Validate checks every target of a resolved batch. Targets must name
// distinct outputs.
func (b *Batch) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if len(b.Targets) == 0 {
		diags.AddError(CodeEmptyBatch, "batch has no targets", "", "targets")
	}

	outputs := map[string]string{}

	for i := range b.Targets {
		t := &b.Targets[i]
		diags.Merge(t.Validate())

		if t.Output == "" {
			diags.AddError(CodeMissingOutput, "output is required in a batch", t.DisplayName(), "output")
			continue
		}

		out := t.resolvePath(t.Output)
		if prev, ok := outputs[out]; ok {
			diags.AddError(CodeDuplicateOut, fmt.Sprintf("output %s is also written by %s", out, prev),
				t.DisplayName(), "output")
		}

		outputs[out] = t.DisplayName()
	}

	return diags
}
