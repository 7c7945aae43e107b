package gen

import "text/template"

// view pairs a SAM type with its file for the per-type templates.
type view struct {
	F *FilePlan
	T *SamPlan
}

// fileTemplate renders a FilePlan. Each artifact has its own named
// template; "file" composes them.
var fileTemplate = template.Must(template.New("unchecker").Funcs(template.FuncMap{
	"view": func(f *FilePlan, t *SamPlan) view { return view{F: f, T: t} },
}).Parse(`
{{- define "file" -}}
{{ template "header" . }}

{{ template "classdoc" . }}
public class {{ .Class }} {
{{- range $i, $t := .Types }}
{{- if $i }}
{{ end }}
{{ template "checkedInterface" (view $ $t) }}

{{ template "adapter" (view $ $t) }}

{{ template "directInvoke" (view $ $t) }}
{{- end }}
{{ template "footer" . }}
{{- end -}}

{{- define "header" -}}
// {{ .Banner }}
package {{ .Package }};

// checked exception type
import {{ .Checked.Qualified }};

// unchecked exception type
import {{ .Unchecked.Qualified }};

// SAM types
{{- range .Types }}
import {{ .Qualified }};
{{- end }}
{{- end -}}

{{- define "classdoc" -}}
/**
 * Static helper methods which wrap and re-throw
 * {@link {{ .Checked.Qualified }} {{ .Checked.Simple }}}
 * in {@link {{ .Unchecked.Qualified }} {{ .Unchecked.Simple }}}
 * so that methods known to throw {@code {{ .Checked.Simple }}}
 * can be more easily called in functional contexts,
 * for example with {@link java.util.stream.Stream Streams}.
{{- if .SiteURL }}
 *
 * @see <a href="{{ .SiteURL }}"
 * >{{ .SiteURL }}</a>
{{- end }}
 */
{{- end -}}

{{- define "checkedInterface" }}	/**
	 * A lambda or functional interface
	 * known to throw {@code {{ .F.Checked.Simple }}}
	 * but otherwise convertible to {@code {{ .T.Simple }}}.
	 */
	@FunctionalInterface
	public interface {{ .T.CheckedInterface }}{{ .T.DeclaredTypeParams }} {
		public {{ .T.Return }} {{ .T.MethodName }}({{ .T.ParamDecls }}) throws {{ .F.Checked.Simple }};
	}
{{- end -}}

{{- define "adapter" }}	/**
	 * Decorates the given {@link {{ .T.Qualified }} {{ .T.Simple }}}-like
	 * lambda or functional interface instance
	 * with a {@code {{ .T.Simple }}} that wraps and re-throws
	 * any thrown {@code {{ .F.Checked.Simple }}}
	 * in a new {@code {{ .F.Unchecked.Simple }}}.
	 */
	public static {{ .T.MethodTypeParams }}{{ .T.Simple }}{{ .T.TypeArgs }} {{ .T.Adapter }}({{ .T.CheckedInterface }}{{ .T.TypeArgs }} {{ .T.Instance }}) {
		return ({{ .T.Args }}) -> {
			try {
				{{ if .T.ReturnsValue }}return {{ end }}{{ .T.Instance }}.{{ .T.MethodName }}({{ .T.Args }});
			} catch ({{ .F.Checked.Simple }} {{ .T.CatchVar }}) {
				throw new {{ .F.Unchecked.Simple }}({{ .T.CatchVar }});
			}
		};
	}
{{- end -}}

{{- define "directInvoke" }}	/**
	 * Calls the given {@link {{ .T.Qualified }} {{ .T.Simple }}}-like
	 * lambda or functional interface instance,
	 * wrapping and re-throwing any thrown {@code {{ .F.Checked.Simple }}}
	 * in a new {@code {{ .F.Unchecked.Simple }}}.
	 */
	public static {{ .T.MethodTypeParams }}{{ .T.Return }} {{ .T.DirectInvoke }}({{ .T.CheckedInterface }}{{ .T.TypeArgs }} {{ .T.Instance }}{{ with .T.ParamDecls }}, {{ . }}{{ end }}) {
		try {
			{{ if .T.ReturnsValue }}return {{ end }}{{ .T.Instance }}.{{ .T.MethodName }}({{ .T.Args }});
		} catch ({{ .F.Checked.Simple }} {{ .T.CatchVar }}) {
			throw new {{ .F.Unchecked.Simple }}({{ .T.CatchVar }});
		}
	}
{{- end -}}

{{- define "footer" -}}
}
{{ end -}}
`))
