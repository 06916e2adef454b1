package gen

import "text/template"

// javaTemplate renders one Java class. Output without header and package
// is byte-compatible with earlier generator versions, trailing space after
// the import included.
var javaTemplate = template.Must(template.New("java").Funcs(Funcs).Parse(
	`{{- with .Header }}{{ comment . }}

{{ end -}}
{{- with .Package }}package {{ . }};

{{ end -}}
{{- if .Class.NeedsCollection }}import java.util.*;{{ " " }}

{{ end -}}
public class {{ .Class.Name }}{{ with .Class.Superclass }} extends {{ . }}{{ end }} {
{{- range .Class.Fields }}
  private {{ if .Collection }}List<{{ .Type }}> {{ .Name }} = new ArrayList<>();{{ else }}{{ .Type }} {{ .Name }};{{ end }}
{{- end }}
}
`))

// JavaTarget renders Java classes.
type JavaTarget struct {
	// Package is written as a package clause when set.
	Package string
	// Header is written as a line comment block when set.
	Header string
	ext    string
}

// Name implements Target.
func (*JavaTarget) Name() string { return LanguageJava }

// Extension implements Target.
func (t *JavaTarget) Extension() string {
	if t.ext != "" {
		return t.ext
	}
	return "java"
}

// Render implements Target.
func (t *JavaTarget) Render(def *ClassDefinition) ([]byte, error) {
	return execute(javaTemplate, &TemplateData{Class: def, Package: t.Package, Header: t.Header})
}
