package gen

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// TemplateTarget renders classes with a user-supplied text/template. The
// template is executed with a *TemplateData and may use Funcs.
type TemplateTarget struct {
	tmpl   *template.Template
	ext    string
	pkg    string
	header string
}

// NewTemplateTarget parses the template at path.
func NewTemplateTarget(path, ext, pkg, header string) (*TemplateTarget, error) {
	if path == "" {
		return nil, NewConfigError("TemplateFile", nil, "the template language requires a template file")
	}
	if ext == "" {
		return nil, NewConfigError("Extension", nil, "the template language requires a file extension")
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigError("TemplateFile", path, err.Error())
	}
	return ParseTemplateTarget(filepath.Base(path), string(buf), ext, pkg, header)
}

// ParseTemplateTarget parses a template from its source text.
func ParseTemplateTarget(name, src, ext, pkg, header string) (*TemplateTarget, error) {
	tmpl, err := template.New(name).Funcs(Funcs).Parse(src)
	if err != nil {
		return nil, NewConfigError("TemplateFile", name, err.Error())
	}
	return &TemplateTarget{tmpl: tmpl, ext: strings.TrimPrefix(ext, "."), pkg: pkg, header: header}, nil
}

// Name implements Target.
func (*TemplateTarget) Name() string { return LanguageTemplate }

// Extension implements Target.
func (t *TemplateTarget) Extension() string { return t.ext }

// Render implements Target.
func (t *TemplateTarget) Render(def *ClassDefinition) ([]byte, error) {
	return execute(t.tmpl, &TemplateData{Class: def, Package: t.pkg, Header: t.header})
}
