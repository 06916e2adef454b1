package gen

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/syssam/drawgen/compiler/text"
)

// Target renders class definitions in one output language.
type Target interface {
	// Name is the language name.
	Name() string
	// Extension is the file extension, without the dot.
	Extension() string
	// Render returns the file content for one class.
	Render(def *ClassDefinition) ([]byte, error)
}

// NewTarget returns the target selected by cfg.
func NewTarget(cfg *Config) (Target, error) {
	switch cfg.Language {
	case "", LanguageJava:
		return &JavaTarget{Package: cfg.Package, Header: cfg.Header, ext: cfg.Extension}, nil
	case LanguageGo:
		return &GoTarget{Package: GoPackageName(cfg.Package, cfg.Target), Header: cfg.Header, ext: cfg.Extension}, nil
	case LanguageTemplate:
		return NewTemplateTarget(cfg.TemplateFile, cfg.Extension, cfg.Package, cfg.Header)
	default:
		return nil, NewConfigError("Language", cfg.Language, "unsupported language; use java, go, or template")
	}
}

// TemplateData is passed to class templates.
type TemplateData struct {
	Class   *ClassDefinition
	Package string
	Header  string
}

// Funcs are available in class templates.
var Funcs = template.FuncMap{
	"comment":    comment,
	"lowerFirst": text.LowerFirst,
	"upperFirst": upperFirst,
	"pluralize":  text.Pluralize,
	"join":       strings.Join,
}

// comment turns s into a block of // line comments.
func comment(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight("// "+l, " ")
	}
	return strings.Join(lines, "\n")
}

// upperFirst capitalizes the first letter of a string.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func execute(t *template.Template, data *TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
