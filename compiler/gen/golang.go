package gen

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultGoPackage is used when no usable package name can be derived.
const defaultGoPackage = "model"

// GoTarget renders one Go struct per class. The superclass is embedded and
// associations become exported pointer or slice fields with a json tag.
type GoTarget struct {
	// Package is the package name of the generated files.
	Package string
	// Header is added below the generated-code notice.
	Header string
	ext    string
}

// Name implements Target.
func (*GoTarget) Name() string { return LanguageGo }

// Extension implements Target.
func (t *GoTarget) Extension() string {
	if t.ext != "" {
		return t.ext
	}
	return "go"
}

// Render implements Target.
func (t *GoTarget) Render(def *ClassDefinition) ([]byte, error) {
	f := jen.NewFile(t.Package)
	f.HeaderComment("Code generated by drawgen. DO NOT EDIT.")
	if t.Header != "" {
		f.HeaderComment(t.Header)
	}

	fields := make([]jen.Code, 0, len(def.Fields)+1)
	if def.HasSuperclass() {
		fields = append(fields, jen.Id(def.Superclass))
	}
	for _, fd := range def.Fields {
		typ := jen.Id("*" + fd.Type)
		if fd.Collection {
			typ = jen.Index().Id("*" + fd.Type)
		}
		fields = append(fields, jen.Id(upperFirst(fd.Name)).Add(typ).Tag(map[string]string{
			"json": fd.Name + ",omitempty",
		}))
	}
	f.Commentf("%s is generated from the diagram entity of the same name.", def.Name)
	f.Type().Id(def.Name).Struct(fields...)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GoPackageName returns pkg when set, and otherwise derives a package name
// from the base name of the output directory.
func GoPackageName(pkg, target string) string {
	if pkg != "" {
		return pkg
	}
	if target == "" {
		return defaultGoPackage
	}
	base := cases.Lower(language.Und).String(filepath.Base(filepath.Clean(target)))
	name := strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			return r
		}
		return -1
	}, base)
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return defaultGoPackage
	}
	return name
}
