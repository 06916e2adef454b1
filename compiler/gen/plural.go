package gen

import (
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/drawgen/compiler/text"
)

// Pluralizer turns a field name into its collection form.
type Pluralizer interface {
	Plural(name string) string
}

// PluralizerFunc adapts a function to Pluralizer.
type PluralizerFunc func(string) string

// Plural calls f(name).
func (f PluralizerFunc) Plural(name string) string { return f(name) }

// SimplePluralizer appends an "s" unless the name already ends with one.
var SimplePluralizer = PluralizerFunc(text.Pluralize)

// InflectPluralizer applies English inflection rules ("category" becomes
// "categories", "person" becomes "people").
var InflectPluralizer = PluralizerFunc(func(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return text.DefaultCollection
	}
	return inflect.Pluralize(name)
})

// NewPluralizer returns the pluralizer registered under name.
func NewPluralizer(name string) (Pluralizer, error) {
	switch name {
	case "", PluralizerSimple:
		return SimplePluralizer, nil
	case PluralizerInflect:
		return InflectPluralizer, nil
	default:
		return nil, NewConfigError("Pluralizer", name, "unsupported pluralizer; use simple or inflect")
	}
}
