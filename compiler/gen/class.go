package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/drawgen/compiler/graph"
	"github.com/syssam/drawgen/compiler/label"
	"github.com/syssam/drawgen/compiler/text"
)

// relationHas is the relation name that derives the field name from the
// target class.
const relationHas = "has"

type (
	// ClassDefinition is the language-neutral description of one generated
	// class.
	ClassDefinition struct {
		// Name is the class name.
		Name string
		// Superclass is the name of the extended class, or "".
		Superclass string
		// Fields in relation order. Duplicate names are kept.
		Fields []*Field
		// NeedsCollection is set when any field is a collection.
		NeedsCollection bool
	}

	// Field is a field derived from an association.
	Field struct {
		// Name of the field.
		Name string
		// Type is the class name of the association target.
		Type string
		// Collection marks fields derived from (N) associations.
		Collection bool
	}
)

// HasSuperclass reports whether the class extends another class.
func (c *ClassDefinition) HasSuperclass() bool {
	return c.Superclass != ""
}

// Resolve derives a class definition for every entity of a validated graph,
// in document order.
//
// The superclass is the target of the last specialization leaving the
// entity. Every association leaving the entity becomes a field: an
// association named "has" is named after the target class, any other uses
// its relation name; (N) associations become pluralized collections.
func Resolve(g *graph.Graph, grammar *label.Grammar, plural Pluralizer) ([]*ClassDefinition, error) {
	if plural == nil {
		plural = SimplePluralizer
	}
	defs := make([]*ClassDefinition, 0, g.Len())
	for _, e := range g.Entities() {
		def := &ClassDefinition{Name: e.ClassName}
		for _, r := range g.Outgoing(e.ID, graph.Specialization) {
			def.Superclass = g.ClassName(r.Target)
		}
		for _, r := range g.Outgoing(e.ID, graph.Association) {
			l, ok := grammar.Parse(r.Label)
			if !ok {
				msg := fmt.Sprintf("bad association label %q on edge %s (expected: %s)", r.Label, r.ID, label.Expected)
				return nil, NewGenerationError("resolve", e.ClassName, "", msg, nil)
			}
			target := g.ClassName(r.Target)
			f := &Field{Name: l.Name, Type: target}
			if strings.EqualFold(l.Name, relationHas) {
				f.Name = text.LowerFirst(target)
			}
			if l.Multiplicity == label.Plural {
				f.Name = plural.Plural(f.Name)
				f.Collection = true
				def.NeedsCollection = true
			}
			def.Fields = append(def.Fields, f)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
