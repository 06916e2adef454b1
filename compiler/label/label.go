// Package label parses association labels such as "owns (N)" or
// "manager (1)" into a relation name and a multiplicity.
package label

import (
	"fmt"
	"regexp"
)

// Multiplicity is the cardinality written in an association label.
type Multiplicity uint8

const (
	// Singular is written as (1) and produces a single-valued field.
	Singular Multiplicity = iota + 1
	// Plural is written as (N) and produces a collection-valued field.
	Plural
)

// String implements fmt.Stringer.
func (m Multiplicity) String() string {
	switch m {
	case Singular:
		return "1"
	case Plural:
		return "N"
	default:
		return fmt.Sprintf("Multiplicity(%d)", m)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Multiplicity) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Pattern is the label grammar. Whitespace around the label and between the
// name and the parenthesis is optional.
const Pattern = `^\s*([A-Za-z_][A-Za-z0-9_]*)\s*\((1|N)\)\s*$`

// Expected describes the accepted label forms in diagnostics.
const Expected = "name (1) or name (N)"

// Label is a parsed association label.
type Label struct {
	Name         string
	Multiplicity Multiplicity
}

// Grammar is a compiled label grammar. It holds no mutable state and is
// safe to share.
type Grammar struct {
	re *regexp.Regexp
}

// New compiles the label grammar.
func New() *Grammar {
	return &Grammar{re: regexp.MustCompile(Pattern)}
}

// Parse matches s against the grammar. The second result is false when s is
// not a well-formed label.
func (g *Grammar) Parse(s string) (Label, bool) {
	m := g.re.FindStringSubmatch(s)
	if m == nil {
		return Label{}, false
	}
	l := Label{Name: m[1], Multiplicity: Singular}
	if m[2] == "N" {
		l.Multiplicity = Plural
	}
	return l, true
}

// Match reports whether s is a well-formed label.
func (g *Grammar) Match(s string) bool {
	return g.re.MatchString(s)
}
