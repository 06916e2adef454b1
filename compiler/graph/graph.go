// Package graph holds the entity/relation model extracted from a diagram
// and the structural checks run on it before any code is generated.
package graph

import (
	"fmt"
)

// Kind is the kind of a relation.
type Kind uint8

const (
	// Association is a field reference from the source to the target.
	Association Kind = iota + 1
	// Specialization declares that the source extends the target.
	Specialization
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Association:
		return "ASSOCIATION"
	case Specialization:
		return "SPECIALIZATION"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entity is a diagram shape that becomes a generated class.
type Entity struct {
	// ID is the id of the source cell.
	ID string `yaml:"id"`
	// ClassName is the normalized class name. Two entities may share a
	// class name, the one written last wins.
	ClassName string `yaml:"class"`
	// Value is the cleaned display text of the shape.
	Value string `yaml:"value"`
}

// Relation is a diagram arrow between two entities.
type Relation struct {
	ID     string `yaml:"id"`
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	Kind   Kind   `yaml:"kind"`
	// Label is the cleaned arrow text, or the text of a detached edge-label
	// cell when the arrow itself carries none.
	Label string `yaml:"label,omitempty"`
}

// Graph is the run-scoped model of one diagram.
type Graph struct {
	entities  map[string]*Entity
	order     []string
	Relations []*Relation
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{entities: make(map[string]*Entity)}
}

// AddEntity adds e. An entity with the same id replaces the previous one
// but keeps its original position.
func (g *Graph) AddEntity(e *Entity) {
	if _, ok := g.entities[e.ID]; !ok {
		g.order = append(g.order, e.ID)
	}
	g.entities[e.ID] = e
}

// AddRelation appends r.
func (g *Graph) AddRelation(r *Relation) {
	g.Relations = append(g.Relations, r)
}

// Entity returns the entity with the given id.
func (g *Graph) Entity(id string) (*Entity, bool) {
	e, ok := g.entities[id]
	return e, ok
}

// ClassName returns the class name of the entity with the given id, or
// the id itself when no such entity exists.
func (g *Graph) ClassName(id string) string {
	if e, ok := g.entities[id]; ok {
		return e.ClassName
	}
	return id
}

// Entities returns all entities in document order.
func (g *Graph) Entities() []*Entity {
	nodes := make([]*Entity, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, g.entities[id])
	}
	return nodes
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	return len(g.order)
}

// Outgoing returns the relations of the given kind whose source is id, in
// relation order.
func (g *Graph) Outgoing(id string, kind Kind) []*Relation {
	var out []*Relation
	for _, r := range g.Relations {
		if r.Source == id && r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}

// Parents maps every entity to its superclass. When an entity has more than
// one outgoing specialization the last one in relation order wins.
func (g *Graph) Parents() map[string]string {
	parents := make(map[string]string)
	for _, r := range g.Relations {
		if r.Kind == Specialization {
			parents[r.Source] = r.Target
		}
	}
	return parents
}

// Snapshot is a serializable view of the graph.
type Snapshot struct {
	Entities  []*Entity   `yaml:"entities"`
	Relations []*Relation `yaml:"relations"`
}

// Snapshot returns the entities and relations in document order.
func (g *Graph) Snapshot() *Snapshot {
	return &Snapshot{Entities: g.Entities(), Relations: g.Relations}
}
