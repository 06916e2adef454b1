package graph

import (
	"log/slog"

	"github.com/syssam/drawgen/compiler/label"
)

// Validate checks g and returns the first violation as a *ValidationError.
// Each relation is checked for connectivity and then, for associations,
// label well-formedness; specialization cycles are checked last.
func Validate(g *Graph, grammar *label.Grammar) error {
	for _, r := range g.Relations {
		if err := checkEndpoints(g, r); err != nil {
			return err
		}
		if r.Kind != Association {
			continue
		}
		if err := checkLabel(g, r, grammar); err != nil {
			return err
		}
	}
	if err := checkAcyclic(g); err != nil {
		return err
	}
	slog.Debug("graph validated", "entities", g.Len(), "relations", len(g.Relations))
	return nil
}

func checkEndpoints(g *Graph, r *Relation) error {
	var unresolved []string
	for _, id := range []string{r.Source, r.Target} {
		if _, ok := g.Entity(id); !ok {
			unresolved = append(unresolved, id)
		}
	}
	if len(unresolved) == 0 {
		return nil
	}
	return &ValidationError{
		Violation:  DanglingRelation,
		Relation:   r.ID,
		Source:     g.ClassName(r.Source),
		Target:     g.ClassName(r.Target),
		Unresolved: unresolved,
	}
}

func checkLabel(g *Graph, r *Relation, grammar *label.Grammar) error {
	err := &ValidationError{
		Relation: r.ID,
		Source:   g.ClassName(r.Source),
		Target:   g.ClassName(r.Target),
		Label:    r.Label,
	}
	switch {
	case r.Label == "":
		err.Violation = MissingAssociationLabel
	case !grammar.Match(r.Label):
		err.Violation = MalformedAssociationLabel
	default:
		return nil
	}
	return err
}

func checkAcyclic(g *Graph) error {
	parents := g.Parents()
	for _, e := range g.Entities() {
		if path, ok := FindCycle(parents, e.ID, g.Len()); ok {
			cycle := make([]string, len(path))
			for i, id := range path {
				cycle[i] = g.ClassName(id)
			}
			return &ValidationError{Violation: CircularSpecialization, Cycle: cycle}
		}
	}
	return nil
}

// FindCycle follows the parent chain from start for at most limit steps. It
// reports a cycle when start is reached again or when the chain is still
// going after limit steps. The returned path starts with start.
func FindCycle(parents map[string]string, start string, limit int) ([]string, bool) {
	path := []string{start}
	current := start
	for steps := 0; ; steps++ {
		next, ok := parents[current]
		if !ok {
			return nil, false
		}
		if steps >= limit {
			return path, true
		}
		path = append(path, next)
		if next == start {
			return path, true
		}
		current = next
	}
}
