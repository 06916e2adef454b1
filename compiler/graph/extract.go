package graph

import (
	"log/slog"
	"strings"

	"github.com/syssam/drawgen/compiler/text"
	"github.com/syssam/drawgen/diagram"
)

// Style markers read from cell styles.
const (
	styleEdgeLabel  = "edgeLabel"
	styleNoStroke   = "strokeColor=none"
	styleBlockArrow = "endArrow=block"
	styleOpenArrow  = "endFill=0"
)

// Extract builds the graph of a document. Shapes with text become entities,
// arrows become relations. Extraction never fails: dangling endpoints and
// bad labels are left for Validate.
func Extract(doc *diagram.Document) *Graph {
	g := New()
	cells := doc.Cells()
	for _, c := range cells {
		if !isEntity(c) {
			continue
		}
		value := text.CleanText(c.Value())
		g.AddEntity(&Entity{
			ID:        c.ID(),
			ClassName: text.ClassName(value),
			Value:     value,
		})
	}
	for _, c := range cells {
		if !c.IsEdge() {
			continue
		}
		r := &Relation{
			ID:     c.ID(),
			Source: c.Attr(diagram.AttrSource),
			Target: c.Attr(diagram.AttrTarget),
			Kind:   KindOf(c.Style()),
			Label:  text.CleanText(c.Value()),
		}
		if r.Label == "" {
			r.Label = detachedLabel(r.ID, cells)
		}
		g.AddRelation(r)
	}
	slog.Debug("graph extracted",
		"source", doc.Source,
		"cells", len(cells),
		"entities", g.Len(),
		"relations", len(g.Relations),
	)
	return g
}

// KindOf classifies an arrow by its style. A hollow block arrowhead is a
// specialization; anything else is an association.
func KindOf(style string) Kind {
	if strings.Contains(style, styleBlockArrow) && strings.Contains(style, styleOpenArrow) {
		return Specialization
	}
	return Association
}

// isEntity reports whether c is a labeled shape. Edge-label decorations and
// stroke-less background shapes are skipped.
func isEntity(c diagram.Cell) bool {
	if !c.IsVertex() {
		return false
	}
	style := c.Style()
	if strings.Contains(style, styleEdgeLabel) || strings.Contains(style, styleNoStroke) {
		return false
	}
	return text.CleanText(c.Value()) != ""
}

// detachedLabel returns the text of the first edge-label shape attached to
// the edge, in document order.
func detachedLabel(edgeID string, cells []diagram.Cell) string {
	for _, c := range cells {
		if !c.IsVertex() || c.Attr(diagram.AttrParent) != edgeID {
			continue
		}
		if !strings.Contains(c.Style(), styleEdgeLabel) {
			continue
		}
		if v := text.CleanText(c.Value()); v != "" {
			return v
		}
	}
	return ""
}
