// Package diagram defines the labeled-graph document consumed by the
// compiler. A document is a flat, ordered list of cells; every cell is a bag
// of string attributes where an absent attribute reads as the empty string.
package diagram

import "maps"

// Attribute names read by the compiler.
const (
	AttrID     = "id"
	AttrVertex = "vertex"
	AttrEdge   = "edge"
	AttrSource = "source"
	AttrTarget = "target"
	AttrParent = "parent"
	AttrStyle  = "style"
	AttrValue  = "value"
)

// Cell is one graphical cell of a document.
type Cell struct {
	attrs map[string]string
}

// NewCell returns a cell holding a copy of attrs.
func NewCell(attrs map[string]string) Cell {
	return Cell{attrs: maps.Clone(attrs)}
}

// Attr returns the named attribute, or "" when it is absent.
func (c Cell) Attr(name string) string {
	return c.attrs[name]
}

// Attrs returns a copy of all attributes of the cell.
func (c Cell) Attrs() map[string]string {
	return maps.Clone(c.attrs)
}

// ID returns the cell id.
func (c Cell) ID() string { return c.Attr(AttrID) }

// Style returns the raw style string.
func (c Cell) Style() string { return c.Attr(AttrStyle) }

// Value returns the raw display value.
func (c Cell) Value() string { return c.Attr(AttrValue) }

// IsVertex reports whether the cell is a shape.
func (c Cell) IsVertex() bool { return c.Attr(AttrVertex) == "1" }

// IsEdge reports whether the cell is an arrow.
func (c Cell) IsEdge() bool { return c.Attr(AttrEdge) == "1" }

// Document is a labeled-graph document.
type Document struct {
	// Source names where the document was read from.
	Source string
	cells  []Cell
}

// New returns a document holding cells in the given order.
func New(source string, cells ...Cell) *Document {
	return &Document{Source: source, cells: cells}
}

// Cells returns all cells in document order.
func (d *Document) Cells() []Cell {
	return d.cells
}

// Len returns the number of cells.
func (d *Document) Len() int {
	return len(d.cells)
}
