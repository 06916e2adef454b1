// Package drawio reads draw.io (diagrams.net) files into diagram documents.
//
// Every mxCell element is collected in document order, regardless of its
// depth. Pages stored in the compressed form (base64 of raw-deflated,
// URL-escaped XML) are inflated and parsed in place, and cells wrapped in
// object or UserObject elements take their id and label from the wrapper.
package drawio

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/syssam/drawgen/diagram"
)

const (
	elemCell       = "mxCell"
	elemDiagram    = "diagram"
	elemModel      = "mxGraphModel"
	elemObject     = "object"
	elemUserObject = "UserObject"
	attrLabel      = "label"
)

// ErrEmpty is returned for input without any XML element.
var ErrEmpty = errors.New("drawio: document has no root element")

// ReadFile parses the draw.io file at path.
func ReadFile(path string) (*diagram.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a draw.io document from r. The source is recorded on the
// returned document.
func Parse(r io.Reader, source string) (*diagram.Document, error) {
	p := &parser{}
	if err := p.parse(r); err != nil {
		return nil, err
	}
	if !p.root {
		return nil, ErrEmpty
	}
	return diagram.New(source, p.cells...), nil
}

type parser struct {
	cells []diagram.Cell
	// root is set once any element was seen.
	root bool
}

// page tracks a <diagram> element while its content is decoded.
type page struct {
	name     string
	text     strings.Builder
	hasModel bool
}

func (p *parser) parse(r io.Reader) error {
	var (
		dec      = xml.NewDecoder(r)
		wrappers []map[string]string
		pages    []*page
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("drawio: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			p.root = true
			if len(pages) > 0 && t.Name.Local != elemDiagram {
				pages[len(pages)-1].hasModel = true
			}
			switch t.Name.Local {
			case elemDiagram:
				pages = append(pages, &page{name: attr(t, "name")})
			case elemObject, elemUserObject:
				wrappers = append(wrappers, attrs(t))
			case elemCell:
				a := attrs(t)
				if n := len(wrappers); n > 0 {
					inherit(a, wrappers[n-1])
				}
				p.cells = append(p.cells, diagram.NewCell(a))
			}
		case xml.EndElement:
			switch t.Name.Local {
			case elemDiagram:
				if len(pages) == 0 {
					continue
				}
				pg := pages[len(pages)-1]
				pages = pages[:len(pages)-1]
				if err := p.inflate(pg); err != nil {
					return err
				}
			case elemObject, elemUserObject:
				if len(wrappers) > 0 {
					wrappers = wrappers[:len(wrappers)-1]
				}
			}
		case xml.CharData:
			if len(pages) > 0 {
				pages[len(pages)-1].text.Write(t)
			}
		}
	}
}

// inflate parses the compressed content of a page that carried no inline
// graph model.
func (p *parser) inflate(pg *page) error {
	data := strings.TrimSpace(pg.text.String())
	if pg.hasModel || data == "" {
		return nil
	}
	model, err := Decompress(data)
	if err != nil {
		return fmt.Errorf("drawio: page %q: %w", pg.name, err)
	}
	return p.parse(strings.NewReader(model))
}

// Decompress decodes the compressed page format used by draw.io: base64 of
// raw-deflated, URL-escaped XML.
func Decompress(data string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	zr := flate.NewReader(bytes.NewReader(raw))
	defer zr.Close()
	inflated, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("inflate: %w", err)
	}
	model := string(inflated)
	if strings.HasPrefix(strings.TrimSpace(model), "<") {
		return model, nil
	}
	model, err = url.PathUnescape(model)
	if err != nil {
		return "", fmt.Errorf("unescape: %w", err)
	}
	return model, nil
}

// Compress is the inverse of Decompress.
func Compress(model string) (string, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := zw.Write([]byte(url.PathEscape(model))); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func attrs(e xml.StartElement) map[string]string {
	m := make(map[string]string, len(e.Attr))
	for _, a := range e.Attr {
		m[a.Name.Local] = a.Value
	}
	return m
}

func attr(e xml.StartElement, name string) string {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// inherit fills the id and value of a wrapped cell from its wrapper.
func inherit(cell, wrapper map[string]string) {
	if cell[diagram.AttrID] == "" {
		cell[diagram.AttrID] = wrapper[diagram.AttrID]
	}
	if cell[diagram.AttrValue] == "" {
		cell[diagram.AttrValue] = wrapper[attrLabel]
	}
}
