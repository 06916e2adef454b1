// Package load reads diagram documents from disk, choosing the reader by
// file extension.
package load

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/syssam/drawgen/diagram"
	"github.com/syssam/drawgen/diagram/drawio"
	"github.com/syssam/drawgen/diagram/yamldoc"
)

// ErrMalformedInput indicates an unreadable or unparsable document.
var ErrMalformedInput = errors.New("drawgen: malformed input")

// Format names a supported document format.
type Format string

// Supported formats.
const (
	FormatDrawIO Format = "drawio"
	FormatYAML   Format = "yaml"
)

// Error is returned when a document cannot be loaded.
type Error struct {
	Path   string
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("drawgen: cannot read ")
	b.WriteString(string(e.Format))
	b.WriteString(" document ")
	b.WriteString(e.Path)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrMalformedInput.
func (e *Error) Is(target error) bool {
	return target == ErrMalformedInput
}

// IsMalformedInput reports whether err is a load error.
func IsMalformedInput(err error) bool {
	var loadErr *Error
	return errors.As(err, &loadErr)
}

// FormatOf returns the document format implied by the extension of path.
// Unknown extensions are read as draw.io XML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatDrawIO
	}
}

// Load reads the document at path.
func Load(path string) (*diagram.Document, error) {
	format := FormatOf(path)
	var (
		doc *diagram.Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = yamldoc.ReadFile(path)
	default:
		doc, err = drawio.ReadFile(path)
	}
	if err != nil {
		return nil, &Error{Path: path, Format: format, Cause: err}
	}
	return doc, nil
}
