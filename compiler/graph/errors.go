package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/syssam/drawgen/compiler/label"
)

// Sentinel errors, one per violation. Every *ValidationError matches
// ErrValidationFailed and the sentinel of its violation.
var (
	// ErrValidationFailed indicates that the graph violates a structural rule.
	ErrValidationFailed = errors.New("drawgen: validation failed")
	// ErrDanglingRelation indicates an arrow with an endpoint that is not an entity.
	ErrDanglingRelation = errors.New("drawgen: dangling relation")
	// ErrMissingAssociationLabel indicates an association arrow without text.
	ErrMissingAssociationLabel = errors.New("drawgen: missing association label")
	// ErrMalformedAssociationLabel indicates association text outside the label grammar.
	ErrMalformedAssociationLabel = errors.New("drawgen: malformed association label")
	// ErrCircularSpecialization indicates a cycle among specializations.
	ErrCircularSpecialization = errors.New("drawgen: circular specialization")
)

// Violation identifies the rule a graph broke.
type Violation uint8

// Violations in check order.
const (
	DanglingRelation Violation = iota + 1
	MissingAssociationLabel
	MalformedAssociationLabel
	CircularSpecialization
)

var sentinels = map[Violation]error{
	DanglingRelation:          ErrDanglingRelation,
	MissingAssociationLabel:   ErrMissingAssociationLabel,
	MalformedAssociationLabel: ErrMalformedAssociationLabel,
	CircularSpecialization:    ErrCircularSpecialization,
}

// String implements fmt.Stringer.
func (v Violation) String() string {
	switch v {
	case DanglingRelation:
		return "DanglingRelation"
	case MissingAssociationLabel:
		return "MissingAssociationLabel"
	case MalformedAssociationLabel:
		return "MalformedAssociationLabel"
	case CircularSpecialization:
		return "CircularSpecialization"
	default:
		return fmt.Sprintf("Violation(%d)", v)
	}
}

// ValidationError describes the first rule violation found in a graph.
type ValidationError struct {
	Violation Violation
	// Relation is the id of the offending arrow. Empty for cycles.
	Relation string
	// Source and Target name the endpoints: the class name when the endpoint
	// resolves, the raw id otherwise.
	Source, Target string
	// Unresolved lists the endpoint ids that are not entities.
	Unresolved []string
	// Label is the offending label text.
	Label string
	// Cycle lists the class names along a specialization cycle, starting and
	// ending with the same class.
	Cycle []string
}

// Diagnostic returns the one-line, human-readable description of the
// violation.
func (e *ValidationError) Diagnostic() string {
	switch e.Violation {
	case DanglingRelation:
		return fmt.Sprintf("Arrow must connect two things: edgeId=%s src=%s target=%s (unresolved: %s)",
			e.Relation, endpoint(e.Source), endpoint(e.Target), strings.Join(quoteAll(e.Unresolved), ", "))
	case MissingAssociationLabel:
		return fmt.Sprintf("Missing association label on edgeId=%s src=%s target=%s",
			e.Relation, e.Source, e.Target)
	case MalformedAssociationLabel:
		return fmt.Sprintf("Association label must match: %s. Found: %q on edgeId=%s src=%s target=%s",
			label.Expected, e.Label, e.Relation, e.Source, e.Target)
	case CircularSpecialization:
		return "Specialization must not be circular: " + strings.Join(e.Cycle, " -> ")
	default:
		return "invalid diagram"
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "drawgen: validation error: " + e.Diagnostic()
}

// Is reports whether target is ErrValidationFailed or the sentinel of the
// violation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed || target == sentinels[e.Violation]
}

// IsValidationError reports whether the error is a ValidationError.
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// AsValidationError returns the ValidationError in err's chain, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	ok := errors.As(err, &valErr)
	return valErr, ok
}

func endpoint(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func quoteAll(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = fmt.Sprintf("%q", id)
	}
	return out
}
