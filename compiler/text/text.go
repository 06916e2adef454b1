// Package text derives identifier-safe names from the free text found in
// diagram labels.
package text

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// UnnamedClass is returned by ClassName when no identifier fragment survives.
	UnnamedClass = "Unnamed"
	// DefaultField is returned by LowerFirst for empty input.
	DefaultField = "field"
	// DefaultCollection is returned by Pluralize for empty input.
	DefaultCollection = "items"
)

var markup = regexp.MustCompile(`<[^>]+>`)

// CleanText removes embedded markup tags and the &nbsp; entity, and trims
// the surrounding whitespace.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}
	s := markup.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.TrimSpace(s)
}

// ClassName converts free text to a PascalCase identifier. Fragments are
// split on any run of characters outside [A-Za-z0-9]; only the first
// character of each fragment is changed. The result is never empty.
//
//	ClassName("order item")              // OrderItem
//	ClassName("<b>Foo</b>&nbsp;Bar")     // FooBar
//	ClassName("!!!")                     // Unnamed
func ClassName(raw string) string {
	var b strings.Builder
	for _, p := range strings.FieldsFunc(CleanText(raw), isSeparator) {
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	if b.Len() == 0 {
		return UnnamedClass
	}
	return b.String()
}

// isSeparator reports whether r splits identifier fragments.
func isSeparator(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	default:
		return true
	}
}

// LowerFirst lower-cases the first character of s.
func LowerFirst(s string) string {
	if s == "" {
		return DefaultField
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

// Pluralize appends "s" unless s already ends with one. It is a heuristic:
// "Category" becomes "Categorys" and "Status" stays "Status".
func Pluralize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultCollection
	}
	if strings.HasSuffix(s, "s") || strings.HasSuffix(s, "S") {
		return s
	}
	return s + "s"
}
