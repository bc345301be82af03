// Package template resolves [name] placeholders in display messages.
package template

import (
	"fmt"
	"strings"
)

// UnresolvedVariableError reports a token with no entry in the render context.
type UnresolvedVariableError struct {
	Name string
}

func (e *UnresolvedVariableError) Error() string {
	return fmt.Sprintf("unresolved template variable %q", e.Name)
}

const escapeMarker = '\\'

// Resolve substitutes every [name] token in tmpl with its value from context.
// A bracket preceded by a backslash is a literal character, not a delimiter.
// Substituted values are written straight to the output and never re-scanned,
// so values containing brackets cannot introduce new tokens. An opening
// bracket with no matching close is emitted as-is.
func Resolve(tmpl string, context map[string]string) (string, error) {
	var out strings.Builder
	runes := []rune(tmpl)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == escapeMarker && i+1 < len(runes) && isBracket(runes[i+1]) {
			out.WriteRune(runes[i+1])
			i++
			continue
		}
		if r != '[' {
			out.WriteRune(r)
			continue
		}
		end, name, ok := scanToken(runes, i)
		if !ok {
			out.WriteRune(r)
			continue
		}
		value, found := context[name]
		if !found {
			return "", &UnresolvedVariableError{Name: name}
		}
		out.WriteString(value)
		i = end
	}
	return out.String(), nil
}

// scanToken reads a token name starting at the opening bracket, returning the
// index of the closing bracket. Empty tokens are not tokens.
func scanToken(runes []rune, start int) (end int, name string, ok bool) {
	var b strings.Builder
	for i := start + 1; i < len(runes); i++ {
		r := runes[i]
		if r == escapeMarker && i+1 < len(runes) && isBracket(runes[i+1]) {
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		if r == ']' {
			if b.Len() == 0 {
				return 0, "", false
			}
			return i, b.String(), true
		}
		b.WriteRune(r)
	}
	return 0, "", false
}

func isBracket(r rune) bool {
	return r == '[' || r == ']'
}
