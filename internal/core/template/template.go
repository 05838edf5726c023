// Package template implements bracket-placeholder templates whose scaffold
// text is fixed and whose [placeholder] contents are the only editable parts.
package template

import (
	"regexp"
	"strings"
)

// Default templates for story fields.
const (
	UserStory = "As a [user role],\nI want [what they need to do],\nso that [the problem it solves]."

	AcceptanceCriteria = "- Done when:\n  - [condition 1]\n  - [condition 2]\n  - [condition 3]"
)

var bracketPattern = regexp.MustCompile(`\[([^\]]*)\]`)

// Values returns the bracket contents of text in order.
func Values(text string) []string {
	matches := bracketPattern.FindAllStringSubmatch(text, -1)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m[1]
	}
	return out
}

// Count returns the number of bracket placeholders in text.
func Count(text string) int {
	return len(bracketPattern.FindAllStringIndex(text, -1))
}

// Apply substitutes values into tmpl's placeholders in order. Placeholders
// beyond len(values) keep their template content.
func Apply(tmpl string, values []string) string {
	i := 0
	return bracketPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		if i >= len(values) {
			i++
			return m
		}
		v := values[i]
		i++
		return "[" + v + "]"
	})
}

// Enforce rebuilds tmpl with the bracket contents of proposed. When proposed
// does not have exactly as many placeholders as tmpl, fallback is returned and
// ok is false.
func Enforce(tmpl, proposed, fallback string) (string, bool) {
	values := Values(proposed)
	if len(values) != Count(tmpl) {
		return fallback, false
	}
	return Apply(tmpl, values), true
}

// Editor holds the last accepted value of a template-constrained field.
type Editor struct {
	tmpl  string
	value string
}

// NewEditor starts an editor at initial, or at the template when initial does
// not conform.
func NewEditor(tmpl, initial string) *Editor {
	e := &Editor{tmpl: tmpl, value: tmpl}
	if strings.TrimSpace(initial) != "" {
		if v, ok := Enforce(tmpl, initial, tmpl); ok {
			e.value = v
		}
	}
	return e
}

// Propose applies an edit. A rejected edit leaves Value unchanged.
func (e *Editor) Propose(next string) bool {
	v, ok := Enforce(e.tmpl, next, e.value)
	e.value = v
	return ok
}

// Value returns the last accepted text.
func (e *Editor) Value() string {
	return e.value
}
