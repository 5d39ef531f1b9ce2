package uritemplate

import "strings"

// Template is an ordered sequence of components parsed from one source
// string.
//
// A Template is immutable once parsed. It can be shared across goroutines
// and expanded any number of times with different bindings.
type Template struct {
	source     string
	components []Component
}

// New builds a template directly from components, for callers that assemble
// templates programmatically. The source is the concatenated component text.
func New(components ...Component) *Template {
	cs := make([]Component, 0, len(components))
	var b strings.Builder
	for _, c := range components {
		if c == nil {
			continue
		}
		cs = append(cs, c)
		b.WriteString(c.Text())
	}
	return &Template{source: b.String(), components: cs}
}

// Components returns a copy of the component sequence.
func (t *Template) Components() []Component {
	out := make([]Component, len(t.components))
	copy(out, t.components)
	return out
}

// Len returns the number of components.
func (t *Template) Len() int {
	return len(t.components)
}

// Names returns the variable names in order of first appearance.
func (t *Template) Names() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, c := range t.components {
		v, ok := c.(VarSpec)
		if !ok {
			continue
		}
		if _, dup := seen[v.name]; dup {
			continue
		}
		seen[v.name] = struct{}{}
		names = append(names, v.name)
	}
	return names
}

// Text returns the concatenated template text of all components.
//
// Text equals String unless the source grouped several variables in one
// expression: "{a,b}" reconstructs as "{a}{b}".
func (t *Template) Text() string {
	var b strings.Builder
	for _, c := range t.components {
		b.WriteString(c.Text())
	}
	return b.String()
}

// String returns the source the template was parsed from.
func (t *Template) String() string {
	return t.source
}

// Expand substitutes bindings using the default expander.
//
// Unbound variables are kept as {name} placeholders, so expanding with no
// bindings returns Text. That equals the source only when no expression
// groups several variables: "{a,b}" expands to "{a}{b}".
func (t *Template) Expand(b Bindings) (string, error) {
	return defaultExpander.Expand(t, b)
}

// ExpandEach expands the template once per element of every exploded list
// binding, using the default expander. See Expander.ExpandEach.
func (t *Template) ExpandEach(b Bindings) ([]string, error) {
	return defaultExpander.ExpandEach(t, b)
}
