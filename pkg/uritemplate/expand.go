package uritemplate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// Expander renders templates against bindings.
//
// Create with NewExpander and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	missingAction MissingAction
	encoding      EncodingMode
	separator     string
	maxResults    int
	logger        *slog.Logger
}

// NewExpander creates an Expander with the given options.
//
// Default configuration:
//   - MissingAction: MissingKeep (unbound variables render as {name})
//   - Encoding: EncodeNone
//   - ExplodeSeparator: ","
//   - MaxResults: 0 (ExpandEach is unbounded)
func NewExpander(opts ...Option) *Expander {
	e := &Expander{
		missingAction: MissingKeep,
		encoding:      EncodeNone,
		separator:     ",",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingAction returns how the expander renders unbound variables.
func (e *Expander) MissingAction() MissingAction {
	return e.missingAction
}

// defaultExpander backs Template.Expand and the package-level Expand.
var defaultExpander = NewExpander()

// Expand renders t against b.
//
// Literals are emitted verbatim. A scalar binding is substituted through
// VarSpec.ToString. An exploded variable bound to a list emits its elements
// joined by the explode separator; bound to a map it emits key=value pairs
// in key order. A list or map bound to a non-exploded variable, or a value
// of an unsupported type, fails with a *BindingTypeMismatchError.
//
// Expansion is all-or-nothing: on error the returned string is empty.
func (e *Expander) Expand(t *Template, b Bindings) (string, error) {
	var (
		out     strings.Builder
		missing []string
	)
	for _, c := range t.components {
		s, err := e.render(c, b, &missing)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	if len(missing) > 0 {
		return "", &UndefinedVariableError{Names: missing}
	}
	return out.String(), nil
}

// ExpandEach renders t once per element of each exploded variable bound to
// a list, instead of joining the elements into one string. With several
// such variables the result is their cartesian product in template order.
//
// Example:
//
//	t := uritemplate.MustParse("product/{id*}")
//	hrefs, _ := exp.ExpandEach(t, uritemplate.Bindings{"id": []string{"1", "2"}})
//	// hrefs: ["product/1", "product/2"]
//
// An exploded variable bound to an empty list yields no results.
//
// The result count is the product of the list lengths, so a few large lists
// multiply quickly. Set WithMaxResults to fail with ErrTooManyResults before
// the URIs are built.
func (e *Expander) ExpandEach(t *Template, b Bindings) ([]string, error) {
	choices := make([][]string, 0, len(t.components))
	var missing []string

	for _, c := range t.components {
		if alts, ok := e.listAlternatives(c, b); ok {
			choices = append(choices, alts)
			continue
		}
		s, err := e.render(c, b, &missing)
		if err != nil {
			return nil, err
		}
		choices = append(choices, []string{s})
	}
	if len(missing) > 0 {
		return nil, &UndefinedVariableError{Names: missing}
	}
	if e.maxResults > 0 {
		if n := resultCount(choices, e.maxResults); n > e.maxResults {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyResults, e.maxResults)
		}
	}

	results := []string{""}
	for _, alts := range choices {
		next := make([]string, 0, len(results)*len(alts))
		for _, prefix := range results {
			for _, alt := range alts {
				next = append(next, prefix+alt)
			}
		}
		results = next
	}
	return results, nil
}

// ExpandString parses s and expands it against b.
func (e *Expander) ExpandString(s string, b Bindings) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return e.Expand(t, b)
}

// Expand parses s and expands it with the default expander.
//
// Example:
//
//	uri, err := uritemplate.Expand("product-query/{id}/culture/{culture}", uritemplate.Bindings{
//	    "id":      "123",
//	    "culture": "en-US",
//	})
//	// uri: "product-query/123/culture/en-US"
func Expand(s string, b Bindings) (string, error) {
	return defaultExpander.ExpandString(s, b)
}

// render produces the expansion of a single component. Unbound variables
// under MissingError are collected into missing.
func (e *Expander) render(c Component, b Bindings, missing *[]string) (string, error) {
	switch c := c.(type) {
	case Literal:
		return c.Text(), nil
	case VarSpec:
		raw, ok := b.lookup(c.name)
		if !ok {
			return e.renderUnbound(c, missing), nil
		}
		return e.renderBound(c, raw)
	default:
		return "", fmt.Errorf("uritemplate: unknown component %T", c)
	}
}

func (e *Expander) renderUnbound(v VarSpec, missing *[]string) string {
	switch e.missingAction {
	case MissingEmpty:
		return ""
	case MissingError:
		if !containsName(*missing, v.name) {
			*missing = append(*missing, v.name)
		}
		return ""
	default:
		observability.LogUnbound(e.logger, v.name, v.Text())
		return v.Text()
	}
}

func (e *Expander) renderBound(v VarSpec, raw any) (string, error) {
	val, ok := classify(raw)
	if !ok {
		return "", &BindingTypeMismatchError{Name: v.name, Exploded: v.exploded, Type: fmt.Sprintf("%T", raw)}
	}

	switch val.kind {
	case kindScalar:
		return v.ToString(Encode(val.scalar, e.encoding)), nil
	case kindList:
		if !v.exploded {
			return "", &BindingTypeMismatchError{Name: v.name, Type: fmt.Sprintf("%T", raw)}
		}
		parts := make([]string, len(val.list))
		for i, item := range val.list {
			parts[i] = Encode(item, e.encoding)
		}
		return v.ToString(strings.Join(parts, e.separator)), nil
	default:
		if !v.exploded {
			return "", &BindingTypeMismatchError{Name: v.name, Type: fmt.Sprintf("%T", raw)}
		}
		parts := make([]string, len(val.pairs))
		for i, p := range val.pairs {
			parts[i] = Encode(p.key, e.encoding) + "=" + Encode(p.value, e.encoding)
		}
		return v.ToString(strings.Join(parts, e.separator)), nil
	}
}

// listAlternatives returns the per-element renderings of an exploded
// variable bound to a list. ok is false for every other component.
func (e *Expander) listAlternatives(c Component, b Bindings) ([]string, bool) {
	v, isVar := c.(VarSpec)
	if !isVar || !v.exploded {
		return nil, false
	}
	raw, bound := b.lookup(v.name)
	if !bound {
		return nil, false
	}
	val, ok := classify(raw)
	if !ok || val.kind != kindList {
		return nil, false
	}

	alts := make([]string, len(val.list))
	for i, item := range val.list {
		alts[i] = v.ToString(Encode(item, e.encoding))
	}
	return alts, true
}

// resultCount returns the size of the cartesian product of choices, stopping
// as soon as it passes limit.
func resultCount(choices [][]string, limit int) int {
	n := 1
	for _, alts := range choices {
		n *= len(alts)
		if n == 0 || n > limit {
			return n
		}
	}
	return n
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
