package uritemplate

import "strings"

// Component is one piece of a parsed template: a Literal or a VarSpec.
//
// The set is closed. Code that needs per-kind behavior switches on the
// concrete type, see render.
type Component interface {
	// Text returns the component's template text.
	Text() string

	component()
}

// Compile-time interface checks.
var (
	_ Component = Literal{}
	_ Component = VarSpec{}
)

// Literal is template text emitted verbatim during expansion.
// The zero value is an empty literal.
type Literal struct {
	text string
}

// NewLiteral creates a literal span. No validation is performed.
func NewLiteral(text string) Literal {
	return Literal{text: text}
}

// Text returns the literal text.
func (l Literal) Text() string {
	return l.text
}

// Equal reports whether both literals hold the same text.
func (l Literal) Equal(other Literal) bool {
	return l.text == other.text
}

// String implements fmt.Stringer.
func (l Literal) String() string {
	return l.text
}

func (Literal) component() {}

// VarSpec is a named variable slot, independent of any binding.
//
// An exploded VarSpec ({name*}) expects a composite value: a list or a
// key/value map. VarSpec values are immutable.
type VarSpec struct {
	name     string
	exploded bool
}

// NewVarSpec creates a non-exploded variable.
// Returns a *PreconditionError when name is empty or whitespace.
func NewVarSpec(name string) (VarSpec, error) {
	return NewExplodedVarSpec(name, false)
}

// NewExplodedVarSpec creates a variable with an explicit explode flag.
// Returns a *PreconditionError when name is empty or whitespace.
func NewExplodedVarSpec(name string, exploded bool) (VarSpec, error) {
	if strings.TrimSpace(name) == "" {
		return VarSpec{}, &PreconditionError{
			Field:  "name",
			Value:  name,
			Reason: "variable name must not be empty or whitespace",
		}
	}
	return VarSpec{name: name, exploded: exploded}, nil
}

// MustVarSpec is like NewExplodedVarSpec but panics on error.
func MustVarSpec(name string, exploded bool) VarSpec {
	v, err := NewExplodedVarSpec(name, exploded)
	if err != nil {
		panic("uritemplate: " + err.Error())
	}
	return v
}

// Name returns the variable name.
func (v VarSpec) Name() string {
	return v.name
}

// IsExploded reports whether the variable carries the '*' modifier.
func (v VarSpec) IsExploded() bool {
	return v.exploded
}

// Text returns the unbound placeholder: {name} or {name*}.
func (v VarSpec) Text() string {
	var b strings.Builder
	b.Grow(len(v.name) + 3)
	b.WriteByte('{')
	b.WriteString(v.name)
	if v.exploded {
		b.WriteByte('*')
	}
	b.WriteByte('}')
	return b.String()
}

// ToString returns the bound rendering of a single, already flattened value.
func (v VarSpec) ToString(value string) string {
	return value
}

// String implements fmt.Stringer.
func (v VarSpec) String() string {
	return v.Text()
}

func (VarSpec) component() {}
