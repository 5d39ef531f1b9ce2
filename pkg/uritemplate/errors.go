package uritemplate

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for component construction and parsing.
var (
	// ErrPreconditionViolation indicates a component was constructed with
	// arguments that break its contract, such as an empty variable name.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrMalformedTemplate indicates the template source could not be parsed.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrUnterminatedExpression indicates a '{' without a matching '}'.
	ErrUnterminatedExpression = errors.New("unterminated expression")

	// ErrNestedExpression indicates a '{' inside an open expression.
	ErrNestedExpression = errors.New("nested expression")

	// ErrEmptyVariable indicates an expression holds an empty variable name.
	ErrEmptyVariable = errors.New("empty variable name")

	// ErrUnsupportedOperator indicates an RFC 6570 operator such as '+' or '?'.
	// Only simple and exploded variables are supported.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrUnsupportedModifier indicates a prefix modifier such as ':3'.
	ErrUnsupportedModifier = errors.New("unsupported prefix modifier")
)

// Sentinel errors for expansion.
var (
	// ErrBindingTypeMismatch indicates a bound value's shape does not fit the
	// variable, for example a list bound to a non-exploded variable.
	ErrBindingTypeMismatch = errors.New("binding type mismatch")

	// ErrUndefinedVariable indicates a variable had no binding while the
	// expander was configured with MissingError.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrTooManyResults indicates ExpandEach would produce more URIs than
	// the expander's WithMaxResults cap.
	ErrTooManyResults = errors.New("too many expansion results")
)

// PreconditionError reports a construction-time contract breach.
type PreconditionError struct {
	// Field is the argument that was rejected.
	Field string
	// Value is the rejected value.
	Value string
	// Reason describes the broken contract.
	Reason string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violation: %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrPreconditionViolation for errors.Is support.
func (e *PreconditionError) Unwrap() error {
	return ErrPreconditionViolation
}

// MalformedTemplateError reports where and why parsing failed.
// No partial template is returned alongside it.
type MalformedTemplateError struct {
	// Template is the full source that failed to parse.
	Template string
	// Offset is the byte offset of the offending expression or character.
	Offset int
	// Err is the detail sentinel, e.g. ErrUnterminatedExpression.
	Err error
}

// Error implements the error interface.
func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed template %q at offset %d: %v", e.Template, e.Offset, e.Err)
}

// Unwrap exposes both ErrMalformedTemplate and the detail error.
func (e *MalformedTemplateError) Unwrap() []error {
	return []error{ErrMalformedTemplate, e.Err}
}

// BindingTypeMismatchError reports a value whose shape cannot be rendered by
// the variable it is bound to.
type BindingTypeMismatchError struct {
	// Name is the variable name.
	Name string
	// Exploded is the variable's explode flag.
	Exploded bool
	// Type is the Go type of the bound value.
	Type string
}

// Error implements the error interface.
func (e *BindingTypeMismatchError) Error() string {
	if e.Exploded {
		return fmt.Sprintf("binding type mismatch: exploded variable %q cannot render %s", e.Name, e.Type)
	}
	return fmt.Sprintf("binding type mismatch: variable %q expects a scalar, got %s", e.Name, e.Type)
}

// Unwrap returns ErrBindingTypeMismatch for errors.Is support.
func (e *BindingTypeMismatchError) Unwrap() error {
	return ErrBindingTypeMismatch
}

// UndefinedVariableError is returned when MissingError is set and one or more
// variables have no binding.
type UndefinedVariableError struct {
	// Names lists the unbound variables in template order.
	Names []string
}

// Error implements the error interface.
func (e *UndefinedVariableError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined variable: %s", e.Names[0])
	}
	return fmt.Sprintf("undefined variables: %s", strings.Join(e.Names, ", "))
}

// Unwrap returns ErrUndefinedVariable for errors.Is support.
func (e *UndefinedVariableError) Unwrap() error {
	return ErrUndefinedVariable
}
