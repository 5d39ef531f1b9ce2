package uritemplate

import (
	"fmt"
	"log/slog"
	"strings"
)

// MissingAction specifies how variables without a binding are rendered.
type MissingAction int

const (
	// MissingKeep renders the unbound placeholder, {name} or {name*}.
	// This is the default behavior.
	MissingKeep MissingAction = iota

	// MissingEmpty renders nothing for unbound variables.
	MissingEmpty

	// MissingError fails the expansion with an *UndefinedVariableError.
	MissingError
)

// String returns the configuration name of the action.
func (a MissingAction) String() string {
	switch a {
	case MissingKeep:
		return "keep"
	case MissingEmpty:
		return "empty"
	case MissingError:
		return "error"
	default:
		return fmt.Sprintf("MissingAction(%d)", int(a))
	}
}

// ParseMissingAction maps a configuration name to a MissingAction.
// The empty string selects MissingKeep.
func ParseMissingAction(s string) (MissingAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return MissingKeep, nil
	case "empty":
		return MissingEmpty, nil
	case "error":
		return MissingError, nil
	}
	return MissingKeep, fmt.Errorf("unknown missing action %q", s)
}

// Option configures an Expander.
type Option func(*Expander)

// WithMissingAction sets how unbound variables are handled.
//
// Default: MissingKeep
//
// Example:
//
//	exp := NewExpander(WithMissingAction(MissingError))
//	_, err := exp.Expand(uritemplate.MustParse("a/{id}"), nil)
//	// err: "undefined variable: id"
func WithMissingAction(action MissingAction) Option {
	return func(e *Expander) {
		e.missingAction = action
	}
}

// WithEncoding sets how bound values are percent-encoded.
//
// Default: EncodeNone (values are substituted as given)
func WithEncoding(mode EncodingMode) Option {
	return func(e *Expander) {
		e.encoding = mode
	}
}

// WithExplodeSeparator sets the joiner between the elements of an exploded
// list or map.
//
// Default: ","
//
// Example:
//
//	exp := NewExpander(WithExplodeSeparator("/"))
//	s, _ := exp.Expand(uritemplate.MustParse("files/{path*}"), uritemplate.Bindings{
//	    "path": []string{"a", "b"},
//	})
//	// s: "files/a/b"
func WithExplodeSeparator(sep string) Option {
	return func(e *Expander) {
		e.separator = sep
	}
}

// WithMaxResults caps the number of URIs ExpandEach may produce. When the
// fan-out would exceed n, ExpandEach returns an error wrapping
// ErrTooManyResults. Zero or a negative n removes the cap.
//
// Default: 0 (no cap)
func WithMaxResults(n int) Option {
	return func(e *Expander) {
		e.maxResults = max(n, 0)
	}
}

// WithLogger sets the logger used to report placeholders kept for unbound
// variables. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}
