package link

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrUnknownRelation indicates no template is registered for a relation.
	ErrUnknownRelation = errors.New("unknown relation")

	// ErrDuplicateRelation indicates a relation is already registered.
	ErrDuplicateRelation = errors.New("duplicate relation")

	// ErrEmptyRelation indicates a relation name is empty.
	ErrEmptyRelation = errors.New("empty relation name")
)

// RelationError wraps an error with the relation and catalog operation.
type RelationError struct {
	// Rel is the relation being registered or built.
	Rel string
	// Op is the operation that failed ("register" or "build").
	Op string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RelationError) Error() string {
	return fmt.Sprintf("relation %q: %s: %v", e.Rel, e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RelationError) Unwrap() error {
	return e.Err
}
