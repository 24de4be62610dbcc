// Package apperr collects the four cross-cutting error categories:
// ParseError, UnsupportedError, ShapeError, and EmptyInput, in one small
// shared package rather than one copy per package. Within this module only
// ParseError is produced, by automaton, grammar, and ecfg; matrix reports
// shape mismatches with its own sentinel errors.
package apperr

import (
	"errors"
	"fmt"
)

// EmptyInput is not itself a failure. No function in this module returns
// it: empty inputs are handled by returning an empty result (an empty
// graph yields no pairs; CYK answers the empty word from nullability).
var EmptyInput = errors.New("apperr: empty input")

// Category distinguishes the three "real failure" kinds. EmptyInput is
// deliberately not a Category: it is not a failure, see above.
type Category int

const (
	// CategoryParse marks malformed grammar/regex text: a line without
	// "->", a repeated ECFG head, an unparsable regex.
	CategoryParse Category = iota
	// CategoryUnsupported marks a requested backend or mode unavailable on
	// this host (e.g. a GPU matrix backend).
	CategoryUnsupported
	// CategoryShape marks an internal matrix-shape mismatch: a bug, never
	// user input.
	CategoryShape
)

func (c Category) String() string {
	switch c {
	case CategoryParse:
		return "ParseError"
	case CategoryUnsupported:
		return "UnsupportedError"
	case CategoryShape:
		return "ShapeError"
	default:
		return "UnknownError"
	}
}

// Error is a structured failure value carrying a Category, a message, and
// an optional wrapped cause.
type Error struct {
	Category Category
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Category, letting
// callers write errors.Is(err, apperr.Parse("")) style checks against a
// freshly constructed value of the same category.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Category == other.Category
}

// Parse constructs a CategoryParse error.
func Parse(format string, args ...any) *Error {
	return &Error{Category: CategoryParse, Message: fmt.Sprintf(format, args...)}
}

// Unsupported constructs a CategoryUnsupported error.
func Unsupported(format string, args ...any) *Error {
	return &Error{Category: CategoryUnsupported, Message: fmt.Sprintf(format, args...)}
}

// Shape constructs a CategoryShape error.
func Shape(format string, args ...any) *Error {
	return &Error{Category: CategoryShape, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches cause to err, preserving its Category.
func Wrap(err *Error, cause error) *Error {
	return &Error{Category: err.Category, Message: err.Message, Cause: cause}
}
