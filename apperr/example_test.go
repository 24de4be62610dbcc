package apperr_test

import (
	"errors"
	"fmt"

	"github.com/yarovoy/cfpq/apperr"
)

// ExampleError demonstrates category-based error construction and
// matching with errors.Is.
func ExampleError() {
	err := apperr.Parse("grammar line %q: expected exactly one \"->\"", "S a b")
	fmt.Println(err)
	fmt.Println(errors.Is(err, apperr.Parse("")))
	fmt.Println(errors.Is(err, apperr.Shape("")))

	// Output:
	// ParseError: grammar line "S a b": expected exactly one "->"
	// true
	// false
}
