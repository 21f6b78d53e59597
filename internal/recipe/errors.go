package recipe

import (
	"errors"
	"fmt"
)

// Parse error taxonomy. Errors returned from Parse wrap one of these
// sentinels inside a ParseError carrying the line number.
var (
	ErrTooFewArguments  = errors.New("recipe: too few arguments")
	ErrTooManyArguments = errors.New("recipe: too many arguments")
	ErrNoUnit           = errors.New("recipe: missing unit separator")
	ErrInvalidUnit      = errors.New("recipe: unit not valid for this quantity")
	ErrUnknownUnit      = errors.New("recipe: unknown unit")
	ErrMalformedNumber  = errors.New("recipe: malformed number")
	ErrUnknownDirective = errors.New("recipe: unknown directive")
	ErrMissingDirective = errors.New("recipe: missing directive")
)

// ParseError reports where in the recipe text a parse failure occurred.
type ParseError struct {
	Line      int
	Directive string
	Wrapped   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %v", e.Line, e.Directive, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
