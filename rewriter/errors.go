package rewriter

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrMissingBase     = errors.New("power operator has no base")
	ErrMissingExponent = errors.New("power operator has no exponent")
	ErrEmptyOperand    = errors.New("operand is empty after removing parentheses")
	ErrPassIncomplete  = errors.New("rewrite pass found no power operator")
)

// ParseError reports a malformed power expression at a byte offset of the
// string that was being rewritten.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
