package expr

import (
	"errors"
	"fmt"
)

var (
	ErrTokenize         = errors.New("tokenize error")
	ErrRangeTooLarge    = errors.New("range too large")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrArithmetic       = errors.New("arithmetic error")
	ErrStackUnderflow   = errors.New("operand stack underflow")
	ErrUnbalancedParen  = errors.New("unbalanced parenthesis")
	ErrMalformedResult  = errors.New("malformed result")
)

// Error is returned for every evaluation failure. Kind is one of the
// sentinel errors above and is what errors.Is matches against.
type Error struct {
	Kind   error
	Pos    int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Pos, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Detail: fmt.Sprintf(format, args...)}
}
