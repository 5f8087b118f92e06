package parser

import (
	"errors"
	"fmt"

	"github.com/jacoelho/jsonpath/internal/token"
)

// Grammar errors: the token stream does not match a production.
var (
	// ErrUnexpectedToken indicates the parser found a token it cannot use in
	// the current production.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrComparisonChain indicates a chained comparison such as a == b == c.
	// Comparison does not associate.
	ErrComparisonChain = errors.New("comparison is not associative")
)

// Validity errors: the query is grammatical but violates a semantic rule.
var (
	// ErrNotSingular indicates a general query in a position that requires a
	// singular query.
	ErrNotSingular = errors.New("not a singular query")

	// ErrUnknownFunction indicates a call to a function that is not
	// registered.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrFunctionArity indicates a call with the wrong number of arguments.
	ErrFunctionArity = errors.New("wrong number of function arguments")

	// ErrFunctionArg indicates a function argument whose static type does
	// not fit the declared parameter type.
	ErrFunctionArg = errors.New("invalid function argument")

	// ErrFunctionType indicates a function result used in a position its
	// declared type does not permit.
	ErrFunctionType = errors.New("function type mismatch")

	// ErrSliceStep indicates a slice selector with step zero.
	ErrSliceStep = errors.New("slice step cannot be zero")
)

// IsValidityError reports whether err is a rules violation rather than a
// grammar violation. The distinction feeds the public error kinds.
func IsValidityError(err error) bool {
	for _, sentinel := range []error{
		ErrNotSingular,
		ErrUnknownFunction,
		ErrFunctionArity,
		ErrFunctionArg,
		ErrFunctionType,
		ErrSliceStep,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Error is a parse or validity error with the byte span of the offending
// tokens.
type Error struct {
	Err    error
	Detail string
	Span   token.Span
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Span.Start)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Span.Start, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorAt(sentinel error, span token.Span, format string, args ...any) *Error {
	return &Error{
		Err:    sentinel,
		Detail: fmt.Sprintf(format, args...),
		Span:   span,
	}
}
