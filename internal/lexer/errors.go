package lexer

import (
	"errors"
	"fmt"

	"github.com/jacoelho/jsonpath/internal/token"
)

var (
	// ErrUnterminatedString indicates a string literal without a closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrBadEscape indicates an invalid escape sequence inside a string literal.
	ErrBadEscape = errors.New("invalid escape sequence")

	// ErrBadNumber indicates a malformed number literal.
	ErrBadNumber = errors.New("malformed number literal")

	// ErrUnexpectedChar indicates a character with no meaning at its position.
	ErrUnexpectedChar = errors.New("unexpected character")
)

// Error is a lexical error with the byte span of the offending input.
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
