// Package lexer turns a JSONPath query string into a flat token stream.
//
// The lexer is whitespace lenient: blank characters (space, tab, LF, CR) are
// skipped between any two tokens and are only significant inside string
// literals. String literals are decoded here, including \uXXXX escapes with
// surrogate pair handling, so the parser only ever sees decoded values.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/jacoelho/jsonpath/internal/token"
)

// maxSafeInteger bounds integer literals per RFC 9535 section 2.1 (I-JSON).
const maxSafeInteger = 1<<53 - 1

// Lexer scans a query string. It borrows the source for the duration of a
// single Tokenize call.
type Lexer struct {
	src string
	pos int
}

// New returns a lexer for the given query source.
func New(src string) *Lexer {
	return &Lexer{src: src}
}

// Tokenize scans the whole source and returns the token stream terminated by
// an EOF token, or the first lexical error encountered.
func Tokenize(src string) ([]token.Token, error) {
	return New(src).Tokenize()
}

// Tokenize scans the remaining source into tokens.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		l.skipBlank()
		if l.pos >= len(l.src) {
			tokens = append(tokens, token.Token{
				Kind: token.EOF,
				Span: token.Span{Start: l.pos, End: l.pos},
			})
			return tokens, nil
		}

		tok, err := l.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func (l *Lexer) skipBlank() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

var twoCharKinds = map[string]token.Kind{
	"..": token.DotDot,
	"&&": token.And,
	"||": token.Or,
	"==": token.Eq,
	"!=": token.Neq,
	"<=": token.Le,
	">=": token.Ge,
}

var oneCharKinds = map[byte]token.Kind{
	'$': token.Root,
	'@': token.Current,
	'[': token.LBracket,
	']': token.RBracket,
	'(': token.LParen,
	')': token.RParen,
	',': token.Comma,
	':': token.Colon,
	'.': token.Dot,
	'*': token.Star,
	'!': token.Bang,
	'?': token.Question,
	'<': token.Lt,
	'>': token.Gt,
}

func (l *Lexer) next() (token.Token, error) {
	start := l.pos

	if l.pos+1 < len(l.src) {
		if kind, ok := twoCharKinds[l.src[l.pos:l.pos+2]]; ok {
			l.pos += 2
			return l.structural(kind, start), nil
		}
	}

	c := l.src[l.pos]
	if kind, ok := oneCharKinds[c]; ok {
		l.pos++
		return l.structural(kind, start), nil
	}

	switch {
	case c == '\'' || c == '"':
		return l.scanString(c)
	case c == '-' || (c >= '0' && c <= '9'):
		return l.scanNumber()
	}

	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	if isNameFirst(r) {
		return l.scanName(), nil
	}

	span := token.Span{Start: start, End: start + size}
	return token.Token{}, errorAt(ErrUnexpectedChar, span, "%q", l.src[start:start+size])
}

func (l *Lexer) structural(kind token.Kind, start int) token.Token {
	return token.Token{
		Kind: kind,
		Text: l.src[start:l.pos],
		Span: token.Span{Start: start, End: l.pos},
	}
}

// scanName scans a member-name shorthand, keyword, or function name.
// Whether an identifier is a function name is decided by a single character
// lookahead: it is one exactly when the next non-blank character is '('.
func (l *Lexer) scanName() token.Token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isNameChar(r) {
			break
		}
		l.pos += size
	}

	text := l.src[start:l.pos]
	span := token.Span{Start: start, End: l.pos}

	switch text {
	case "true":
		return token.Token{Kind: token.True, Text: text, Span: span}
	case "false":
		return token.Token{Kind: token.False, Text: text, Span: span}
	case "null":
		return token.Token{Kind: token.Null, Text: text, Span: span}
	}

	kind := token.Name
	if l.peekPastBlank() == '(' {
		kind = token.Func
	}
	return token.Token{Kind: kind, Text: text, Str: text, Span: span}
}

// peekPastBlank returns the next non-blank byte without consuming anything,
// or 0 at end of input.
func (l *Lexer) peekPastBlank() byte {
	for i := l.pos; i < len(l.src); i++ {
		switch l.src[i] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return l.src[i]
		}
	}
	return 0
}

// scanNumber scans an integer or decimal literal. The grammar follows RFC
// 9535: an optional minus, "0" or a nonzero-led digit run, an optional
// fraction and an optional exponent. A fraction or exponent makes the token a
// Number; otherwise it is an Int. "-0" is only valid as a decimal number, so
// it scans as a Number and is rejected wherever an integer is required.
func (l *Lexer) scanNumber() (token.Token, error) {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}

	if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
		span := token.Span{Start: start, End: l.pos}
		return token.Token{}, errorAt(ErrBadNumber, span, "expected digit after '-'")
	}

	if l.src[l.pos] == '0' {
		l.pos++
		if l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			span := token.Span{Start: start, End: l.pos + 1}
			return token.Token{}, errorAt(ErrBadNumber, span, "leading zero")
		}
	} else {
		l.digits()
	}

	isDecimal := false
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		isDecimal = true
		l.pos++
		if !l.digits() {
			span := token.Span{Start: start, End: l.pos}
			return token.Token{}, errorAt(ErrBadNumber, span, "expected digit after '.'")
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		isDecimal = true
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if !l.digits() {
			span := token.Span{Start: start, End: l.pos}
			return token.Token{}, errorAt(ErrBadNumber, span, "expected exponent digits")
		}
	}

	text := l.src[start:l.pos]
	span := token.Span{Start: start, End: l.pos}

	if !isDecimal && text == "-0" {
		isDecimal = true
	}

	if isDecimal {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, errorAt(ErrBadNumber, span, "%v", err)
		}
		return token.Token{Kind: token.Number, Text: text, Num: f, Span: span}, nil
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Token{}, errorAt(ErrBadNumber, span, "%v", err)
	}
	if i > maxSafeInteger || i < -maxSafeInteger {
		return token.Token{}, errorAt(ErrBadNumber, span, "integer outside interoperable range")
	}
	return token.Token{Kind: token.Int, Text: text, Int: i, Span: span}, nil
}

func (l *Lexer) digits() bool {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	return l.pos > start
}

// scanString scans a single- or double-quoted string literal, decoding
// escapes per RFC 9535 section 2.3.1.
func (l *Lexer) scanString(quote byte) (token.Token, error) {
	start := l.pos
	l.pos++ // opening quote

	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			span := token.Span{Start: start, End: l.pos}
			return token.Token{}, errorAt(ErrUnterminatedString, span, "expected closing %q", string(quote))
		}

		c := l.src[l.pos]
		switch {
		case c == quote:
			l.pos++
			return token.Token{
				Kind: token.Str,
				Text: l.src[start:l.pos],
				Str:  b.String(),
				Span: token.Span{Start: start, End: l.pos},
			}, nil

		case c == '\\':
			r, err := l.scanEscape(quote)
			if err != nil {
				return token.Token{}, err
			}
			b.WriteRune(r)

		case c < 0x20:
			span := token.Span{Start: l.pos, End: l.pos + 1}
			return token.Token{}, errorAt(ErrUnexpectedChar, span, "unescaped control character U+%04X", c)

		default:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if r == utf8.RuneError && size == 1 {
				span := token.Span{Start: l.pos, End: l.pos + 1}
				return token.Token{}, errorAt(ErrUnexpectedChar, span, "invalid UTF-8")
			}
			b.WriteRune(r)
			l.pos += size
		}
	}
}

func (l *Lexer) scanEscape(quote byte) (rune, error) {
	start := l.pos
	l.pos++ // backslash
	if l.pos >= len(l.src) {
		span := token.Span{Start: start, End: l.pos}
		return 0, errorAt(ErrBadEscape, span, "truncated escape")
	}

	c := l.src[l.pos]
	l.pos++
	switch c {
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '/':
		return '/', nil
	case '\\':
		return '\\', nil
	case '\'', '"':
		// Only the delimiting quote may be escaped.
		if c != quote {
			span := token.Span{Start: start, End: l.pos}
			return 0, errorAt(ErrBadEscape, span, `\%s inside %s-quoted literal`, string(c), string(quote))
		}
		return rune(c), nil
	case 'u':
		return l.scanUnicodeEscape(start)
	}

	span := token.Span{Start: start, End: l.pos}
	return 0, errorAt(ErrBadEscape, span, `\%s`, string(c))
}

func (l *Lexer) scanUnicodeEscape(start int) (rune, error) {
	hi, err := l.hex4(start)
	if err != nil {
		return 0, err
	}

	if !utf16.IsSurrogate(rune(hi)) {
		return rune(hi), nil
	}

	// A high surrogate must be followed by a \uXXXX low surrogate.
	if hi >= 0xDC00 {
		span := token.Span{Start: start, End: l.pos}
		return 0, errorAt(ErrBadEscape, span, "unpaired low surrogate U+%04X", hi)
	}
	if l.pos+1 >= len(l.src) || l.src[l.pos] != '\\' || l.src[l.pos+1] != 'u' {
		span := token.Span{Start: start, End: l.pos}
		return 0, errorAt(ErrBadEscape, span, "unpaired high surrogate U+%04X", hi)
	}
	l.pos += 2
	lo, err := l.hex4(start)
	if err != nil {
		return 0, err
	}
	r := utf16.DecodeRune(rune(hi), rune(lo))
	if r == utf8.RuneError {
		span := token.Span{Start: start, End: l.pos}
		return 0, errorAt(ErrBadEscape, span, "invalid surrogate pair U+%04X U+%04X", hi, lo)
	}
	return r, nil
}

func (l *Lexer) hex4(start int) (uint32, error) {
	if l.pos+4 > len(l.src) {
		span := token.Span{Start: start, End: len(l.src)}
		return 0, errorAt(ErrBadEscape, span, "truncated \\u escape")
	}
	var v uint32
	for i := range 4 {
		d := hexDigit(l.src[l.pos+i])
		if d < 0 {
			span := token.Span{Start: start, End: l.pos + i + 1}
			return 0, errorAt(ErrBadEscape, span, "invalid hex digit %q", string(l.src[l.pos+i]))
		}
		v = v<<4 | uint32(d)
	}
	l.pos += 4
	return v, nil
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isNameFirst reports whether r may start a member-name shorthand per RFC
// 9535: ALPHA, '_', or any non-surrogate code point at or above U+0080.
func isNameFirst(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= 0x80:
		return utf8.ValidRune(r)
	}
	return false
}

func isNameChar(r rune) bool {
	return isNameFirst(r) || (r >= '0' && r <= '9')
}
