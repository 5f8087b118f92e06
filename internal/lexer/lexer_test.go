package lexer

import (
	"errors"
	"testing"

	"github.com/jacoelho/jsonpath/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func equalKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []token.Kind
	}{
		{
			name:  "root_only",
			query: "$",
			want:  []token.Kind{token.Root, token.EOF},
		},
		{
			name:  "dotted_members",
			query: "$.store.book",
			want:  []token.Kind{token.Root, token.Dot, token.Name, token.Dot, token.Name, token.EOF},
		},
		{
			name:  "descendant_wildcard",
			query: "$..*",
			want:  []token.Kind{token.Root, token.DotDot, token.Star, token.EOF},
		},
		{
			name:  "bracketed_name",
			query: "$['a b']",
			want:  []token.Kind{token.Root, token.LBracket, token.Str, token.RBracket, token.EOF},
		},
		{
			name:  "slice",
			query: "$[1:10:2]",
			want: []token.Kind{
				token.Root, token.LBracket,
				token.Int, token.Colon, token.Int, token.Colon, token.Int,
				token.RBracket, token.EOF,
			},
		},
		{
			name:  "filter_comparison",
			query: "$[?@.price <= 10.5]",
			want: []token.Kind{
				token.Root, token.LBracket, token.Question,
				token.Current, token.Dot, token.Name, token.Le, token.Number,
				token.RBracket, token.EOF,
			},
		},
		{
			name:  "logical_operators",
			query: "$[?@.a && @.b || !@.c]",
			want: []token.Kind{
				token.Root, token.LBracket, token.Question,
				token.Current, token.Dot, token.Name, token.And,
				token.Current, token.Dot, token.Name, token.Or,
				token.Bang, token.Current, token.Dot, token.Name,
				token.RBracket, token.EOF,
			},
		},
		{
			name:  "function_call",
			query: "$[?match(@.a, 'x')]",
			want: []token.Kind{
				token.Root, token.LBracket, token.Question,
				token.Func, token.LParen,
				token.Current, token.Dot, token.Name, token.Comma, token.Str,
				token.RParen, token.RBracket, token.EOF,
			},
		},
		{
			name:  "keyword_literals",
			query: "$[?@.a == true && @.b != null]",
			want: []token.Kind{
				token.Root, token.LBracket, token.Question,
				token.Current, token.Dot, token.Name, token.Eq, token.True, token.And,
				token.Current, token.Dot, token.Name, token.Neq, token.Null,
				token.RBracket, token.EOF,
			},
		},
		{
			name:  "whitespace_everywhere",
			query: " $ [ ? @ . a == 1 ] ",
			want: []token.Kind{
				token.Root, token.LBracket, token.Question,
				token.Current, token.Dot, token.Name, token.Eq, token.Int,
				token.RBracket, token.EOF,
			},
		},
		{
			name:  "negative_index",
			query: "$[-1]",
			want:  []token.Kind{token.Root, token.LBracket, token.Int, token.RBracket, token.EOF},
		},
		{
			name:  "unicode_shorthand",
			query: "$.日本語",
			want:  []token.Kind{token.Root, token.Dot, token.Name, token.EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.query)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.query, err)
			}
			if got := kinds(toks); !equalKinds(got, tt.want) {
				t.Errorf("Tokenize(%q) kinds = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		index   int
		wantStr string
		wantInt int64
		wantNum float64
	}{
		{name: "identifier", query: "$.store", index: 2, wantStr: "store"},
		{name: "integer", query: "$[42]", index: 2, wantInt: 42},
		{name: "negative_integer", query: "$[-42]", index: 2, wantInt: -42},
		{name: "decimal", query: "$[?@.a == 1.25]", index: 7, wantNum: 1.25},
		{name: "exponent", query: "$[?@.a == 2e3]", index: 7, wantNum: 2000},
		{name: "simple_string", query: "$['abc']", index: 2, wantStr: "abc"},
		{name: "double_quoted", query: `$["abc"]`, index: 2, wantStr: "abc"},
		{name: "escaped_newline", query: `$['a\nb']`, index: 2, wantStr: "a\nb"},
		{name: "escaped_quote", query: `$['don\'t']`, index: 2, wantStr: "don't"},
		{name: "unicode_escape", query: "$['\\u263a']", index: 2, wantStr: "☺"},
		{name: "surrogate_pair", query: "$['\\uD834\\uDD1E']", index: 2, wantStr: "\U0001D11E"},
		{name: "function_name", query: "$[?count(@.a) == 1]", index: 3, wantStr: "count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.query)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.query, err)
			}
			tok := toks[tt.index]
			if tok.Str != tt.wantStr || tok.Int != tt.wantInt || tok.Num != tt.wantNum {
				t.Errorf("token %d of %q = %+v, want str %q int %d num %v",
					tt.index, tt.query, tok, tt.wantStr, tt.wantInt, tt.wantNum)
			}
		})
	}
}

func TestNegativeZeroIsDecimal(t *testing.T) {
	toks, err := Tokenize("$[-0]")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks[2].Kind != token.Number {
		t.Errorf("-0 lexed as %v, want %v", toks[2].Kind, token.Number)
	}
}

func TestFunctionLookaheadSkipsBlank(t *testing.T) {
	toks, err := Tokenize("$[?length (@.a) == 1]")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if toks[3].Kind != token.Func {
		t.Errorf("identifier before blank-separated '(' lexed as %v, want %v", toks[3].Kind, token.Func)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantErr   error
		wantStart int
	}{
		{name: "unterminated_string", query: "$['abc", wantErr: ErrUnterminatedString, wantStart: 2},
		{name: "unterminated_double", query: `$["abc`, wantErr: ErrUnterminatedString, wantStart: 2},
		{name: "leading_zero", query: "$[01]", wantErr: ErrBadNumber, wantStart: 2},
		{name: "lonely_minus", query: "$[-]", wantErr: ErrBadNumber, wantStart: 2},
		{name: "dangling_fraction", query: "$[?@.a == 1.]", wantErr: ErrBadNumber, wantStart: 10},
		{name: "empty_exponent", query: "$[?@.a == 1e]", wantErr: ErrBadNumber, wantStart: 10},
		{name: "huge_integer", query: "$[9007199254740992]", wantErr: ErrBadNumber, wantStart: 2},
		{name: "bad_escape", query: `$['a\q']`, wantErr: ErrBadEscape, wantStart: 4},
		{name: "wrong_quote_escape", query: `$['a\"b']`, wantErr: ErrBadEscape, wantStart: 4},
		{name: "truncated_unicode", query: `$['\u12']`, wantErr: ErrBadEscape, wantStart: 3},
		{name: "lone_high_surrogate", query: `$['\uD834']`, wantErr: ErrBadEscape, wantStart: 3},
		{name: "lone_low_surrogate", query: `$['\uDD1E']`, wantErr: ErrBadEscape, wantStart: 3},
		{name: "unexpected_char", query: "#", wantErr: ErrUnexpectedChar, wantStart: 0},
		{name: "control_char_in_string", query: "$['a\x01b']", wantErr: ErrUnexpectedChar, wantStart: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.query)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error %v", tt.query, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Tokenize(%q) error = %v, want %v", tt.query, err, tt.wantErr)
			}
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize(%q) error is %T, want *Error", tt.query, err)
			}
			if lexErr.Span.Start != tt.wantStart {
				t.Errorf("Tokenize(%q) error start = %d, want %d", tt.query, lexErr.Span.Start, tt.wantStart)
			}
		})
	}
}
