package jsonpath

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const storeJSON = `{ "store": { "book": [
  { "category": "ref", "price": 8.95, "title": "A" },
  { "category": "fic", "price": 12.99, "title": "B" },
  { "category": "fic", "price": 22.99, "title": "C" }
]}}`

func decode(t *testing.T, s string) any {
	t.Helper()
	v, err := DecodeJSON(strings.NewReader(s))
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	return v
}

func evaluate(t *testing.T, query string, doc any) *NodeList {
	t.Helper()
	q, err := Compile(query)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", query, err)
	}
	list, err := q.Evaluate(doc)
	if err != nil {
		t.Fatalf("Evaluate(%q) error: %v", query, err)
	}
	return list
}

func TestEndToEnd(t *testing.T) {
	doc := decode(t, storeJSON)

	tests := []struct {
		name      string
		query     string
		want      []any
		wantPaths []string
	}{
		{
			name:  "all_titles",
			query: "$.store.book[*].title",
			want:  []any{"A", "B", "C"},
			wantPaths: []string{
				"$['store']['book'][0]['title']",
				"$['store']['book'][1]['title']",
				"$['store']['book'][2]['title']",
			},
		},
		{
			name:  "cheap_titles",
			query: "$.store.book[?@.price < 10].title",
			want:  []any{"A"},
		},
		{
			name:  "all_prices",
			query: "$..price",
			want:  []any{json.Number("8.95"), json.Number("12.99"), json.Number("22.99")},
		},
		{
			name:  "fiction_books",
			query: `$.store.book[?@.category == "fic"].title`,
			want:  []any{"B", "C"},
		},
		{
			name:  "last_title",
			query: "$.store.book[-1].title",
			want:  []any{"C"},
		},
		{
			name:  "stepped_slice",
			query: "$.store.book[0:3:2].title",
			want:  []any{"A", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := evaluate(t, tt.query, doc)
			if got := list.Values(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("values = %v, want %v", got, tt.want)
			}
			if tt.wantPaths != nil {
				if got := list.Paths(); !reflect.DeepEqual(got, tt.wantPaths) {
					t.Errorf("paths = %v, want %v", got, tt.wantPaths)
				}
			}
		})
	}
}

// Every normalized path must evaluate back to exactly the node it names.
func TestNormalizedPathRoundTrip(t *testing.T) {
	doc := decode(t, storeJSON)

	for node := range evaluate(t, "$..*", doc).All() {
		single := evaluate(t, node.Path(), doc)
		if single.Len() != 1 {
			t.Fatalf("path %s selected %d nodes, want 1", node.Path(), single.Len())
		}
		got := single.Nodes()[0]
		if got.Path() != node.Path() {
			t.Errorf("round-trip path = %s, want %s", got.Path(), node.Path())
		}
		if !reflect.DeepEqual(got.Value(), node.Value()) {
			t.Errorf("round-trip value of %s = %v, want %v", node.Path(), got.Value(), node.Value())
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantKind ErrorKind
	}{
		{name: "lex", query: "$['abc", wantKind: KindLex},
		{name: "parse", query: "$.store.", wantKind: KindParse},
		{name: "validate_singular", query: "$[?@.* == 1]", wantKind: KindValidate},
		{name: "validate_step", query: "$[0:1:0]", wantKind: KindValidate},
		{name: "validate_function", query: "$[?count(1) == 1]", wantKind: KindValidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.query)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want %v error", tt.query, tt.wantKind)
			}
			var qErr *Error
			if !errors.As(err, &qErr) {
				t.Fatalf("Compile(%q) error is %T, want *Error", tt.query, err)
			}
			if qErr.Kind != tt.wantKind {
				t.Errorf("Compile(%q) kind = %v, want %v", tt.query, qErr.Kind, tt.wantKind)
			}
			if qErr.Message == "" {
				t.Errorf("Compile(%q) error has no message", tt.query)
			}
		})
	}
}

func TestRegexErrorKind(t *testing.T) {
	q, err := Compile("$[?match(@.a, '(')]")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}

	_, err = q.Evaluate(decode(t, `[{"a": "x"}]`))
	if err == nil {
		t.Fatal("Evaluate succeeded, want regex error")
	}
	var qErr *Error
	if !errors.As(err, &qErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if qErr.Kind != KindRegex {
		t.Errorf("kind = %v, want %v", qErr.Kind, KindRegex)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic on an invalid query")
		}
	}()
	MustCompile("not a query")
}

func TestQueryString(t *testing.T) {
	q := MustCompile("$.store.book[?@.price<10]")
	want := "$['store']['book'][?@['price'] < 10]"
	if got := q.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestQueryIsReusable(t *testing.T) {
	q := MustCompile("$..price")
	doc := decode(t, storeJSON)

	first, err := q.Evaluate(doc)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	second, err := q.Evaluate(doc)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if !reflect.DeepEqual(first.Values(), second.Values()) {
		t.Error("repeated evaluation differs")
	}

	other := decode(t, `{"price": 1}`)
	list, err := q.Evaluate(other)
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if list.Len() != 1 {
		t.Errorf("evaluation against second document returned %d nodes, want 1", list.Len())
	}
}

func TestEvaluateScalarDocument(t *testing.T) {
	q := MustCompile("$")
	list, err := q.Evaluate("hello")
	if err != nil {
		t.Fatalf("Evaluate error: %v", err)
	}
	if list.Len() != 1 || list.Values()[0] != "hello" {
		t.Errorf("$ over scalar = %v, want [hello]", list.Values())
	}
	if list.Paths()[0] != "$" {
		t.Errorf("path = %q, want %q", list.Paths()[0], "$")
	}
}
