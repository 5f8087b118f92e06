package evaluator

import (
	"errors"
	"reflect"
	"testing"
)

func TestFilterComparisons(t *testing.T) {
	doc := decode(t, storeJSON)

	tests := []struct {
		name  string
		query string
		want  []any
	}{
		{
			name:  "numeric_less_than",
			query: "$.store.book[?@.price < 10].title",
			want:  []any{"Sayings of the Century", "Moby Dick"},
		},
		{
			name:  "string_equality",
			query: "$.store.book[?@.category == 'fiction'].title",
			want:  []any{"Sword of Honour", "Moby Dick", "The Lord of the Rings"},
		},
		{
			name:  "existence",
			query: "$.store.book[?@.isbn].title",
			want:  []any{"Moby Dick", "The Lord of the Rings"},
		},
		{
			name:  "negated_existence",
			query: "$.store.book[?!@.isbn].title",
			want:  []any{"Sayings of the Century", "Sword of Honour"},
		},
		{
			name:  "conjunction",
			query: "$.store.book[?@.category == 'fiction' && @.price < 10].title",
			want:  []any{"Moby Dick"},
		},
		{
			name:  "disjunction",
			query: "$.store.book[?@.price < 9 || @.price > 20].title",
			want:  []any{"Sayings of the Century", "Moby Dick", "The Lord of the Rings"},
		},
		{
			name:  "parenthesized_negation",
			query: "$.store.book[?!(@.price < 10)].title",
			want:  []any{"Sword of Honour", "The Lord of the Rings"},
		},
		{
			name:  "absolute_query_in_filter",
			query: "$.store.book[?@.price == $.store.bicycle.price]",
			want:  nil,
		},
		{
			name:  "filter_over_object_members",
			query: "$.store.bicycle[?@ == 'red']",
			want:  []any{"red"},
		},
		{
			name:  "greater_equal",
			query: "$.store.book[?@.price >= 12.99].title",
			want:  []any{"Sword of Honour", "The Lord of the Rings"},
		},
		{
			name:  "string_ordering",
			query: "$.store.book[?@.author < 'F'].title",
			want:  []any{"Sword of Honour"},
		},
		{
			name:  "ordering_on_mixed_types_is_false",
			query: "$.store.book[?@.title < 10]",
			want:  nil,
		},
		{
			name:  "ordering_on_missing_is_false",
			query: "$.store.book[?@.missing < 10]",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalQuery(t, tt.query, doc).Values()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) values = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterNothingAndNull(t *testing.T) {
	doc := decode(t, `[
	  {"id": 1, "a": null},
	  {"id": 2, "a": 0},
	  {"id": 3}
	]`)

	tests := []struct {
		name  string
		query string
		want  []any
	}{
		{
			// Both sides missing: Nothing == Nothing holds.
			name:  "missing_equals_missing",
			query: "$[?@.missing == @.alsoMissing].id",
			want:  []any{number("1"), number("2"), number("3")},
		},
		{
			// null is a value, not Nothing.
			name:  "null_is_not_missing",
			query: "$[?@.a == null].id",
			want:  []any{number("1")},
		},
		{
			name:  "missing_differs_from_null",
			query: "$[?@.missing == null].id",
			want:  nil,
		},
		{
			name:  "missing_not_equal_value",
			query: "$[?@.a != 0].id",
			want:  []any{number("1"), number("3")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalQuery(t, tt.query, doc).Values()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) values = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestNumericEqualityAcrossRepresentations(t *testing.T) {
	doc := decode(t, `[{"a": 1}, {"a": 1.0}, {"a": 2}]`)

	got := evalQuery(t, "$[?@.a == 1.0]", doc)
	if got.Len() != 2 {
		t.Errorf("1 == 1.0 matched %d elements, want 2", got.Len())
	}
}

func TestDeepEquality(t *testing.T) {
	doc := decode(t, `[
	  {"v": [1, [2, 3]]},
	  {"v": [1, [2, 4]]},
	  {"v": {"x": 1, "y": {"z": 2}}}
	]`)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{name: "array_deep_equal", query: "$[?@.v == $[0].v]", count: 1},
		{name: "object_deep_equal", query: "$[?@.v == $[2].v]", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evalQuery(t, tt.query, doc).Len(); got != tt.count {
				t.Errorf("Evaluate(%q) matched %d, want %d", tt.query, got, tt.count)
			}
		})
	}
}

func TestFunctionExtensions(t *testing.T) {
	doc := decode(t, `[
	  {"name": "alpha", "tags": ["x", "y"]},
	  {"name": "beta", "tags": ["x"]},
	  {"name": "ab", "tags": []}
	]`)

	tests := []struct {
		name  string
		query string
		want  []any
	}{
		{
			name:  "length_of_string",
			query: "$[?length(@.name) == 5].name",
			want:  []any{"alpha"},
		},
		{
			name:  "length_of_array",
			query: "$[?length(@.tags) == 1].name",
			want:  []any{"beta"},
		},
		{
			name:  "length_of_missing_is_nothing",
			query: "$[?length(@.missing) == 0].name",
			want:  nil,
		},
		{
			name:  "count_children",
			query: "$[?count(@.tags[*]) == 2].name",
			want:  []any{"alpha"},
		},
		{
			name:  "count_singular",
			query: "$[?count(@.name) == 1].name",
			want:  []any{"alpha", "beta", "ab"},
		},
		{
			name:  "match_is_anchored",
			query: "$[?match(@.name, 'a.')].name",
			want:  []any{"ab"},
		},
		{
			name:  "search_is_unanchored",
			query: "$[?search(@.name, 'a.')].name",
			want:  []any{"alpha", "ab"},
		},
		{
			name:  "match_non_string_is_false",
			query: "$[?match(@.tags, 'x')].name",
			want:  nil,
		},
		{
			name:  "value_of_singleton",
			query: "$[?value(@.tags[0]) == 'x'].name",
			want:  []any{"alpha", "beta"},
		},
		{
			name:  "value_of_many_is_nothing",
			query: "$[?value(@.tags[*]) == 'x'].name",
			want:  []any{"beta"},
		},
		{
			name:  "nested_calls",
			query: "$[?length(value(@.tags)) == 2].name",
			want:  []any{"alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalQuery(t, tt.query, doc).Values()
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) values = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestCodePointLength(t *testing.T) {
	doc := decode(t, `[{"s": "日本語"}]`)

	got := evalQuery(t, "$[?length(@.s) == 3]", doc)
	if got.Len() != 1 {
		t.Errorf("length() counted bytes, not code points")
	}
}

func TestRegexOracleErrorSurfaces(t *testing.T) {
	doc := decode(t, `[{"a": "x"}]`)

	_, err := tryEval(t, "$[?match(@.a, '(')]", doc)
	if err == nil {
		t.Fatal("Evaluate succeeded, want regex oracle error")
	}
	var regexErr *RegexError
	if !errors.As(err, &regexErr) {
		t.Fatalf("error is %T, want *RegexError", err)
	}
	if regexErr.Pattern != "(" {
		t.Errorf("pattern = %q, want %q", regexErr.Pattern, "(")
	}
}
