package evaluator

import (
	"encoding/json"

	"github.com/jacoelho/jsonpath/internal/ast"
)

// compare applies a comparison operator to two comparable values, following
// RFC 9535 section 2.3.5.2.2: == holds between two Nothings or two deeply
// equal values; ordering is only defined between two numbers or two
// strings; every other combination is false, never an error.
func compare(op ast.CompOp, left, right maybeValue) bool {
	switch op {
	case ast.OpEq:
		return equal(left, right)
	case ast.OpNeq:
		return !equal(left, right)
	case ast.OpLt:
		return less(left, right)
	case ast.OpLe:
		return less(left, right) || equal(left, right)
	case ast.OpGt:
		return less(right, left)
	case ast.OpGe:
		return less(right, left) || equal(left, right)
	}
	return false
}

func equal(left, right maybeValue) bool {
	if !left.ok || !right.ok {
		return left.ok == right.ok
	}
	return jsonEqual(left.value, right.value)
}

func less(left, right maybeValue) bool {
	if !left.ok || !right.ok {
		return false
	}

	if ln, ok := numberValue(left.value); ok {
		rn, ok := numberValue(right.value)
		return ok && ln < rn
	}
	if ls, ok := left.value.(string); ok {
		rs, ok := right.value.(string)
		return ok && ls < rs
	}
	return false
}

// jsonEqual is deep JSON equality: numbers compare numerically regardless
// of representation, arrays elementwise, objects by unordered member
// equality.
func jsonEqual(a, b any) bool {
	if an, ok := numberValue(a); ok {
		bn, ok := numberValue(b)
		return ok && an == bn
	}

	if ao, ok := asObject(a); ok {
		bo, ok := asObject(b)
		if !ok || ao.Len() != bo.Len() {
			return false
		}
		for key, item := range ao.All() {
			other, exists := bo.Get(key)
			if !exists || !jsonEqual(item, other) {
				return false
			}
		}
		return true
	}

	switch av := a.(type) {
	case nil:
		return b == nil

	case bool:
		bv, ok := b.(bool)
		return ok && av == bv

	case string:
		bv, ok := b.(string)
		return ok && av == bv

	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// numberValue extracts a numeric value from any of the number
// representations the value model admits.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}
