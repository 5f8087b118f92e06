package evaluator

import (
	"github.com/jacoelho/jsonpath/internal/ast"
)

// maybeValue is the comparable-value domain of filter evaluation: a JSON
// value, or Nothing when a query or function produced no value. Nothing is
// distinct from JSON null.
type maybeValue struct {
	value any
	ok    bool
}

var nothing = maybeValue{}

func someValue(v any) maybeValue {
	return maybeValue{value: v, ok: true}
}

func (e *evaluator) evalLogicalOr(or *ast.LogicalOr, current any) (bool, error) {
	for _, and := range or.Disjuncts {
		match, err := e.evalLogicalAnd(and, current)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

func (e *evaluator) evalLogicalAnd(and *ast.LogicalAnd, current any) (bool, error) {
	for _, basic := range and.Conjuncts {
		match, err := e.evalBasicExpr(basic, current)
		if err != nil {
			return false, err
		}
		if !match {
			return false, nil
		}
	}
	return true, nil
}

func (e *evaluator) evalBasicExpr(basic ast.BasicExpr, current any) (bool, error) {
	switch expr := basic.(type) {
	case *ast.ParenExpr:
		match, err := e.evalLogicalOr(expr.Expr, current)
		if err != nil {
			return false, err
		}
		return match != expr.Negated, nil

	case *ast.ComparisonExpr:
		left, err := e.evalComparable(expr.Left, current)
		if err != nil {
			return false, err
		}
		right, err := e.evalComparable(expr.Right, current)
		if err != nil {
			return false, err
		}
		return compare(expr.Op, left, right), nil

	case *ast.TestExpr:
		match, err := e.evalTest(expr, current)
		if err != nil {
			return false, err
		}
		return match != expr.Negated, nil
	}
	return false, nil
}

// evalTest evaluates an existence test: a filter query is true when it
// selects at least one node, a function call when its LogicalType result is
// true or its NodesType result is non-empty.
func (e *evaluator) evalTest(expr *ast.TestExpr, current any) (bool, error) {
	if expr.Query != nil {
		nodes, err := e.evalFilterQuery(expr.Query, current)
		if err != nil {
			return false, err
		}
		return len(nodes) > 0, nil
	}

	result, err := e.evalFunction(expr.Call, current)
	if err != nil {
		return false, err
	}
	if expr.Call.ReturnType == ast.NodesType {
		return len(result.nodes) > 0, nil
	}
	return result.logical, nil
}

// evalFilterQuery runs an embedded general query with '@' bound to current,
// or from the document root for absolute queries.
func (e *evaluator) evalFilterQuery(query *ast.FilterQuery, current any) ([]Node, error) {
	start := e.root
	if query.Relative {
		start = current
	}

	nodes := []Node{{step: rootStep, value: start}}
	var err error
	for _, seg := range query.Segments {
		nodes, err = e.applySegment(seg, nodes)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// evalSingularQuery resolves a singular query to its single value, or
// Nothing when any step misses.
func (e *evaluator) evalSingularQuery(query *ast.SingularQuery, current any) maybeValue {
	value := e.root
	if query.Relative {
		value = current
	}

	for _, seg := range query.Segments {
		if seg.IsIndex {
			arr, ok := value.([]any)
			if !ok {
				return nothing
			}
			i, ok := normalizeIndex(seg.Index, int64(len(arr)))
			if !ok {
				return nothing
			}
			value = arr[i]
			continue
		}

		obj, ok := asObject(value)
		if !ok {
			return nothing
		}
		v, exists := obj.Get(seg.Name)
		if !exists {
			return nothing
		}
		value = v
	}
	return someValue(value)
}

func (e *evaluator) evalComparable(c ast.Comparable, current any) (maybeValue, error) {
	switch v := c.(type) {
	case ast.Literal:
		return someValue(v.Value), nil

	case *ast.SingularQuery:
		return e.evalSingularQuery(v, current), nil

	case *ast.FunctionCall:
		result, err := e.evalFunction(v, current)
		if err != nil {
			return nothing, err
		}
		return result.value, nil
	}
	return nothing, nil
}
