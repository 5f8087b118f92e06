package evaluator

import (
	"unicode/utf8"

	"github.com/jacoelho/jsonpath/internal/ast"
	"github.com/jacoelho/jsonpath/internal/function"
)

// funcResult holds a function result in whichever of the three static types
// the function declares.
type funcResult struct {
	value   maybeValue // ValueType
	logical bool       // LogicalType
	nodes   []Node     // NodesType
}

// evalFunction evaluates a registered function call. Argument evaluation
// follows the declared parameter types; the registry and the parser have
// already agreed on arity and convertibility.
func (e *evaluator) evalFunction(call *ast.FunctionCall, current any) (funcResult, error) {
	sig, ok := function.Lookup(call.Name)
	if !ok {
		return funcResult{}, nil
	}

	args := make([]funcResult, len(call.Args))
	for i, arg := range call.Args {
		v, err := e.evalArg(arg, sig.Params[i], current)
		if err != nil {
			return funcResult{}, err
		}
		args[i] = v
	}

	switch call.Name {
	case "length":
		return funcResult{value: lengthOf(args[0].value)}, nil

	case "count":
		return funcResult{value: someValue(int64(len(args[0].nodes)))}, nil

	case "match":
		return e.regexTest(args[0].value, args[1].value, true)

	case "search":
		return e.regexTest(args[0].value, args[1].value, false)

	case "value":
		if len(args[0].nodes) == 1 {
			return funcResult{value: someValue(args[0].nodes[0].value)}, nil
		}
		return funcResult{value: nothing}, nil
	}
	return funcResult{}, nil
}

// evalArg evaluates one argument into the declared parameter type, applying
// the implicit conversions checked at parse time: a singular query becomes
// its value, a nodelist feeding LogicalType becomes a non-emptiness test.
func (e *evaluator) evalArg(arg ast.FunctionArg, want ast.FuncType, current any) (funcResult, error) {
	switch want {
	case ast.ValueType:
		switch a := arg.(type) {
		case ast.Literal:
			return funcResult{value: someValue(a.Value)}, nil
		case *ast.SingularQuery:
			return funcResult{value: e.evalSingularQuery(a, current)}, nil
		case *ast.FunctionCall:
			return e.evalFunction(a, current)
		}

	case ast.NodesType:
		switch a := arg.(type) {
		case *ast.SingularQuery:
			nodes, err := e.evalFilterQuery(singularAsGeneral(a), current)
			if err != nil {
				return funcResult{}, err
			}
			return funcResult{nodes: nodes}, nil
		case *ast.FilterQuery:
			nodes, err := e.evalFilterQuery(a, current)
			if err != nil {
				return funcResult{}, err
			}
			return funcResult{nodes: nodes}, nil
		case *ast.FunctionCall:
			return e.evalFunction(a, current)
		}

	case ast.LogicalType:
		switch a := arg.(type) {
		case *ast.LogicalOr:
			match, err := e.evalLogicalOr(a, current)
			if err != nil {
				return funcResult{}, err
			}
			return funcResult{logical: match}, nil
		case *ast.SingularQuery:
			return funcResult{logical: e.evalSingularQuery(a, current).ok}, nil
		case *ast.FilterQuery:
			nodes, err := e.evalFilterQuery(a, current)
			if err != nil {
				return funcResult{}, err
			}
			return funcResult{logical: len(nodes) > 0}, nil
		case *ast.FunctionCall:
			result, err := e.evalFunction(a, current)
			if err != nil {
				return funcResult{}, err
			}
			if a.ReturnType == ast.NodesType {
				return funcResult{logical: len(result.nodes) > 0}, nil
			}
			return result, nil
		}
	}
	return funcResult{}, nil
}

// singularAsGeneral rebuilds a singular query as a general one, for
// NodesType positions that want the nodelist rather than the value.
func singularAsGeneral(q *ast.SingularQuery) *ast.FilterQuery {
	segments := make([]ast.Segment, len(q.Segments))
	for i, seg := range q.Segments {
		var sel ast.Selector
		if seg.IsIndex {
			sel = ast.IndexSelector{Index: seg.Index}
		} else {
			sel = ast.NameSelector{Name: seg.Name}
		}
		segments[i] = ast.Segment{Selectors: []ast.Selector{sel}}
	}
	return &ast.FilterQuery{Relative: q.Relative, Segments: segments}
}

// lengthOf implements length(): code points of a string, elements of an
// array, members of an object, Nothing otherwise.
func lengthOf(v maybeValue) maybeValue {
	if !v.ok {
		return nothing
	}
	if obj, ok := asObject(v.value); ok {
		return someValue(int64(obj.Len()))
	}
	switch value := v.value.(type) {
	case string:
		return someValue(int64(utf8.RuneCountInString(value)))
	case []any:
		return someValue(int64(len(value)))
	}
	return nothing
}

// regexTest implements match() and search(). Both operands must be strings,
// otherwise the result is false. Oracle failures are the only evaluation
// errors the engine can produce.
func (e *evaluator) regexTest(text, pattern maybeValue, anchored bool) (funcResult, error) {
	textStr, ok := stringValue(text)
	if !ok {
		return funcResult{logical: false}, nil
	}
	patternStr, ok := stringValue(pattern)
	if !ok {
		return funcResult{logical: false}, nil
	}

	matched, err := e.oracle.Test(patternStr, textStr, anchored)
	if err != nil {
		return funcResult{}, &RegexError{Pattern: patternStr, Err: err}
	}
	return funcResult{logical: matched}, nil
}

func stringValue(v maybeValue) (string, bool) {
	if !v.ok {
		return "", false
	}
	s, ok := v.value.(string)
	return s, ok
}
