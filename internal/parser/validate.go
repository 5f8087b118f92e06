package parser

import (
	"github.com/jacoelho/jsonpath/internal/ast"
	"github.com/jacoelho/jsonpath/internal/function"
	"github.com/jacoelho/jsonpath/internal/token"
)

// Validate traverses a parsed query and enforces the well-formed-and-valid
// rules once more: no zero slice step, every function call known with
// matching arity and argument types. Parse reports these with precise spans
// already; Validate is the single authoritative pass and the safety net for
// programmatically assembled trees, so its spans cover the whole query.
func Validate(q *ast.Query) error {
	return validateSegments(q.Segments)
}

func validateSegments(segments []ast.Segment) error {
	for _, seg := range segments {
		for _, sel := range seg.Selectors {
			switch s := sel.(type) {
			case ast.SliceSelector:
				if s.Step != nil && *s.Step == 0 {
					return errorAt(ErrSliceStep, token.Span{}, "")
				}
			case ast.FilterSelector:
				if err := validateLogical(s.Filter); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateLogical(or *ast.LogicalOr) error {
	for _, and := range or.Disjuncts {
		for _, basic := range and.Conjuncts {
			if err := validateBasic(basic); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateBasic(basic ast.BasicExpr) error {
	switch e := basic.(type) {
	case *ast.ParenExpr:
		return validateLogical(e.Expr)

	case *ast.ComparisonExpr:
		if err := validateComparable(e.Left); err != nil {
			return err
		}
		return validateComparable(e.Right)

	case *ast.TestExpr:
		if e.Query != nil {
			return validateSegments(e.Query.Segments)
		}
		if err := testableResult(e.Call, token.Span{}); err != nil {
			return err
		}
		return validateCall(e.Call)
	}
	return nil
}

func validateComparable(c ast.Comparable) error {
	call, ok := c.(*ast.FunctionCall)
	if !ok {
		return nil
	}
	if call.ReturnType != ast.ValueType {
		return errorAt(ErrFunctionType, token.Span{},
			"%s() returns %s and cannot be compared", call.Name, call.ReturnType)
	}
	return validateCall(call)
}

func validateCall(call *ast.FunctionCall) error {
	sig, ok := function.Lookup(call.Name)
	if !ok {
		return errorAt(ErrUnknownFunction, token.Span{}, "%s()", call.Name)
	}
	if len(call.Args) != sig.Arity() {
		return errorAt(ErrFunctionArity, token.Span{},
			"%s() takes %d, got %d", call.Name, sig.Arity(), len(call.Args))
	}

	for i, arg := range call.Args {
		if err := checkArgType(arg, sig.Params[i], call.Name, i, token.Span{}); err != nil {
			return err
		}
		switch a := arg.(type) {
		case *ast.FunctionCall:
			if err := validateCall(a); err != nil {
				return err
			}
		case *ast.FilterQuery:
			if err := validateSegments(a.Segments); err != nil {
				return err
			}
		case *ast.LogicalOr:
			if err := validateLogical(a); err != nil {
				return err
			}
		}
	}
	return nil
}
