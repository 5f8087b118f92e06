// Package evaluator walks a compiled JSONPath AST over a decoded JSON value
// and produces the nodelist of matching locations.
//
// The walk is depth-first, left to right, and never mutates the document:
// result nodes alias it. Object members are visited in the insertion order
// the document carries (*value.Object); plain map[string]any documents have
// no such order and fall back to sorted key order for determinism.
// Evaluation is infallible for a validated AST except for regex oracle
// failures inside match() and search(), which surface as *RegexError.
package evaluator

import (
	"github.com/jacoelho/jsonpath/internal/ast"
	"github.com/jacoelho/jsonpath/internal/function"
	"github.com/jacoelho/jsonpath/internal/stack"
)

// Evaluate runs the query against root and returns the resulting nodelist.
func Evaluate(q *ast.Query, root any, oracle function.RegexOracle) (*NodeList, error) {
	e := &evaluator{root: root, oracle: oracle}

	nodes := []Node{{step: rootStep, value: root}}
	var err error
	for _, seg := range q.Segments {
		nodes, err = e.applySegment(seg, nodes)
		if err != nil {
			return nil, err
		}
	}
	return &NodeList{nodes: nodes}, nil
}

type evaluator struct {
	root   any
	oracle function.RegexOracle
}

// applySegment applies one segment to every node of the incoming list, in
// order, and returns the concatenated results.
func (e *evaluator) applySegment(seg ast.Segment, input []Node) ([]Node, error) {
	var out []Node
	var err error
	for _, n := range input {
		if seg.Descendant {
			for _, visited := range descendants(n) {
				out, err = e.applySelectors(seg.Selectors, visited, out)
				if err != nil {
					return nil, err
				}
			}
			continue
		}
		out, err = e.applySelectors(seg.Selectors, n, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (e *evaluator) applySelectors(selectors []ast.Selector, n Node, out []Node) ([]Node, error) {
	for _, sel := range selectors {
		switch s := sel.(type) {
		case ast.NameSelector:
			if obj, ok := asObject(n.value); ok {
				if v, exists := obj.Get(s.Name); exists {
					out = append(out, Node{step: n.step.child(s.Name), value: v})
				}
			}

		case ast.WildcardSelector:
			out = append(out, children(n)...)

		case ast.IndexSelector:
			if arr, ok := n.value.([]any); ok {
				if i, ok := normalizeIndex(s.Index, int64(len(arr))); ok {
					out = append(out, Node{step: n.step.elem(i), value: arr[i]})
				}
			}

		case ast.SliceSelector:
			if arr, ok := n.value.([]any); ok {
				out = appendSlice(out, n, arr, s)
			}

		case ast.FilterSelector:
			var err error
			out, err = e.appendFiltered(out, n, s.Filter)
			if err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// children returns the child nodes of n in document order: object members
// in insertion order, array elements by index. Primitives have none.
func children(n Node) []Node {
	if obj, ok := asObject(n.value); ok {
		out := make([]Node, 0, obj.Len())
		for key, item := range obj.All() {
			out = append(out, Node{step: n.step.child(key), value: item})
		}
		return out
	}
	if arr, ok := n.value.([]any); ok {
		out := make([]Node, 0, len(arr))
		for i, item := range arr {
			out = append(out, Node{step: n.step.elem(int64(i)), value: item})
		}
		return out
	}
	return nil
}

// descendants returns n and every node below it in pre-order. The frontier
// is an explicit stack so document depth does not become call-stack depth.
func descendants(n Node) []Node {
	frontier := stack.NewWithCapacity[Node](16)
	frontier.Push(n)

	var out []Node
	for !frontier.IsEmpty() {
		cur, _ := frontier.Pop()
		out = append(out, cur)

		kids := children(cur)
		for i := len(kids) - 1; i >= 0; i-- {
			frontier.Push(kids[i])
		}
	}
	return out
}

// normalizeIndex maps a possibly negative index into [0, length) or reports
// that it is out of range.
func normalizeIndex(index, length int64) (int64, bool) {
	if index < 0 {
		index += length
	}
	if index < 0 || index >= length {
		return 0, false
	}
	return index, true
}

// appendSlice emits the elements selected by a slice, with the bounds rules
// of RFC 9535 section 2.3.4.2.2.
func appendSlice(out []Node, n Node, arr []any, s ast.SliceSelector) []Node {
	length := int64(len(arr))

	step := int64(1)
	if s.Step != nil {
		step = *s.Step
	}
	if step == 0 {
		return out
	}

	start, end := defaultBounds(s, step, length)
	lower, upper := sliceBounds(start, end, step, length)

	if step > 0 {
		for i := lower; i < upper; i += step {
			out = append(out, Node{step: n.step.elem(i), value: arr[i]})
		}
	} else {
		for i := upper; i > lower; i += step {
			out = append(out, Node{step: n.step.elem(i), value: arr[i]})
		}
	}
	return out
}

func defaultBounds(s ast.SliceSelector, step, length int64) (start, end int64) {
	if s.Start != nil {
		start = *s.Start
	} else if step >= 0 {
		start = 0
	} else {
		start = length - 1
	}

	if s.End != nil {
		end = *s.End
	} else if step >= 0 {
		end = length
	} else {
		end = -length - 1
	}
	return start, end
}

func sliceBounds(start, end, step, length int64) (lower, upper int64) {
	normStart := normalizeBound(start, length)
	normEnd := normalizeBound(end, length)

	if step >= 0 {
		lower = clamp(normStart, 0, length)
		upper = clamp(normEnd, 0, length)
		return lower, upper
	}
	upper = clamp(normStart, -1, length-1)
	lower = clamp(normEnd, -1, length-1)
	return lower, upper
}

func normalizeBound(i, length int64) int64 {
	if i >= 0 {
		return i
	}
	return length + i
}

func clamp(i, lower, upper int64) int64 {
	return max(lower, min(i, upper))
}

// appendFiltered emits the children of n for which the filter holds, with
// '@' bound to each child in turn.
func (e *evaluator) appendFiltered(out []Node, n Node, filter *ast.LogicalOr) ([]Node, error) {
	for _, child := range children(n) {
		match, err := e.evalLogicalOr(filter, child.value)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, child)
		}
	}
	return out, nil
}
