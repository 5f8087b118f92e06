// Package jsonpath implements the JSONPath query language of RFC 9535.
//
// A query is compiled once and can then be evaluated any number of times,
// from any number of goroutines, against decoded JSON documents:
//
//	query, err := jsonpath.Compile("$.store.book[?@.price < 10].title")
//	if err != nil { ... }
//	result, err := query.Evaluate(document)
//	for _, title := range result.Values() { ... }
//
// Documents are the decoded forms produced by DecodeJSON: nil, bool,
// string, json.Number, []any and *Object, an object type that preserves
// member insertion order. Evaluation never mutates the document; results
// alias it.
//
// Evaluation visits array elements in index order and object members in
// document order: the insertion order carried by *Object. Documents decoded
// elsewhere into plain map[string]any are accepted too; a Go map has no
// insertion order left, so its members are visited in sorted key order,
// the only deterministic choice remaining.
package jsonpath

import (
	"iter"

	"github.com/jacoelho/jsonpath/internal/ast"
	"github.com/jacoelho/jsonpath/internal/evaluator"
	"github.com/jacoelho/jsonpath/internal/function"
	"github.com/jacoelho/jsonpath/internal/lexer"
	"github.com/jacoelho/jsonpath/internal/parser"
)

// Query is a compiled JSONPath query. It is immutable and safe for
// concurrent use.
type Query struct {
	src    string
	tree   *ast.Query
	oracle function.RegexOracle
}

// Compile tokenizes, parses and validates a query. The returned error, if
// any, is a *Error carrying the kind and source span of the failure.
// match() and search() use the default oracle backed by the standard
// library's regexp package.
func Compile(query string) (*Query, error) {
	return CompileWithOracle(query, function.GoOracle{})
}

// CompileWithOracle compiles a query with a custom regex oracle for the
// match() and search() functions. The oracle must be safe for concurrent
// use.
func CompileWithOracle(query string, oracle function.RegexOracle) (*Query, error) {
	toks, err := lexer.Tokenize(query)
	if err != nil {
		return nil, wrapError(err, len(query))
	}

	tree, err := parser.New(toks).Parse()
	if err != nil {
		return nil, wrapError(err, len(query))
	}

	if err := parser.Validate(tree); err != nil {
		return nil, wrapError(err, len(query))
	}

	return &Query{src: query, tree: tree, oracle: oracle}, nil
}

// MustCompile is Compile for queries known to be valid; it panics on error.
func MustCompile(query string) *Query {
	q, err := Compile(query)
	if err != nil {
		panic(err)
	}
	return q
}

// Evaluate runs the query against a decoded JSON document and returns the
// nodelist of matches in document order. The only possible error is a
// *Error of kind KindRegex from the oracle behind match() and search();
// everything else about evaluation is infallible.
func (q *Query) Evaluate(document any) (*NodeList, error) {
	list, err := evaluator.Evaluate(q.tree, document, q.oracle)
	if err != nil {
		return nil, &Error{
			Kind:    KindRegex,
			Message: err.Error(),
			Start:   0,
			End:     len(q.src),
			err:     err,
		}
	}
	return &NodeList{list: list}, nil
}

// String renders the query in canonical bracketed form.
func (q *Query) String() string {
	return q.tree.String()
}

// Node is one query result: the normalized path of a location in the
// document and a shared reference to the value there.
type Node struct {
	node evaluator.Node
}

// Path returns the normalized path, e.g. $['store']['book'][0]['title'].
func (n Node) Path() string {
	return n.node.Path()
}

// Value returns the value at the node's location. It aliases the input
// document; callers must not modify it.
func (n Node) Value() any {
	return n.node.Value()
}

// NodeList is an ordered list of query results in document order.
// Duplicates are preserved. It stays valid for as long as the caller keeps
// the input document alive.
type NodeList struct {
	list *evaluator.NodeList
}

// Len returns the number of result nodes.
func (l *NodeList) Len() int {
	return l.list.Len()
}

// Paths returns the normalized path of every node, in order.
func (l *NodeList) Paths() []string {
	return l.list.Paths()
}

// Values returns the value of every node, in order.
func (l *NodeList) Values() []any {
	return l.list.Values()
}

// Nodes returns all result nodes, in order.
func (l *NodeList) Nodes() []Node {
	inner := l.list.Nodes()
	nodes := make([]Node, len(inner))
	for i, n := range inner {
		nodes[i] = Node{node: n}
	}
	return nodes
}

// All iterates the result nodes in document order.
func (l *NodeList) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for n := range l.list.All() {
			if !yield(Node{node: n}) {
				return
			}
		}
	}
}

// wrapError converts stage errors into the public *Error form.
func wrapError(err error, queryLen int) error {
	switch stage := err.(type) {
	case *lexer.Error:
		return &Error{
			Kind:    KindLex,
			Message: stage.Error(),
			Start:   stage.Span.Start,
			End:     stage.Span.End,
			err:     stage,
		}
	case *parser.Error:
		kind := KindParse
		if parser.IsValidityError(stage) {
			kind = KindValidate
		}
		end := stage.Span.End
		if stage.Span.Start == 0 && end == 0 {
			// Validate reports without a position: cover the whole query.
			end = queryLen
		}
		return &Error{
			Kind:    kind,
			Message: stage.Error(),
			Start:   stage.Span.Start,
			End:     end,
			err:     stage,
		}
	}
	return &Error{Kind: KindParse, Message: err.Error(), End: queryLen, err: err}
}
