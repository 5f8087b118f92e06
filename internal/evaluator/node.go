package evaluator

import (
	"iter"
	"strconv"
	"strings"

	"github.com/jacoelho/jsonpath/internal/ast"
)

type stepKind uint8

const (
	stepRoot stepKind = iota
	stepName
	stepIndex
)

// pathStep is one step of a normalized path. Steps share their prefix
// through the parent pointer, so extending a path during traversal is one
// allocation and the textual form is only built when asked for.
type pathStep struct {
	parent *pathStep
	kind   stepKind
	name   string
	index  int64
}

var rootStep = &pathStep{kind: stepRoot}

func (s *pathStep) child(name string) *pathStep {
	return &pathStep{parent: s, kind: stepName, name: name}
}

func (s *pathStep) elem(index int64) *pathStep {
	return &pathStep{parent: s, kind: stepIndex, index: index}
}

// String renders the canonical normalized path form of RFC 9535 section
// 2.7: '$' followed by ['<escaped-name>'] and [<index>] steps.
func (s *pathStep) String() string {
	var steps []*pathStep
	for cur := s; cur.kind != stepRoot; cur = cur.parent {
		steps = append(steps, cur)
	}

	var b strings.Builder
	b.WriteByte('$')
	for i := len(steps) - 1; i >= 0; i-- {
		b.WriteByte('[')
		if steps[i].kind == stepIndex {
			b.WriteString(strconv.FormatInt(steps[i].index, 10))
		} else {
			b.WriteString(ast.QuoteName(steps[i].name))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Node is one query result: a location in the document and a shared
// reference to the value there.
type Node struct {
	step  *pathStep
	value any
}

// Value returns the value the node refers to. It aliases the input
// document; callers must not modify it.
func (n Node) Value() any {
	return n.value
}

// Path returns the normalized path of the node.
func (n Node) Path() string {
	return n.step.String()
}

// NodeList is an ordered list of result nodes in document order. Duplicates
// are preserved.
type NodeList struct {
	nodes []Node
}

// Len returns the number of nodes.
func (l *NodeList) Len() int {
	return len(l.nodes)
}

// Nodes returns the underlying nodes in document order.
func (l *NodeList) Nodes() []Node {
	return l.nodes
}

// Paths returns the normalized path of every node, in order.
func (l *NodeList) Paths() []string {
	paths := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		paths[i] = n.Path()
	}
	return paths
}

// Values returns the value of every node, in order. The values alias the
// input document.
func (l *NodeList) Values() []any {
	values := make([]any, len(l.nodes))
	for i, n := range l.nodes {
		values[i] = n.value
	}
	return values
}

// All iterates the nodes in document order.
func (l *NodeList) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range l.nodes {
			if !yield(n) {
				return
			}
		}
	}
}
