package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// QuoteName renders a member name as a single-quoted string literal with the
// escaping rules of RFC 9535 section 2.7: backslash, single quote and the
// JSON control characters are escaped; everything else passes through.
func QuoteName(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	b.WriteByte('\'')
	for _, r := range name {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// String renders the query in canonical bracketed form. Member shorthand and
// bracketed name selection render identically, so the output is stable for
// equivalent queries.
func (q *Query) String() string {
	var b strings.Builder
	b.WriteByte('$')
	writeSegments(&b, q.Segments)
	return b.String()
}

func writeSegments(b *strings.Builder, segments []Segment) {
	for _, seg := range segments {
		if seg.Descendant {
			b.WriteString("..")
		}
		b.WriteByte('[')
		for i, sel := range seg.Selectors {
			if i > 0 {
				b.WriteString(", ")
			}
			sel.writeTo(b)
		}
		b.WriteByte(']')
	}
}

func (s NameSelector) writeTo(b *strings.Builder) {
	b.WriteString(QuoteName(s.Name))
}

func (WildcardSelector) writeTo(b *strings.Builder) {
	b.WriteByte('*')
}

func (s IndexSelector) writeTo(b *strings.Builder) {
	b.WriteString(strconv.FormatInt(s.Index, 10))
}

func (s SliceSelector) writeTo(b *strings.Builder) {
	if s.Start != nil {
		b.WriteString(strconv.FormatInt(*s.Start, 10))
	}
	b.WriteByte(':')
	if s.End != nil {
		b.WriteString(strconv.FormatInt(*s.End, 10))
	}
	if s.Step != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(*s.Step, 10))
	}
}

func (s FilterSelector) writeTo(b *strings.Builder) {
	b.WriteByte('?')
	s.Filter.writeTo(b)
}

func (e *LogicalOr) writeTo(b *strings.Builder) {
	for i, and := range e.Disjuncts {
		if i > 0 {
			b.WriteString(" || ")
		}
		and.writeTo(b)
	}
}

func (e *LogicalAnd) writeTo(b *strings.Builder) {
	for i, basic := range e.Conjuncts {
		if i > 0 {
			b.WriteString(" && ")
		}
		basic.writeTo(b)
	}
}

func (e *ParenExpr) writeTo(b *strings.Builder) {
	if e.Negated {
		b.WriteByte('!')
	}
	b.WriteByte('(')
	e.Expr.writeTo(b)
	b.WriteByte(')')
}

func (e *ComparisonExpr) writeTo(b *strings.Builder) {
	e.Left.writeTo(b)
	b.WriteByte(' ')
	b.WriteString(e.Op.String())
	b.WriteByte(' ')
	e.Right.writeTo(b)
}

func (e *TestExpr) writeTo(b *strings.Builder) {
	if e.Negated {
		b.WriteByte('!')
	}
	if e.Query != nil {
		e.Query.writeTo(b)
		return
	}
	e.Call.writeTo(b)
}

func (q *FilterQuery) writeTo(b *strings.Builder) {
	if q.Relative {
		b.WriteByte('@')
	} else {
		b.WriteByte('$')
	}
	writeSegments(b, q.Segments)
}

func (l Literal) writeTo(b *strings.Builder) {
	switch v := l.Value.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case string:
		b.WriteString(QuoteName(v))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

func (q *SingularQuery) writeTo(b *strings.Builder) {
	if q.Relative {
		b.WriteByte('@')
	} else {
		b.WriteByte('$')
	}
	for _, seg := range q.Segments {
		b.WriteByte('[')
		if seg.IsIndex {
			b.WriteString(strconv.FormatInt(seg.Index, 10))
		} else {
			b.WriteString(QuoteName(seg.Name))
		}
		b.WriteByte(']')
	}
}

func (c *FunctionCall) writeTo(b *strings.Builder) {
	b.WriteString(c.Name)
	b.WriteByte('(')
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.writeTo(b)
	}
	b.WriteByte(')')
}
