// Package parser builds the AST for a JSONPath query from its token stream.
//
// The parser is recursive descent with one token of lookahead and no
// backtracking. Singular queries are enforced structurally. The right operand
// of a comparison descends into a dedicated production that only admits name
// and index steps. The left operand of a comparison and query arguments of
// function calls are parsed as general queries first and converted with
// toSingular; a query that does not convert is rejected as the left operand,
// and in a ValueType argument position by the argument type check. Either
// way a singular position holds a distinct SingularQuery node, never a
// general query.
package parser

import (
	"github.com/jacoelho/jsonpath/internal/ast"
	"github.com/jacoelho/jsonpath/internal/function"
	"github.com/jacoelho/jsonpath/internal/token"
)

// Parser consumes a token stream produced by the lexer. Tokens never outlive
// the Parse call.
type Parser struct {
	toks []token.Token
	pos  int
}

// New returns a parser over the given tokens. The stream must be terminated
// by an EOF token.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Parse builds the AST for a complete query: '$' followed by segments,
// terminated by end of input.
func (p *Parser) Parse() (*ast.Query, error) {
	if _, err := p.expect(token.Root); err != nil {
		return nil, err
	}

	segments, err := p.parseSegments()
	if err != nil {
		return nil, err
	}

	if p.cur().Kind != token.EOF {
		return nil, errorAt(ErrUnexpectedToken, p.cur().Span, "trailing %s", p.cur().Kind)
	}
	return &ast.Query{Segments: segments}, nil
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) prev() token.Token {
	if p.pos == 0 {
		return p.toks[0]
	}
	return p.toks[p.pos-1]
}

func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.cur()
	if tok.Kind != kind {
		return tok, errorAt(ErrUnexpectedToken, tok.Span, "expected %s, found %s", kind, tok.Kind)
	}
	return p.advance(), nil
}

// parseSegments parses zero or more child and descendant segments. It stops
// at the first token that cannot start a segment.
func (p *Parser) parseSegments() ([]ast.Segment, error) {
	var segments []ast.Segment
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			selector, err := p.parseShorthandSelector()
			if err != nil {
				return nil, err
			}
			segments = append(segments, ast.Segment{Selectors: []ast.Selector{selector}})

		case token.DotDot:
			p.advance()
			segment, err := p.parseDescendant()
			if err != nil {
				return nil, err
			}
			segments = append(segments, segment)

		case token.LBracket:
			selectors, err := p.parseBracketed()
			if err != nil {
				return nil, err
			}
			segments = append(segments, ast.Segment{Selectors: selectors})

		default:
			return segments, nil
		}
	}
}

// parseShorthandSelector parses the selector after '.': a wildcard or a
// member-name shorthand. The keywords true, false and null are ordinary
// member names in this position.
func (p *Parser) parseShorthandSelector() (ast.Selector, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Star:
		p.advance()
		return ast.WildcardSelector{}, nil
	case token.Name:
		p.advance()
		return ast.NameSelector{Name: tok.Str}, nil
	case token.True, token.False, token.Null:
		p.advance()
		return ast.NameSelector{Name: tok.Text}, nil
	}
	return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected member name or '*', found %s", tok.Kind)
}

func (p *Parser) parseDescendant() (ast.Segment, error) {
	if p.cur().Kind == token.LBracket {
		selectors, err := p.parseBracketed()
		if err != nil {
			return ast.Segment{}, err
		}
		return ast.Segment{Descendant: true, Selectors: selectors}, nil
	}

	selector, err := p.parseShorthandSelector()
	if err != nil {
		return ast.Segment{}, err
	}
	return ast.Segment{Descendant: true, Selectors: []ast.Selector{selector}}, nil
}

// parseBracketed parses '[' selector ("," selector)* ']'.
func (p *Parser) parseBracketed() ([]ast.Selector, error) {
	if _, err := p.expect(token.LBracket); err != nil {
		return nil, err
	}

	var selectors []ast.Selector
	for {
		selector, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, selector)

		if p.cur().Kind != token.Comma {
			break
		}
		p.advance()
	}

	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return selectors, nil
}

func (p *Parser) parseSelector() (ast.Selector, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Str:
		p.advance()
		return ast.NameSelector{Name: tok.Str}, nil

	case token.Star:
		p.advance()
		return ast.WildcardSelector{}, nil

	case token.Int, token.Colon:
		return p.parseIndexOrSlice()

	case token.Number:
		return nil, errorAt(ErrUnexpectedToken, tok.Span, "%s is not a valid array index", tok.Text)

	case token.Question:
		p.advance()
		filter, err := p.parseLogicalOr()
		if err != nil {
			return nil, err
		}
		return ast.FilterSelector{Filter: filter}, nil
	}
	return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected selector, found %s", tok.Kind)
}

// parseIndexOrSlice disambiguates an index selector from a slice selector by
// looking for a ':' after the optional leading integer.
func (p *Parser) parseIndexOrSlice() (ast.Selector, error) {
	var start *int64
	if p.cur().Kind == token.Int {
		v := p.advance().Int
		if p.cur().Kind != token.Colon {
			return ast.IndexSelector{Index: v}, nil
		}
		start = &v
	}

	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}

	end, err := p.parseOptionalSliceBound()
	if err != nil {
		return nil, err
	}

	var step *int64
	if p.cur().Kind == token.Colon {
		p.advance()
		step, err = p.parseOptionalSliceBound()
		if err != nil {
			return nil, err
		}
		if step != nil && *step == 0 {
			return nil, errorAt(ErrSliceStep, p.prev().Span, "")
		}
	}

	return ast.SliceSelector{Start: start, End: end, Step: step}, nil
}

func (p *Parser) parseOptionalSliceBound() (*int64, error) {
	switch p.cur().Kind {
	case token.Int:
		v := p.advance().Int
		return &v, nil
	case token.Number:
		tok := p.cur()
		return nil, errorAt(ErrUnexpectedToken, tok.Span, "%s is not a valid slice bound", tok.Text)
	}
	return nil, nil
}

// parseLogicalOr parses a disjunction with the precedence || < && < ! <
// comparison.
func (p *Parser) parseLogicalOr() (*ast.LogicalOr, error) {
	and, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}

	or := &ast.LogicalOr{Disjuncts: []*ast.LogicalAnd{and}}
	for p.cur().Kind == token.Or {
		p.advance()
		and, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		or.Disjuncts = append(or.Disjuncts, and)
	}
	return or, nil
}

func (p *Parser) parseLogicalAnd() (*ast.LogicalAnd, error) {
	basic, err := p.parseBasicExpr()
	if err != nil {
		return nil, err
	}

	and := &ast.LogicalAnd{Conjuncts: []ast.BasicExpr{basic}}
	for p.cur().Kind == token.And {
		p.advance()
		basic, err := p.parseBasicExpr()
		if err != nil {
			return nil, err
		}
		and.Conjuncts = append(and.Conjuncts, basic)
	}
	return and, nil
}

func (p *Parser) parseBasicExpr() (ast.BasicExpr, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.Bang:
		p.advance()
		return p.parseNegatedExpr()

	case token.LParen:
		return p.parseParenExpr(false)

	case token.Current, token.Root:
		return p.parseQueryExpr()

	case token.Func:
		return p.parseFunctionExpr()
	}

	if tok.IsLiteral() {
		left, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if !p.cur().IsComparisonOp() {
			return nil, errorAt(ErrUnexpectedToken, p.cur().Span,
				"literal must be part of a comparison")
		}
		return p.parseComparisonRest(left)
	}

	return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected filter expression, found %s", tok.Kind)
}

// parseNegatedExpr parses the expression after a '!'. Only parenthesized
// expressions and tests may be negated; a comparison operand may not.
func (p *Parser) parseNegatedExpr() (ast.BasicExpr, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.LParen:
		return p.parseParenExpr(true)

	case token.Current, token.Root:
		query, span, err := p.parseFilterQuery()
		if err != nil {
			return nil, err
		}
		if p.cur().IsComparisonOp() {
			return nil, errorAt(ErrUnexpectedToken, span, "comparison operand cannot be negated")
		}
		return &ast.TestExpr{Negated: true, Query: query}, nil

	case token.Func:
		call, span, err := p.parseFunctionCall()
		if err != nil {
			return nil, err
		}
		if p.cur().IsComparisonOp() {
			return nil, errorAt(ErrUnexpectedToken, span, "comparison operand cannot be negated")
		}
		if err := testableResult(call, span); err != nil {
			return nil, err
		}
		return &ast.TestExpr{Negated: true, Call: call}, nil
	}
	return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected '(', query or function call after '!'")
}

func (p *Parser) parseParenExpr(negated bool) (ast.BasicExpr, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	expr, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.ParenExpr{Negated: negated, Expr: expr}, nil
}

// parseQueryExpr parses a basic expression starting with '@' or '$': either
// an existence test, or the left side of a comparison, which must then be a
// singular query.
func (p *Parser) parseQueryExpr() (ast.BasicExpr, error) {
	query, span, err := p.parseFilterQuery()
	if err != nil {
		return nil, err
	}

	if !p.cur().IsComparisonOp() {
		return &ast.TestExpr{Query: query}, nil
	}

	singular, err := toSingular(query, span)
	if err != nil {
		return nil, err
	}
	return p.parseComparisonRest(singular)
}

// parseFunctionExpr parses a basic expression starting with a function call:
// either a logical test or the left side of a comparison.
func (p *Parser) parseFunctionExpr() (ast.BasicExpr, error) {
	call, span, err := p.parseFunctionCall()
	if err != nil {
		return nil, err
	}

	if p.cur().IsComparisonOp() {
		if call.ReturnType != ast.ValueType {
			return nil, errorAt(ErrFunctionType, span,
				"%s() returns %s and cannot be compared", call.Name, call.ReturnType)
		}
		return p.parseComparisonRest(call)
	}

	if err := testableResult(call, span); err != nil {
		return nil, err
	}
	return &ast.TestExpr{Call: call}, nil
}

func testableResult(call *ast.FunctionCall, span token.Span) error {
	if call.ReturnType == ast.ValueType {
		return errorAt(ErrFunctionType, span,
			"%s() returns %s and must be part of a comparison", call.Name, call.ReturnType)
	}
	return nil
}

// parseComparisonRest parses the operator and right comparable after the
// left comparable has been consumed, and rejects chained comparisons.
func (p *Parser) parseComparisonRest(left ast.Comparable) (ast.BasicExpr, error) {
	op, err := p.parseComparisonOp()
	if err != nil {
		return nil, err
	}

	right, err := p.parseComparable()
	if err != nil {
		return nil, err
	}

	if p.cur().IsComparisonOp() {
		return nil, errorAt(ErrComparisonChain, p.cur().Span, "")
	}
	return &ast.ComparisonExpr{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseComparisonOp() (ast.CompOp, error) {
	tok := p.cur()
	var op ast.CompOp
	switch tok.Kind {
	case token.Eq:
		op = ast.OpEq
	case token.Neq:
		op = ast.OpNeq
	case token.Lt:
		op = ast.OpLt
	case token.Le:
		op = ast.OpLe
	case token.Gt:
		op = ast.OpGt
	case token.Ge:
		op = ast.OpGe
	default:
		return 0, errorAt(ErrUnexpectedToken, tok.Span, "expected comparison operator, found %s", tok.Kind)
	}
	p.advance()
	return op, nil
}

// parseComparable parses a comparison operand: a literal, a singular query
// or a ValueType function call. The singular-query production is entered
// directly, so a general query cannot appear here.
func (p *Parser) parseComparable() (ast.Comparable, error) {
	tok := p.cur()
	if tok.IsLiteral() {
		return p.parseLiteral()
	}

	switch tok.Kind {
	case token.Current, token.Root:
		return p.parseSingularQuery()

	case token.Func:
		call, span, err := p.parseFunctionCall()
		if err != nil {
			return nil, err
		}
		if call.ReturnType != ast.ValueType {
			return nil, errorAt(ErrFunctionType, span,
				"%s() returns %s and cannot be compared", call.Name, call.ReturnType)
		}
		return call, nil
	}
	return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected comparable, found %s", tok.Kind)
}

func (p *Parser) parseLiteral() (ast.Literal, error) {
	tok := p.advance()
	switch tok.Kind {
	case token.Str:
		return ast.Literal{Value: tok.Str}, nil
	case token.Int:
		return ast.Literal{Value: tok.Int}, nil
	case token.Number:
		return ast.Literal{Value: tok.Num}, nil
	case token.True:
		return ast.Literal{Value: true}, nil
	case token.False:
		return ast.Literal{Value: false}, nil
	case token.Null:
		return ast.Literal{Value: nil}, nil
	}
	return ast.Literal{}, errorAt(ErrUnexpectedToken, tok.Span, "expected literal, found %s", tok.Kind)
}

// parseFilterQuery parses a general query rooted at '@' or '$' inside a
// filter, returning the span it covers for error reporting.
func (p *Parser) parseFilterQuery() (*ast.FilterQuery, token.Span, error) {
	start := p.cur().Span.Start
	relative := p.advance().Kind == token.Current

	segments, err := p.parseSegments()
	if err != nil {
		return nil, token.Span{}, err
	}

	span := token.Span{Start: start, End: p.prev().Span.End}
	return &ast.FilterQuery{Relative: relative, Segments: segments}, span, nil
}

// parseSingularQuery parses '@' or '$' followed by name and index steps
// only. Any other selector is rejected as not singular.
func (p *Parser) parseSingularQuery() (*ast.SingularQuery, error) {
	relative := p.advance().Kind == token.Current

	var segments []ast.SingularSegment
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			tok := p.cur()
			switch tok.Kind {
			case token.Name:
				p.advance()
				segments = append(segments, ast.SingularSegment{Name: tok.Str})
			case token.True, token.False, token.Null:
				p.advance()
				segments = append(segments, ast.SingularSegment{Name: tok.Text})
			case token.Star:
				return nil, errorAt(ErrNotSingular, tok.Span, "wildcard selector")
			default:
				return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected member name, found %s", tok.Kind)
			}

		case token.DotDot:
			return nil, errorAt(ErrNotSingular, p.cur().Span, "descendant segment")

		case token.LBracket:
			p.advance()
			segment, err := p.parseSingularBracket()
			if err != nil {
				return nil, err
			}
			segments = append(segments, segment)

		default:
			return &ast.SingularQuery{Relative: relative, Segments: segments}, nil
		}
	}
}

func (p *Parser) parseSingularBracket() (ast.SingularSegment, error) {
	tok := p.cur()
	var segment ast.SingularSegment
	switch tok.Kind {
	case token.Str:
		p.advance()
		segment = ast.SingularSegment{Name: tok.Str}
	case token.Int:
		p.advance()
		if p.cur().Kind == token.Colon {
			return ast.SingularSegment{}, errorAt(ErrNotSingular, p.cur().Span, "slice selector")
		}
		segment = ast.SingularSegment{Index: tok.Int, IsIndex: true}
	case token.Star:
		return ast.SingularSegment{}, errorAt(ErrNotSingular, tok.Span, "wildcard selector")
	case token.Question:
		return ast.SingularSegment{}, errorAt(ErrNotSingular, tok.Span, "filter selector")
	case token.Colon:
		return ast.SingularSegment{}, errorAt(ErrNotSingular, tok.Span, "slice selector")
	default:
		return ast.SingularSegment{}, errorAt(ErrUnexpectedToken, tok.Span,
			"expected name or index, found %s", tok.Kind)
	}

	if p.cur().Kind == token.Comma {
		return ast.SingularSegment{}, errorAt(ErrNotSingular, p.cur().Span, "multiple selectors")
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return ast.SingularSegment{}, err
	}
	return segment, nil
}

// toSingular converts an already-parsed general query to a singular query,
// for the position left of a comparison operator where the distinction is
// only known once the operator appears.
func toSingular(query *ast.FilterQuery, span token.Span) (*ast.SingularQuery, error) {
	segments := make([]ast.SingularSegment, 0, len(query.Segments))
	for _, seg := range query.Segments {
		if seg.Descendant {
			return nil, errorAt(ErrNotSingular, span, "descendant segment")
		}
		if len(seg.Selectors) != 1 {
			return nil, errorAt(ErrNotSingular, span, "multiple selectors")
		}
		switch sel := seg.Selectors[0].(type) {
		case ast.NameSelector:
			segments = append(segments, ast.SingularSegment{Name: sel.Name})
		case ast.IndexSelector:
			segments = append(segments, ast.SingularSegment{Index: sel.Index, IsIndex: true})
		case ast.WildcardSelector:
			return nil, errorAt(ErrNotSingular, span, "wildcard selector")
		case ast.SliceSelector:
			return nil, errorAt(ErrNotSingular, span, "slice selector")
		default:
			return nil, errorAt(ErrNotSingular, span, "filter selector")
		}
	}
	return &ast.SingularQuery{Relative: query.Relative, Segments: segments}, nil
}

// parseFunctionCall parses name '(' args ')' and checks the call against the
// function registry: the name must be known, the arity exact, and every
// argument's static type convertible to the declared parameter type.
func (p *Parser) parseFunctionCall() (*ast.FunctionCall, token.Span, error) {
	nameTok, err := p.expect(token.Func)
	if err != nil {
		return nil, token.Span{}, err
	}

	sig, ok := function.Lookup(nameTok.Str)
	if !ok {
		return nil, token.Span{}, errorAt(ErrUnknownFunction, nameTok.Span, "%s()", nameTok.Str)
	}

	if _, err := p.expect(token.LParen); err != nil {
		return nil, token.Span{}, err
	}

	var args []ast.FunctionArg
	if p.cur().Kind != token.RParen {
		for {
			argStart := p.cur().Span.Start
			arg, err := p.parseFunctionArg()
			if err != nil {
				return nil, token.Span{}, err
			}
			argSpan := token.Span{Start: argStart, End: p.prev().Span.End}

			if len(args) < sig.Arity() {
				if err := checkArgType(arg, sig.Params[len(args)], nameTok.Str, len(args), argSpan); err != nil {
					return nil, token.Span{}, err
				}
			}
			args = append(args, arg)

			if p.cur().Kind != token.Comma {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, token.Span{}, err
	}

	span := token.Span{Start: nameTok.Span.Start, End: p.prev().Span.End}
	if len(args) != sig.Arity() {
		return nil, token.Span{}, errorAt(ErrFunctionArity, span,
			"%s() takes %d, got %d", nameTok.Str, sig.Arity(), len(args))
	}

	return &ast.FunctionCall{Name: nameTok.Str, Args: args, ReturnType: sig.Result}, span, nil
}

// parseFunctionArg parses one argument in its productive form: a literal, a
// query, a function call, or a full logical expression. Which it is depends
// on the leading token and on whether a comparison or logical operator
// follows.
func (p *Parser) parseFunctionArg() (ast.FunctionArg, error) {
	tok := p.cur()

	if tok.IsLiteral() {
		literal, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		if p.cur().IsComparisonOp() {
			return p.continueComparison(literal)
		}
		return literal, nil
	}

	switch tok.Kind {
	case token.Current, token.Root:
		query, span, err := p.parseFilterQuery()
		if err != nil {
			return nil, err
		}
		if p.cur().IsComparisonOp() {
			singular, err := toSingular(query, span)
			if err != nil {
				return nil, err
			}
			return p.continueComparison(singular)
		}
		if p.cur().Kind == token.And || p.cur().Kind == token.Or {
			return p.continueLogical(&ast.TestExpr{Query: query})
		}
		if singular, err := toSingular(query, span); err == nil {
			return singular, nil
		}
		return query, nil

	case token.Bang, token.LParen:
		return p.parseLogicalOr()

	case token.Func:
		call, span, err := p.parseFunctionCall()
		if err != nil {
			return nil, err
		}
		if p.cur().IsComparisonOp() {
			if call.ReturnType != ast.ValueType {
				return nil, errorAt(ErrFunctionType, span,
					"%s() returns %s and cannot be compared", call.Name, call.ReturnType)
			}
			return p.continueComparison(call)
		}
		if p.cur().Kind == token.And || p.cur().Kind == token.Or {
			if err := testableResult(call, span); err != nil {
				return nil, err
			}
			return p.continueLogical(&ast.TestExpr{Call: call})
		}
		return call, nil
	}

	return nil, errorAt(ErrUnexpectedToken, tok.Span, "expected function argument, found %s", tok.Kind)
}

// continueComparison finishes a comparison whose left side is already
// parsed, then folds it into a logical expression if logical operators
// follow.
func (p *Parser) continueComparison(left ast.Comparable) (ast.FunctionArg, error) {
	cmp, err := p.parseComparisonRest(left)
	if err != nil {
		return nil, err
	}
	return p.continueLogical(cmp)
}

// continueLogical extends a first basic expression into a full logical
// expression, honoring && over || precedence.
func (p *Parser) continueLogical(first ast.BasicExpr) (*ast.LogicalOr, error) {
	and := &ast.LogicalAnd{Conjuncts: []ast.BasicExpr{first}}
	for p.cur().Kind == token.And {
		p.advance()
		basic, err := p.parseBasicExpr()
		if err != nil {
			return nil, err
		}
		and.Conjuncts = append(and.Conjuncts, basic)
	}

	or := &ast.LogicalOr{Disjuncts: []*ast.LogicalAnd{and}}
	for p.cur().Kind == token.Or {
		p.advance()
		next, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		or.Disjuncts = append(or.Disjuncts, next)
	}
	return or, nil
}

// checkArgType applies the implicit conversion rules of RFC 9535 section
// 2.4.3: a ValueType slot takes literals, singular queries and ValueType
// calls; a NodesType slot takes queries and NodesType calls; a LogicalType
// slot additionally converts queries and NodesType calls through a
// non-emptiness test.
func checkArgType(arg ast.FunctionArg, want ast.FuncType, name string, index int, span token.Span) error {
	ok := false
	switch want {
	case ast.ValueType:
		switch a := arg.(type) {
		case ast.Literal, *ast.SingularQuery:
			ok = true
		case *ast.FunctionCall:
			ok = a.ReturnType == ast.ValueType
		}
	case ast.NodesType:
		switch a := arg.(type) {
		case *ast.SingularQuery, *ast.FilterQuery:
			ok = true
		case *ast.FunctionCall:
			ok = a.ReturnType == ast.NodesType
		}
	case ast.LogicalType:
		switch a := arg.(type) {
		case *ast.LogicalOr, *ast.SingularQuery, *ast.FilterQuery:
			ok = true
		case *ast.FunctionCall:
			ok = a.ReturnType == ast.LogicalType || a.ReturnType == ast.NodesType
		}
	}

	if !ok {
		return errorAt(ErrFunctionArg, span,
			"argument %d of %s() must be %s, got %s", index+1, name, want, argTypeName(arg))
	}
	return nil
}

func argTypeName(arg ast.FunctionArg) string {
	switch a := arg.(type) {
	case ast.Literal, *ast.SingularQuery:
		return ast.ValueType.String()
	case *ast.FilterQuery:
		return ast.NodesType.String()
	case *ast.LogicalOr:
		return ast.LogicalType.String()
	case *ast.FunctionCall:
		return a.ReturnType.String()
	}
	return "unknown"
}
