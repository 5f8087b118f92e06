// Package function declares the JSONPath function extensions of RFC 9535
// section 2.4 and the regex oracle used by match() and search().
//
// The registry only carries signatures. The parser consults it to check
// arity and argument types at compile time; the evaluator implements the
// function bodies and dispatches by name.
package function

import "github.com/jacoelho/jsonpath/internal/ast"

// Signature declares the parameter and result types of a function extension.
type Signature struct {
	Params []ast.FuncType
	Result ast.FuncType
}

// Arity returns the declared number of parameters.
func (s Signature) Arity() int {
	return len(s.Params)
}

var registry = map[string]Signature{
	"length": {Params: []ast.FuncType{ast.ValueType}, Result: ast.ValueType},
	"count":  {Params: []ast.FuncType{ast.NodesType}, Result: ast.ValueType},
	"match":  {Params: []ast.FuncType{ast.ValueType, ast.ValueType}, Result: ast.LogicalType},
	"search": {Params: []ast.FuncType{ast.ValueType, ast.ValueType}, Result: ast.LogicalType},
	"value":  {Params: []ast.FuncType{ast.NodesType}, Result: ast.ValueType},
}

// Lookup returns the signature of a registered function.
func Lookup(name string) (Signature, bool) {
	sig, ok := registry[name]
	return sig, ok
}
