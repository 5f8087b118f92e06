package jsonpath

import (
	"io"

	"github.com/jacoelho/jsonpath/internal/document"
	"github.com/jacoelho/jsonpath/internal/value"
)

// Object is a JSON object that preserves member insertion order. Documents
// decoded with DecodeJSON use it for every object, which is what lets the
// evaluator visit members in document order.
type Object = value.Object

// NewObject returns an empty order-preserving object, for callers that
// build documents programmatically.
func NewObject() *Object {
	return value.NewObject()
}

// DecodeJSON decodes a JSON document from r into the engine's value model:
// nil, bool, string, json.Number, []any and *Object. Object members keep
// the order they appear in on the wire.
func DecodeJSON(r io.Reader) (any, error) {
	return document.DecodeJSON(r)
}
