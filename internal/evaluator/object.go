package evaluator

import (
	"iter"
	"maps"
	"slices"

	"github.com/jacoelho/jsonpath/internal/value"
)

// objectView is how the evaluator walks a JSON object. *value.Object keeps
// the insertion order of the source document; a plain map[string]any from
// some other decoder has no order to preserve, so it iterates in sorted key
// order, the only deterministic option left.
type objectView interface {
	Len() int
	Get(key string) (any, bool)
	All() iter.Seq2[string, any]
}

// asObject adapts a value to an objectView if it is a JSON object.
func asObject(v any) (objectView, bool) {
	switch obj := v.(type) {
	case *value.Object:
		return obj, true
	case map[string]any:
		return mapView(obj), true
	}
	return nil, false
}

type mapView map[string]any

func (m mapView) Len() int {
	return len(m)
}

func (m mapView) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapView) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return
			}
		}
	}
}
