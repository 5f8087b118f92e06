// Package value defines the decoded JSON value model the query engine
// consumes: nil, bool, string, json.Number, []any and *Object.
//
// Object exists because Go maps forget the order their keys arrived in,
// while the engine must visit object members in the insertion order
// encountered during JSON parsing — wildcard, descendant and filter
// results all depend on it.
package value

import "iter"

// Object is a JSON object whose members keep their insertion order.
type Object struct {
	keys    []string
	members map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{members: make(map[string]any)}
}

// Set adds a member or replaces an existing one. A replaced member keeps
// its original position, matching how JSON parsers treat duplicate keys.
func (o *Object) Set(key string, v any) {
	if _, exists := o.members[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.members[key] = v
}

// Get returns the member value and whether the key exists.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.members[key]
	return v, ok
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the member names in insertion order. The slice is shared;
// callers must not modify it.
func (o *Object) Keys() []string {
	return o.keys
}

// All iterates the members in insertion order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range o.keys {
			if !yield(key, o.members[key]) {
				return
			}
		}
	}
}
