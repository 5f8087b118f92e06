// Package document decodes JSON and YAML documents into the value model the
// query engine consumes: nil, bool, string, json.Number, []any and
// *value.Object.
//
// JSON is decoded token by token so object members keep the order they
// appear in on the wire, and with UseNumber so numeric fidelity survives
// until a comparison actually needs arithmetic. YAML documents are decoded
// through goccy/go-yaml's ordered mapping mode and normalized into the same
// shapes, so YAML files can be queried exactly like JSON ones.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"

	yaml "github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonpath/internal/value"
)

// ErrDecode is the sentinel error for all document decoding failures.
var ErrDecode = errors.New("document: decode error")

// DecodeJSON decodes a single JSON document from r, preserving object
// member order.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return v, nil
}

// decodeValue reads one complete value from the token stream.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, json.Number, bool or nil
	}
	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	}
	return nil, fmt.Errorf("unexpected %q", delim.String())
}

func decodeObject(dec *json.Decoder) (*value.Object, error) {
	obj := value.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not a string", keyTok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// DecodeYAML decodes a single YAML document from r into the engine's value
// model, preserving mapping order.
func DecodeYAML(r io.Reader) (any, error) {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return normalize(v), nil
}

// Load reads a JSON document from a file.
func Load(path string) (any, error) {
	return loadWith(path, DecodeJSON)
}

// LoadYAML reads a YAML document from a file.
func LoadYAML(path string) (any, error) {
	return loadWith(path, DecodeYAML)
}

func loadWith(path string, decode func(io.Reader) (any, error)) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	return decode(f)
}

// normalize rewrites a decoded YAML tree into the engine's value model:
// ordered mappings become *value.Object, and numbers become json.Number so
// they compare the same way JSON numbers do. Plain Go maps carry no order
// of their own and fall back to sorted key order.
func normalize(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		obj := value.NewObject()
		for _, item := range val {
			obj.Set(fmt.Sprintf("%v", item.Key), normalize(item.Value))
		}
		return obj

	case map[string]any:
		obj := value.NewObject()
		for _, k := range slices.Sorted(maps.Keys(val)) {
			obj.Set(k, normalize(val[k]))
		}
		return obj

	case map[any]any:
		byName := make(map[string]any, len(val))
		for k, item := range val {
			byName[fmt.Sprintf("%v", k)] = item
		}
		return normalize(byName)

	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out

	case int:
		return json.Number(strconv.FormatInt(int64(val), 10))
	case int64:
		return json.Number(strconv.FormatInt(val, 10))
	case uint64:
		return json.Number(strconv.FormatUint(val, 10))
	case float64:
		return json.Number(strconv.FormatFloat(val, 'g', -1, 64))
	}
	return v
}
