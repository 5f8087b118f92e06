package pretty

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jacoelho/jsonpath/internal/value"
)

func TestFormatCompact(t *testing.T) {
	doc := map[string]any{
		"b": []any{json.Number("1"), "x", nil},
		"a": true,
	}

	got := Format(doc, Flags{Compact: true})
	assert.Equal(t, `{"a":true,"b":[1,"x",null]}`, got)
}

func TestFormatIndented(t *testing.T) {
	doc := map[string]any{"a": []any{json.Number("1")}}

	got := Format(doc, DefaultFlags())
	assert.Equal(t, "{\n  \"a\": [\n    1\n  ]\n}", got)
}

func TestFormatObjectKeepsDocumentOrder(t *testing.T) {
	obj := value.NewObject()
	obj.Set("b", json.Number("1"))
	obj.Set("a", value.NewObject())

	got := Format(obj, Flags{Compact: true})
	assert.Equal(t, `{"b":1,"a":{}}`, got)
}

func TestFormatEmptyContainers(t *testing.T) {
	assert.Equal(t, "{}", Format(map[string]any{}, DefaultFlags()))
	assert.Equal(t, "[]", Format([]any{}, DefaultFlags()))
}

func TestScalar(t *testing.T) {
	assert.Equal(t, "null", Scalar(nil, false))
	assert.Equal(t, "false", Scalar(false, false))
	assert.Equal(t, `"hi"`, Scalar("hi", false))
	assert.Equal(t, "8.95", Scalar(json.Number("8.95"), false))
	assert.Equal(t, `{"a":1}`, Scalar(map[string]any{"a": json.Number("1")}, false))
}

func TestStringEscaping(t *testing.T) {
	assert.Equal(t, `"a\"b"`, Scalar(`a"b`, false))
	assert.Equal(t, `"tab\there"`, Scalar("tab\there", false))
}
