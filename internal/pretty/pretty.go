// Package pretty renders values from the engine's value model as JSON text,
// optionally indented and optionally colorized for terminals. Object members
// print in the order the evaluator visits them: document order for
// *value.Object, sorted key order for plain maps.
package pretty

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/jacoelho/jsonpath/internal/value"
)

// Flags controls rendering.
type Flags struct {
	Compact bool   // single line, no spaces after separators
	Indent  string // indent unit for multi-line output
	Color   bool   // ANSI colors for keys and scalars
}

// DefaultFlags renders indented monochrome output.
func DefaultFlags() Flags {
	return Flags{Indent: "  "}
}

var (
	keyColor     = color.New(color.FgCyan)
	stringColor  = color.New(color.FgGreen)
	numberColor  = color.New(color.FgYellow)
	keywordColor = color.New(color.FgMagenta)
)

// Format renders a value as JSON text according to the flags.
func Format(v any, f Flags) string {
	var b strings.Builder
	p := printer{flags: f}
	p.write(&b, v, 0)
	return b.String()
}

// Scalar renders a single scalar value on one line; containers fall back to
// compact form. Used for path = value listings.
func Scalar(v any, colorize bool) string {
	return Format(v, Flags{Compact: true, Color: colorize})
}

type printer struct {
	flags Flags
}

func (p *printer) write(b *strings.Builder, v any, depth int) {
	switch val := v.(type) {
	case *value.Object:
		p.writeObject(b, val.Keys(), val, depth)
	case map[string]any:
		p.writeObject(b, slices.Sorted(maps.Keys(val)), mapGetter(val), depth)
	case []any:
		p.writeArray(b, val, depth)
	default:
		b.WriteString(p.scalar(val))
	}
}

type getter interface {
	Get(key string) (any, bool)
}

type mapGetter map[string]any

func (m mapGetter) Get(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

func (p *printer) writeObject(b *strings.Builder, keys []string, obj getter, depth int) {
	if len(keys) == 0 {
		b.WriteString("{}")
		return
	}

	b.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(',')
		}
		p.newline(b, depth+1)
		b.WriteString(p.key(key))
		b.WriteByte(':')
		if !p.flags.Compact {
			b.WriteByte(' ')
		}
		item, _ := obj.Get(key)
		p.write(b, item, depth+1)
	}
	p.newline(b, depth)
	b.WriteByte('}')
}

func (p *printer) writeArray(b *strings.Builder, arr []any, depth int) {
	if len(arr) == 0 {
		b.WriteString("[]")
		return
	}

	b.WriteByte('[')
	for i, item := range arr {
		if i > 0 {
			b.WriteByte(',')
		}
		p.newline(b, depth+1)
		p.write(b, item, depth+1)
	}
	p.newline(b, depth)
	b.WriteByte(']')
}

func (p *printer) newline(b *strings.Builder, depth int) {
	if p.flags.Compact {
		return
	}
	b.WriteByte('\n')
	for range depth {
		b.WriteString(p.flags.Indent)
	}
}

func (p *printer) key(k string) string {
	quoted := quoteString(k)
	if p.flags.Color {
		return keyColor.Sprint(quoted)
	}
	return quoted
}

func (p *printer) scalar(v any) string {
	switch value := v.(type) {
	case nil:
		return p.keyword("null")
	case bool:
		return p.keyword(strconv.FormatBool(value))
	case string:
		s := quoteString(value)
		if p.flags.Color {
			return stringColor.Sprint(s)
		}
		return s
	case json.Number:
		return p.number(value.String())
	case float64:
		return p.number(strconv.FormatFloat(value, 'g', -1, 64))
	case int64:
		return p.number(strconv.FormatInt(value, 10))
	case int:
		return p.number(strconv.Itoa(value))
	}
	return fmt.Sprintf("%v", v)
}

func (p *printer) keyword(s string) string {
	if p.flags.Color {
		return keywordColor.Sprint(s)
	}
	return s
}

func (p *printer) number(s string) string {
	if p.flags.Color {
		return numberColor.Sprint(s)
	}
	return s
}

func quoteString(s string) string {
	// encoding/json escaping matches what a JSON reader expects.
	out, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(out)
}
