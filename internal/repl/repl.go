// Package repl implements the interactive shell of the jsonpath CLI:
// load a document, evaluate queries against it, and inspect the stages of
// the pipeline (token stream, AST, normalized paths).
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/jacoelho/jsonpath"
	"github.com/jacoelho/jsonpath/internal/document"
	"github.com/jacoelho/jsonpath/internal/lexer"
	"github.com/jacoelho/jsonpath/internal/pointer"
	"github.com/jacoelho/jsonpath/internal/pretty"
)

const intro = "JSONPath query shell. Type help or ? to list commands.\n"

var promptColor = color.New(color.FgCyan)

// Shell is one interactive session. It holds the currently loaded document
// and reads commands line by line.
type Shell struct {
	in       io.Reader
	out      io.Writer
	colorize bool

	document any
	loaded   bool
	source   string
}

// New returns a shell reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, colorize bool) *Shell {
	return &Shell{in: in, out: out, colorize: colorize}
}

// Run processes commands until quit or end of input.
func (s *Shell) Run() error {
	fmt.Fprint(s.out, intro)

	scanner := bufio.NewScanner(s.in)
	for {
		s.prompt()
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if !s.dispatch(strings.TrimSpace(scanner.Text())) {
			return nil
		}
	}
}

func (s *Shell) prompt() {
	text := "(jsonpath) > "
	if s.colorize {
		text = promptColor.Sprint(text)
	}
	fmt.Fprint(s.out, text)
}

// dispatch runs one command line; it returns false when the session ends.
func (s *Shell) dispatch(line string) bool {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
	case "quit", "exit":
		return false
	case "help", "?":
		s.help()
	case "load":
		s.load(arg, false)
	case "yaml":
		s.load(arg, true)
	case "eval":
		s.eval(arg)
	case "tokens":
		s.tokens(arg)
	case "ast":
		s.ast(arg)
	case "paths":
		s.paths()
	case "pointer":
		s.pointer(arg)
	default:
		if strings.HasPrefix(line, "$") {
			s.eval(line)
			break
		}
		fmt.Fprintf(s.out, "unknown command %q, try help\n", cmd)
	}
	return true
}

func (s *Shell) help() {
	fmt.Fprint(s.out, strings.Join([]string{
		"load <file>      load a JSON document",
		"yaml <file>      load a YAML document",
		"eval <query>     evaluate a query (a bare query starting with $ works too)",
		"tokens <query>   show the token stream of a query",
		"ast <query>      show the canonical form of a parsed query",
		"paths            list every normalized path in the document",
		"pointer <path>   convert a normalized path to an RFC 6901 JSON Pointer",
		"quit             leave the shell",
	}, "\n") + "\n")
}

func (s *Shell) load(path string, asYAML bool) {
	if path == "" {
		fmt.Fprintln(s.out, "usage: load <file>")
		return
	}

	loader := document.Load
	if asYAML {
		loader = document.LoadYAML
	}
	doc, err := loader(path)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	s.document = doc
	s.loaded = true
	s.source = path
	fmt.Fprintf(s.out, "loaded %s\n", path)
}

func (s *Shell) eval(query string) {
	if !s.requireDocument() {
		return
	}
	if query == "" {
		fmt.Fprintln(s.out, "usage: eval <query>")
		return
	}

	q, err := jsonpath.Compile(query)
	if err != nil {
		s.queryError(query, err)
		return
	}

	list, err := q.Evaluate(s.document)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	if list.Len() == 0 {
		fmt.Fprintln(s.out, "empty nodelist")
		return
	}
	for node := range list.All() {
		fmt.Fprintf(s.out, "%s = %s\n", node.Path(), pretty.Scalar(node.Value(), s.colorize))
	}
}

func (s *Shell) tokens(query string) {
	if query == "" {
		fmt.Fprintln(s.out, "usage: tokens <query>")
		return
	}

	toks, err := lexer.Tokenize(query)
	if err != nil {
		s.queryError(query, err)
		return
	}
	for _, tok := range toks {
		fmt.Fprintf(s.out, "%-4d %-16s %s\n", tok.Span.Start, tok.Kind, tok.Text)
	}
}

func (s *Shell) ast(query string) {
	if query == "" {
		fmt.Fprintln(s.out, "usage: ast <query>")
		return
	}

	q, err := jsonpath.Compile(query)
	if err != nil {
		s.queryError(query, err)
		return
	}
	fmt.Fprintln(s.out, q.String())
}

func (s *Shell) paths() {
	if !s.requireDocument() {
		return
	}

	fmt.Fprintf(s.out, "$ = %s\n", pretty.Scalar(s.document, s.colorize))

	list, err := jsonpath.MustCompile("$..*").Evaluate(s.document)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	for node := range list.All() {
		fmt.Fprintf(s.out, "%s = %s\n", node.Path(), pretty.Scalar(node.Value(), s.colorize))
	}
}

func (s *Shell) pointer(path string) {
	if path == "" {
		fmt.Fprintln(s.out, "usage: pointer <normalized-path>")
		return
	}

	p, err := pointer.FromNormalizedPath(path)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%q\n", p.String())
}

func (s *Shell) requireDocument() bool {
	if !s.loaded {
		fmt.Fprintln(s.out, "no document loaded, use: load <file>")
		return false
	}
	return true
}

// queryError prints a compile error with a caret marking its span.
func (s *Shell) queryError(query string, err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)

	var qErr *jsonpath.Error
	if !errors.As(err, &qErr) {
		return
	}
	width := qErr.End - qErr.Start
	if width < 1 {
		width = 1
	}
	fmt.Fprintf(s.out, "  %s\n  %s%s\n", query,
		strings.Repeat(" ", qErr.Start), strings.Repeat("^", width))
}
