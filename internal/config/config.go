// Package config parses the jsonpath CLI's command line.
package config

import (
	"errors"
	"flag"
	"io"
	"strings"

	"github.com/jacoelho/jsonpath/internal/exit"
)

var (
	ErrNoArguments    = errors.New("no arguments provided")
	ErrNoQuery        = errors.New("no query provided")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrOutputConflict = errors.New("-paths and -values are mutually exclusive")
)

// Config represents the complete configuration for the jsonpath tool.
type Config struct {
	Query string // JSONPath query expression
	File  string // document file; empty or "-" means stdin

	YAML       bool // decode the document as YAML
	PathsOnly  bool // print normalized paths only
	ValuesOnly bool // print values only
	Compact    bool // compact JSON output
	NoColor    bool // disable ANSI colors
	REPL       bool // start the interactive shell
}

// Usage returns the CLI usage text.
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: jsonpath [flags] <query> [file]\n\n")
	b.WriteString("Evaluate an RFC 9535 JSONPath query against a JSON document.\n")
	b.WriteString("The document is read from [file], or stdin when absent or \"-\".\n\n")
	b.WriteString("Flags:\n")
	b.WriteString("  -yaml      decode the document as YAML\n")
	b.WriteString("  -paths     print normalized paths only\n")
	b.WriteString("  -values    print values only (default prints path = value lines)\n")
	b.WriteString("  -compact   compact JSON output\n")
	b.WriteString("  -no-color  disable colored output\n")
	b.WriteString("  -repl      start the interactive shell\n")
	return b.String()
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)

	cfg := &Config{}
	fs.BoolVar(&cfg.YAML, "yaml", false, "decode the document as YAML")
	fs.BoolVar(&cfg.PathsOnly, "paths", false, "print normalized paths only")
	fs.BoolVar(&cfg.ValuesOnly, "values", false, "print values only")
	fs.BoolVar(&cfg.Compact, "compact", false, "compact JSON output")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive shell")

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	rest := fs.Args()
	switch {
	case len(rest) >= 1:
		cfg.Query = rest[0]
	case !cfg.REPL:
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoQuery, Usage())
	}
	if len(rest) >= 2 {
		cfg.File = rest[1]
	}
	if len(rest) > 2 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrTooManyArgs, Usage())
	}

	if err := cfg.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}
	return cfg, nil
}

// Validate checks flag combinations.
func (c *Config) Validate() error {
	if c.PathsOnly && c.ValuesOnly {
		return ErrOutputConflict
	}
	return nil
}

// Stdin reports whether the document should be read from standard input.
func (c *Config) Stdin() bool {
	return c.File == "" || c.File == "-"
}
