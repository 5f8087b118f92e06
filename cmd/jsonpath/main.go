package main

import (
	"fmt"
	"os"

	"github.com/jacoelho/jsonpath"
	"github.com/jacoelho/jsonpath/internal/config"
	"github.com/jacoelho/jsonpath/internal/document"
	"github.com/jacoelho/jsonpath/internal/exit"
	"github.com/jacoelho/jsonpath/internal/pretty"
	"github.com/jacoelho/jsonpath/internal/repl"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	if cfg.REPL {
		if err := repl.New(os.Stdin, os.Stdout, !cfg.NoColor).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exit.CodeUsage
		}
		return exit.CodeOK
	}

	exitResult = evaluate(cfg)
	exitResult.Print()
	return exitResult.ExitCode
}

func evaluate(cfg *config.Config) *exit.Result {
	doc, err := loadDocument(cfg)
	if err != nil {
		return exit.WithCodef(exit.CodeLoad, "Error: %v\n", err)
	}

	query, err := jsonpath.Compile(cfg.Query)
	if err != nil {
		return exit.WithCodef(exit.CodeCompile, "Error: %v\n", err)
	}

	list, err := query.Evaluate(doc)
	if err != nil {
		return exit.WithCodef(exit.CodeEval, "Error: %v\n", err)
	}

	return exit.Success(render(cfg, list))
}

func loadDocument(cfg *config.Config) (any, error) {
	if cfg.Stdin() {
		if cfg.YAML {
			return document.DecodeYAML(os.Stdin)
		}
		return document.DecodeJSON(os.Stdin)
	}
	if cfg.YAML {
		return document.LoadYAML(cfg.File)
	}
	return document.Load(cfg.File)
}

func render(cfg *config.Config, list *jsonpath.NodeList) string {
	flags := pretty.Flags{
		Compact: cfg.Compact,
		Indent:  "  ",
		Color:   !cfg.NoColor,
	}

	var b []byte
	switch {
	case cfg.PathsOnly:
		for _, path := range list.Paths() {
			b = append(b, path...)
			b = append(b, '\n')
		}

	case cfg.ValuesOnly:
		for _, value := range list.Values() {
			b = append(b, pretty.Format(value, flags)...)
			b = append(b, '\n')
		}

	default:
		for node := range list.All() {
			b = append(b, node.Path()...)
			b = append(b, " = "...)
			b = append(b, pretty.Scalar(node.Value(), flags.Color)...)
			b = append(b, '\n')
		}
	}
	return string(b)
}
