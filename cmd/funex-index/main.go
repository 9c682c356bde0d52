package main

import (
	"fmt"
	"os"

	"github.com/funvibe/funex/internal/ast"
	"github.com/funvibe/funex/internal/config"
	"github.com/funvibe/funex/internal/diagnostics"
	"github.com/funvibe/funex/internal/inspect"
	"github.com/funvibe/funex/internal/macro"
	"github.com/funvibe/funex/internal/prettyprinter"
	"github.com/funvibe/funex/internal/registry"
	"github.com/funvibe/funex/internal/symbols"
)

// funex-index maintains the persistent macro index. It imports manifests
// written by the compiler and answers what each indexed namespace exports.
// It never parses Funex source and never expands anything.

func indexPath() string {
	if p := os.Getenv("FUNEX_INDEX"); p != "" {
		return p
	}
	return config.DefaultIndexFile
}

func openIndex() *registry.Index {
	ix, err := registry.OpenIndex(indexPath())
	if err != nil {
		fatal(diagnostics.ErrX001, err.Error())
	}
	return ix
}

func fatal(code diagnostics.ErrorCode, message string) {
	diagnostics.NewEmitter().Emit(diagnostics.NewError(code, ast.Meta{}, message))
	os.Exit(1)
}

// signatureText renders an exported signature as a qualified call with one
// capture placeholder per argument, e.g. MyHelpers.unless(&1, &2).
func signatureText(module symbols.Symbol, ref macro.Ref) string {
	args := make([]ast.Node, ref.Arity)
	for i := range args {
		args[i] = &ast.Capture{Index: i + 1}
	}
	return prettyprinter.Render(&ast.DotCall{
		Receiver: ast.Ident(module),
		Member:   ref.Name,
		Args:     args,
	})
}

func handleImport() bool {
	if len(os.Args) < 2 || os.Args[1] != "import" {
		return false
	}
	if len(os.Args) == 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s import <manifest> [manifest2...]\n", os.Args[0])
		os.Exit(1)
	}

	ix := openIndex()
	defer ix.Close()
	emitter := diagnostics.NewEmitter()
	failed := false
	for _, path := range os.Args[2:] {
		m, err := registry.LoadManifest(path)
		if err != nil {
			emitter.Emit(diagnostics.NewError(diagnostics.ErrR001, ast.Meta{}, err.Error()))
			failed = true
			continue
		}
		bag := m.Lint(path)
		emitter.EmitAll(bag)
		if bag.HasErrors() {
			failed = true
			continue
		}
		if err := ix.SaveManifest(m); err != nil {
			emitter.Emit(diagnostics.NewError(diagnostics.ErrX001, ast.Meta{}, err.Error()))
			failed = true
			continue
		}
		fmt.Printf("indexed %s (%d macros)\n", inspect.Symbol(m.ModuleSymbol()), len(m.Macros))
	}
	if failed {
		os.Exit(1)
	}
	return true
}

func handleList() bool {
	if len(os.Args) < 2 || os.Args[1] != "list" {
		return false
	}

	ix := openIndex()
	defer ix.Close()
	modules, err := ix.Modules()
	if err != nil {
		fatal(diagnostics.ErrX001, err.Error())
	}
	for _, module := range modules {
		refs, err := ix.Macros(module)
		if err != nil {
			fatal(diagnostics.ErrX001, err.Error())
		}
		fmt.Printf("%s (%d macros)\n", inspect.Symbol(module), len(refs))
	}
	return true
}

func handleShow() bool {
	if len(os.Args) < 2 || os.Args[1] != "show" {
		return false
	}
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s show <module>\n", os.Args[0])
		os.Exit(1)
	}

	module := symbols.Rooted(symbols.Intern(os.Args[2]))
	ix := openIndex()
	defer ix.Close()

	known, err := ix.Known(module)
	if err != nil {
		fatal(diagnostics.ErrX001, err.Error())
	}
	if !known {
		diagnostics.NewEmitter().Emit(
			diagnostics.NewError(diagnostics.ErrX002, ast.Meta{},
				fmt.Sprintf("module %s is not indexed", inspect.Symbol(module))).
				WithHelp(fmt.Sprintf("run '%s list' to see indexed modules", os.Args[0])))
		os.Exit(1)
	}

	refs, err := ix.Macros(module)
	if err != nil {
		fatal(diagnostics.ErrX001, err.Error())
	}
	aliases, err := ix.Aliases(module)
	if err != nil {
		fatal(diagnostics.ErrX001, err.Error())
	}

	fmt.Println(inspect.Symbol(module))
	for _, ref := range refs {
		fmt.Printf("  %s\n", signatureText(module, ref))
	}
	for _, a := range aliases {
		fmt.Printf("  alias %s = %s\n", a.Name, inspect.Symbol(a.Canonical))
	}
	return true
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [args]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  import <manifest>...   index module manifests")
	fmt.Fprintln(os.Stderr, "  list                   list indexed modules")
	fmt.Fprintln(os.Stderr, "  show <module>          show a module's macros and aliases")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "The index lives in %s; override with FUNEX_INDEX.\n", config.DefaultIndexFile)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	if handleImport() {
		return
	}
	if handleList() {
		return
	}
	if handleShow() {
		return
	}
	printUsage()
	os.Exit(1)
}
