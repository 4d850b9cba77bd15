// Command c23dump reads one C23 source file, parses it, and prints the
// resulting AST and any diagnostics recorded along the way. It is the
// bundled example program spec §6 describes: a minimal, single-file
// driver over the library's public entry points, nothing more.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/c23fe/c23/ast"
	"github.com/c23fe/c23/dialect"
	"github.com/c23fe/c23/diag"
	"github.com/c23fe/c23/internal/termwidth"
	"github.com/c23fe/c23/lexer"
	"github.com/c23fe/c23/parser"
	"github.com/c23fe/c23/printer"
	"github.com/c23fe/c23/span"
)

func main() {
	var (
		std        string
		printAsSrc bool
	)

	flag.StringVar(&std, "std", "c23", "target standard: c17 or c23")
	flag.BoolVar(&printAsSrc, "print", false, "pretty-print the parsed AST back to source instead of dumping the tree")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: c23dump [-std c17|c23] [-print] <file.c>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	profile, err := dialectProfile(std)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "c23dump: %v\n", err)
		os.Exit(1)
	}

	lexed := lexer.Lex(src, lexer.Options{Filename: path, Dialect: profile, AcceptVendorExtensions: true})

	unit, parseDiags := parser.ParseTranslationUnit(lexed.Tokens, parser.NewState())
	diags := append(append([]diag.Diagnostic{}, lexed.Diagnostics...), parseDiags...)

	renderDiagnostics(os.Stderr, lexed.Map, diags)

	if printAsSrc {
		fmt.Print(printer.Print(unit))
	} else {
		dumpTree(os.Stdout, unit)
	}

	for _, d := range diags {
		if d.Severity == diag.Error {
			os.Exit(1)
		}
	}
}

func dialectProfile(std string) (*dialect.Profile, error) {
	switch std {
	case "c23", "":
		return dialect.C23, nil
	case "c17":
		return dialect.C17, nil
	default:
		return nil, fmt.Errorf("c23dump: unknown -std %q (want c17 or c23)", std)
	}
}

func renderDiagnostics(w *os.File, m *span.Map, diags []diag.Diagnostic) {
	width, ok := termwidth.Width(w.Fd())
	if !ok {
		width = 0 // span.Map.Render falls back to its own default
	}
	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s: %s\n", m.String(d.Span), d.Severity, d.Message)
		m.Render(w, d.Span, width)
	}
}

// dumpTree prints n as an indented field tree, the way go/ast.Print does
// for the standard library's own AST, since this package's ~80 node
// types have no simpler textual form of their own worth hand-writing.
func dumpTree(w io.Writer, n ast.Node) {
	dumpValue(w, "", reflect.ValueOf(n), 0)
}

var nodeType = reflect.TypeOf((*ast.Node)(nil)).Elem()

func dumpValue(w io.Writer, label string, v reflect.Value, depth int) {
	prefix := ""
	if label != "" {
		prefix = label + ": "
	}

	for v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
		if v.IsNil() {
			fmt.Fprintf(w, "%s%s<nil>\n", indentOf(depth), prefix)
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Addr().Type()
		if t.Implements(nodeType) {
			n := v.Addr().Interface().(ast.Node)
			fmt.Fprintf(w, "%s%s%T @%d:%d\n", indentOf(depth), prefix, n, n.Span().Start, n.Span().End)
		} else {
			fmt.Fprintf(w, "%s%s%s\n", indentOf(depth), prefix, v.Type())
		}
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.PkgPath != "" {
				continue // the embedded, unexported base — its Span is already printed above
			}
			dumpValue(w, f.Name, v.Field(i), depth+1)
		}
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			fmt.Fprintf(w, "%s%s[]\n", indentOf(depth), prefix)
			return
		}
		fmt.Fprintf(w, "%s%s[%d]\n", indentOf(depth), prefix, v.Len())
		for i := 0; i < v.Len(); i++ {
			dumpValue(w, fmt.Sprintf("%d", i), v.Index(i), depth+1)
		}
	default:
		fmt.Fprintf(w, "%s%s%v\n", indentOf(depth), prefix, v.Interface())
	}
}

func indentOf(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
