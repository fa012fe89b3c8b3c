package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"strings"
)

// toolMarker and promptMarker are the doc-comment directives the scanner
// looks for, one per eligible function, e.g.:
//
//	// GetWeather reports current conditions for a place.
//	//
//	// mcp:tool
//	func GetWeather(ctx context.Context, place string, units *string) (*mcp.CallToolResult, error) { ... }
const (
	toolMarker   = "mcp:tool"
	promptMarker = "mcp:prompt"
)

// ScanPackage scans the already-parsed files (callers typically get these
// from go/packages or a directory walk) and returns one FuncDescriptor per
// marked function. It does no file-name filtering of its own; ParseDir is
// the entry point that skips test and generated files.
func ScanPackage(fset *token.FileSet, pkgPath string, files []*ast.File) ([]*FuncDescriptor, error) {
	var out []*FuncDescriptor
	for _, f := range files {
		descs, err := scanFile(fset, pkgPath, f)
		if err != nil {
			return nil, err
		}
		out = append(out, descs...)
	}
	return out, nil
}

// ParseDir is a convenience wrapper around ScanPackage for callers (e.g.
// cmd/mcpgen) that only have a directory path. Files ending in _test.go
// or starting with "zz_generated" are skipped, so generated output is
// never itself a scan input.
func ParseDir(dir, pkgPath string) ([]*FuncDescriptor, error) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasPrefix(name, "zz_generated")
	}, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("gen: parse %s: %w", dir, err)
	}

	var out []*FuncDescriptor
	for _, pkg := range pkgs {
		var files []*ast.File
		for _, f := range pkg.Files {
			files = append(files, f)
		}
		descs, err := ScanPackage(fset, pkgPath, files)
		if err != nil {
			return nil, err
		}
		out = append(out, descs...)
	}
	return out, nil
}

func scanFile(fset *token.FileSet, pkgPath string, f *ast.File) ([]*FuncDescriptor, error) {
	var out []*FuncDescriptor
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Recv != nil || fn.Doc == nil {
			continue
		}
		kind, name, ok := markerFromDoc(fn.Doc)
		if !ok {
			continue
		}
		desc, err := describeFunc(pkgPath, fn, kind, name)
		if err != nil {
			return nil, fmt.Errorf("gen: %s: %s: %w", fset.Position(fn.Pos()), fn.Name.Name, err)
		}
		out = append(out, desc)
	}
	return out, nil
}

// markerFromDoc scans a doc comment group for an "mcp:tool" or
// "mcp:prompt" line, optionally followed by "name=<override>".
func markerFromDoc(doc *ast.CommentGroup) (Kind, string, bool) {
	for _, c := range doc.List {
		line := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		switch {
		case line == toolMarker || strings.HasPrefix(line, toolMarker+" "):
			return KindTool, markerOverrideName(line, toolMarker), true
		case line == promptMarker || strings.HasPrefix(line, promptMarker+" "):
			return KindPrompt, markerOverrideName(line, promptMarker), true
		}
	}
	return 0, "", false
}

func markerOverrideName(line, marker string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(line, marker))
	const prefix = "name="
	if strings.HasPrefix(rest, prefix) {
		return strings.TrimSpace(strings.TrimPrefix(rest, prefix))
	}
	return ""
}

var expectedResult = map[Kind]string{
	KindTool:   "CallToolResult",
	KindPrompt: "GetPromptResult",
}

// describeFunc builds a FuncDescriptor from fn's AST signature (§6
// "Generator input contract": eligible iff it returns the expected result
// type and carries the matching marker; parameter types must be
// serializable primitives, strings, enums, or records of same).
func describeFunc(pkgPath string, fn *ast.FuncDecl, kind Kind, nameOverride string) (*FuncDescriptor, error) {
	desc := &FuncDescriptor{
		Kind:     kind,
		Name:     nameOverride,
		FuncName: fn.Name.Name,
		Package:  pkgPath,
	}
	if desc.Name == "" {
		desc.Name = fn.Name.Name
	}

	if err := describeResult(fn, kind, desc); err != nil {
		return nil, err
	}

	fields := fn.Type.Params.List
	for i, field := range fields {
		typeStr := exprString(field.Type)
		if i == 0 && typeStr == "context.Context" {
			desc.TakesContext = true
			continue
		}
		names := field.Names
		if len(names) == 0 {
			return nil, fmt.Errorf("parameter %d: anonymous parameters are not supported by the generator", i)
		}
		for _, n := range names {
			desc.Params = append(desc.Params, ParamDescriptor{
				Name:     n.Name,
				GoType:   typeStr,
				Optional: strings.HasPrefix(typeStr, "*"),
			})
		}
	}
	return desc, nil
}

func describeResult(fn *ast.FuncDecl, kind Kind, desc *FuncDescriptor) error {
	if fn.Type.Results == nil || len(fn.Type.Results.List) != 2 {
		return fmt.Errorf("marked functions must return exactly (*%s, error)", expectedResult[kind])
	}
	resultType := exprString(fn.Type.Results.List[0].Type)
	trimmed := strings.TrimPrefix(resultType, "*")
	want := expectedResult[kind]
	if !strings.HasSuffix(trimmed, want) {
		return fmt.Errorf("return type %s does not match the %s result type %s", resultType, kind, want)
	}
	errType := exprString(fn.Type.Results.List[1].Type)
	if errType != "error" {
		return fmt.Errorf("second return value must be error, got %s", errType)
	}
	desc.ResultType = trimmed
	return nil
}

// exprString renders a type expression back to source text without
// needing a full printer.Fprint (overkill for the handful of shapes the
// generator accepts: identifiers, selectors, pointers, slices).
func exprString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		return exprString(t.X) + "." + t.Sel.Name
	case *ast.StarExpr:
		return "*" + exprString(t.X)
	case *ast.ArrayType:
		return "[]" + exprString(t.Elt)
	default:
		return fmt.Sprintf("%T", expr)
	}
}
