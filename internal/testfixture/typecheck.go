package testfixture

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

// TypeCheck parses and type-checks a single-file snippet using only the
// standard library importer, for focused unit tests of the value
// symbolizers and path-condition builder against small in-memory
// expressions — no module/package loading overhead.
func TypeCheck(t *testing.T, src string) (*ast.File, *types.Info, *token.FileSet) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "snippet.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	// Snippets bind expressions to otherwise unused locals (see ExprFor),
	// so soft errors such as "declared and not used" are tolerated.
	var hardErr error
	conf := types.Config{
		Importer: importer.Default(),
		Error: func(err error) {
			if terr, ok := err.(types.Error); ok && terr.Soft {
				return
			}
			if hardErr == nil {
				hardErr = err
			}
		},
	}
	conf.Check("snippet", fset, []*ast.File{file}, info)
	if hardErr != nil {
		t.Fatalf("type-check: %v", hardErr)
	}
	return file, info, fset
}

// ExprFor finds the initializer expression of the short variable
// declaration `name := <expr>` (or the sole RHS of `name = <expr>`)
// inside fn's body, for tests that need to grab one specific expression
// node out of a larger snippet by the name it was assigned to.
func ExprFor(fn *ast.FuncDecl, name string) ast.Expr {
	var found ast.Expr
	ast.Inspect(fn.Body, func(n ast.Node) bool {
		assign, ok := n.(*ast.AssignStmt)
		if !ok {
			return true
		}
		for i, lhs := range assign.Lhs {
			if ident, ok := lhs.(*ast.Ident); ok && ident.Name == name && i < len(assign.Rhs) {
				found = assign.Rhs[i]
			}
		}
		return true
	})
	return found
}

// FuncByName returns the top-level function declaration named name.
func FuncByName(file *ast.File, name string) *ast.FuncDecl {
	for _, d := range file.Decls {
		if fn, ok := d.(*ast.FuncDecl); ok && fn.Name.Name == name {
			return fn
		}
	}
	return nil
}
