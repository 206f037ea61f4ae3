// Package symbolize implements the value symbolizers (C3), statement
// ordering (C4), function symbolizer (C5), and path-condition builder
// (C6) of spec.md §4.3-§4.6.
package symbolize

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/rosqual/rosdiscover-go/internal/diag"
)

// Context carries the type-checked package information and ambient
// logging context needed to lift AST expressions into symbolic values.
// It holds no mutable analysis state itself: fresh locals are allocated
// on the ir.SymbolicFunction being built (CreateLocal). No map from a
// read call's AST site to its local is kept, so a later use of that
// call's result is not linked to the local.
type Context struct {
	Ctx  context.Context
	Info *types.Info
	Fset *token.FileSet
	Pkg  *types.Package
}

func (c *Context) warnf(format string, args ...any) {
	diag.Warn(c.Ctx, format, args...)
}

// unwrapTransparent peels the Go analogues of the original's transparent
// wrappers (ParenExpr for parenthesization; a single-argument conversion
// call to a predeclared basic type for the "std::string single-argument
// constructor" case and its int/bool/float counterparts) and returns the
// innermost expression. Go has no ImplicitCastExpr/
// MaterializeTemporaryExpr/CXXBindTemporaryExpr equivalents — implicit
// conversions live purely in the type system, not as separate AST nodes.
func unwrapTransparent(expr ast.Expr) ast.Expr {
	for {
		switch e := expr.(type) {
		case *ast.ParenExpr:
			expr = e.X
			continue
		case *ast.CallExpr:
			if ident, ok := e.Fun.(*ast.Ident); ok && len(e.Args) == 1 && isBasicTypeName(ident.Name) {
				expr = e.Args[0]
				continue
			}
		}
		return expr
	}
}

func isBasicTypeName(name string) bool {
	switch name {
	case "string", "bool",
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "byte", "rune":
		return true
	default:
		return false
	}
}

// identObject resolves an *ast.Ident to the object it refers to, trying
// both Uses (a reference) and Defs (a declaration site) since a name
// expression may itself be the identifier in a short variable
// declaration used elsewhere.
func (c *Context) identObject(ident *ast.Ident) types.Object {
	if obj := c.Info.Uses[ident]; obj != nil {
		return obj
	}
	return c.Info.Defs[ident]
}

// position renders expr's source location for diagnostics.
func (c *Context) position(expr ast.Expr) token.Position {
	return c.Fset.Position(expr.Pos())
}
