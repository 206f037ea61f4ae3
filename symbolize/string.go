package symbolize

import (
	"go/ast"

	"github.com/rosqual/rosdiscover-go/ir"
)

// String lifts an expression expected to denote a string (a topic,
// service, or parameter name; a string-typed default/written value).
//
// Unlike Generic/Int/Bool/Float, it never lifts an identifier reference
// to a VariableReference or Call: grounded directly on
// original_source/include/rosdiscover-clang/Symbolic/StringSymbolizer.h,
// whose symbolize(clang::DeclRefExpr*) unconditionally returns
// valueBuilder.unknown() regardless of what the identifier resolves to.
// A name or value computed from a variable is, from this analyzer's
// point of view, simply not known  --  it does not attempt to track
// string-valued data flow the way it tracks booleans feeding guards.
func (c *Context) String(expr ast.Expr) ir.Value {
	if expr == nil {
		return ir.Unknown{Expected: ir.String}
	}
	expr = unwrapTransparent(expr)

	if v, ok := c.constantFold(expr); ok {
		if v.SymbolicType() == ir.String {
			return v
		}
		return ir.Unknown{Expected: ir.String}
	}

	switch e := expr.(type) {
	case *ast.BasicLit:
		v := c.symbolizeBasicLit(e)
		if v.SymbolicType() == ir.String {
			return v
		}
	case *ast.Ident, *ast.SelectorExpr:
		// Always unknown, per StringSymbolizer.h: a name or value that
		// flows through a variable is not tracked symbolically.
	}
	return ir.Unknown{Expected: ir.String}
}
