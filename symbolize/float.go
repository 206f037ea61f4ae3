package symbolize

import (
	"go/ast"

	"github.com/rosqual/rosdiscover-go/ir"
)

// Float lifts an expression expected to denote a floating-point value,
// grounded on original_source/include/rosdiscover-clang/Symbolic/
// FloatSymbolizer.h (a FloatingLiteral dispatch plus constant-fold). An
// integer literal in float position lifts to the equal FloatLiteral.
func (c *Context) Float(expr ast.Expr) ir.Value {
	v := c.Generic(expr)
	switch v.SymbolicType() {
	case ir.Float, ir.UnknownType:
		return v
	}
	if lit, ok := v.(ir.IntLiteral); ok {
		return ir.FloatLiteral{X: float64(lit.N)}
	}
	return ir.Unknown{Expected: ir.Float}
}
