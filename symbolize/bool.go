package symbolize

import (
	"go/ast"

	"github.com/rosqual/rosdiscover-go/ir"
)

// Bool lifts an expression expected to denote a boolean value. It
// delegates structurally to Generic (which already handles logical and
// comparison operators, identifiers, and literals of every kind) and
// then gates the result on type, per spec.md §9's "unify around the
// generic symbolizer plus a final type-check" guidance: a generically
// lifted value whose SymbolicType is neither Bool nor UnknownType is a
// type mismatch at this call site and degrades to Unknown, rather than
// being reported as if it were the boolean the caller asked for.
func (c *Context) Bool(expr ast.Expr) ir.Value {
	return c.typedGeneric(expr, ir.Bool)
}

func (c *Context) typedGeneric(expr ast.Expr, want ir.Type) ir.Value {
	v := c.Generic(expr)
	switch v.SymbolicType() {
	case want, ir.UnknownType:
		return v
	default:
		return ir.Unknown{Expected: want}
	}
}
