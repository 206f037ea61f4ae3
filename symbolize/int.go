package symbolize

import (
	"go/ast"

	"github.com/rosqual/rosdiscover-go/ir"
)

// Int lifts an expression expected to denote an integer value (a queue
// size, an array index, an integer-typed default/written parameter
// value). Generic already consults the type checker's constant
// evaluator before falling through to structural dispatch, so `1 + 1`
// and named integer constants fold to an IntLiteral here exactly as
// spec.md §4.3/§9 requires rather than degrading to Unknown.
func (c *Context) Int(expr ast.Expr) ir.Value {
	return c.typedGeneric(expr, ir.Integer)
}
