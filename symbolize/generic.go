package symbolize

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"github.com/rosqual/rosdiscover-go/ir"
)

// Generic lifts an arbitrary AST expression into a symbolic value,
// implementing spec.md §4.3's "generic expression" sub-symbolizer. It is
// the symbolizer used for path-condition guards (C6, always boolean) and
// for default/written values whose expected type is not otherwise
// pinned down by the call site (spec.md §4.5 step 3: "symbolizing ...
// the default or written value via the generic symbolizer"). Int, Bool,
// and Float below are implemented as a call into Generic followed by a
// type check, per spec.md §9's "may unify them around the generic
// symbolizer plus a final type-check" guidance; String is not, because
// its dispatch genuinely differs (see string.go).
func (c *Context) Generic(expr ast.Expr) ir.Value {
	if expr == nil {
		return ir.Unknown{Expected: ir.UnknownType}
	}
	expr = unwrapTransparent(expr)

	if v, ok := c.constantFold(expr); ok {
		return v
	}

	switch e := expr.(type) {
	case *ast.BinaryExpr:
		return c.symbolizeBinary(e)
	case *ast.UnaryExpr:
		return c.symbolizeUnary(e)
	case *ast.Ident:
		return c.symbolizeIdent(e)
	case *ast.BasicLit:
		return c.symbolizeBasicLit(e)
	}

	c.warnf("unable to symbolize expression (generic) at %s: treating as unknown", c.position(expr))
	return ir.Unknown{Expected: ir.UnknownType}
}

// constantFold consults the type checker's constant evaluator before
// falling through to structural dispatch, per spec.md §4.3/§9: "the
// integer path must consult the frontend's constant evaluator first;
// otherwise common cases like `1 + 1` or `sizeof(T)` degrade to
// Unknown." Applied uniformly across all numeric/bool/string constant
// expressions, a superset of the documented integer-only requirement.
func (c *Context) constantFold(expr ast.Expr) (ir.Value, bool) {
	tv, ok := c.Info.Types[expr]
	if !ok || tv.Value == nil {
		return nil, false
	}
	switch tv.Value.Kind() {
	case constant.Int:
		n, exact := constant.Int64Val(tv.Value)
		if !exact {
			return nil, false
		}
		return ir.IntLiteral{N: n}, true
	case constant.Float:
		f, _ := constant.Float64Val(tv.Value)
		return ir.FloatLiteral{X: f}, true
	case constant.Bool:
		return ir.BoolLiteral{B: constant.BoolVal(tv.Value)}, true
	case constant.String:
		return ir.StringLiteral{Text: constant.StringVal(tv.Value)}, true
	default:
		return nil, false
	}
}

func (c *Context) symbolizeBinary(e *ast.BinaryExpr) ir.Value {
	switch e.Op {
	case token.LAND:
		return ir.And{LHS: c.Generic(e.X), RHS: c.Generic(e.Y)}
	case token.LOR:
		return ir.Or{LHS: c.Generic(e.X), RHS: c.Generic(e.Y)}
	case token.EQL:
		return ir.Compare{LHS: c.Generic(e.X), RHS: c.Generic(e.Y), Op: ir.EQ}
	case token.NEQ:
		return ir.Compare{LHS: c.Generic(e.X), RHS: c.Generic(e.Y), Op: ir.NE}
	case token.LSS:
		return ir.Compare{LHS: c.Generic(e.X), RHS: c.Generic(e.Y), Op: ir.LT}
	case token.LEQ:
		return ir.Compare{LHS: c.Generic(e.X), RHS: c.Generic(e.Y), Op: ir.LE}
	case token.GTR:
		return ir.Compare{LHS: c.Generic(e.X), RHS: c.Generic(e.Y), Op: ir.GT}
	case token.GEQ:
		return ir.Compare{LHS: c.Generic(e.X), RHS: c.Generic(e.Y), Op: ir.GE}
	default:
		c.warnf("unsupported binary operator %s at %s: treating as unknown", e.Op, c.position(e))
		return ir.Unknown{Expected: ir.UnknownType}
	}
}

func (c *Context) symbolizeUnary(e *ast.UnaryExpr) ir.Value {
	switch e.Op {
	case token.NOT:
		return ir.Negate{Inner: c.Generic(e.X)}
	default:
		c.warnf("unsupported unary operator %s at %s: treating as unknown", e.Op, c.position(e))
		return ir.Unknown{Expected: ir.UnknownType}
	}
}

func (c *Context) symbolizeIdent(e *ast.Ident) ir.Value {
	obj := c.identObject(e)
	if obj == nil {
		c.warnf("unable to resolve identifier %q at %s: treating as unknown", e.Name, c.position(e))
		return ir.Unknown{Expected: ir.UnknownType}
	}
	switch o := obj.(type) {
	case *types.Var:
		return ir.VariableReference{LocalID: o.Name(), Type: symbolicTypeOf(o.Type())}
	case *types.Func:
		return ir.Call{Callee: o.FullName()}
	default:
		c.warnf("unsupported declaration kind for %q at %s: treating as unknown", e.Name, c.position(e))
		return ir.Unknown{Expected: ir.UnknownType}
	}
}

func (c *Context) symbolizeBasicLit(e *ast.BasicLit) ir.Value {
	switch e.Kind {
	case token.INT:
		if v := parseInt(e.Value); v != nil {
			return ir.IntLiteral{N: *v}
		}
	case token.FLOAT:
		if v := parseFloat(e.Value); v != nil {
			return ir.FloatLiteral{X: *v}
		}
	case token.STRING:
		if v, ok := unquoteGoString(e.Value); ok {
			return ir.StringLiteral{Text: v}
		}
	}
	c.warnf("unable to symbolize literal %q at %s: treating as unknown", e.Value, c.position(e))
	return ir.Unknown{Expected: ir.UnknownType}
}

// symbolicTypeOf maps a go/types.Type onto the closed SymbolicType
// enum, per spec.md §4.7.4 ("parameters whose type does not map to a
// supported symbolic type are dropped").
func symbolicTypeOf(t types.Type) ir.Type {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return ir.Unsupported
	}
	switch basic.Info() {
	case types.IsBoolean:
		return ir.Bool
	case types.IsString:
		return ir.String
	}
	switch {
	case basic.Info()&types.IsInteger != 0:
		return ir.Integer
	case basic.Info()&types.IsFloat != 0:
		return ir.Float
	case basic.Info()&types.IsBoolean != 0:
		return ir.Bool
	case basic.Info()&types.IsString != 0:
		return ir.String
	default:
		return ir.Unsupported
	}
}
