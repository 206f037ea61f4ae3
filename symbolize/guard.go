package symbolize

import (
	"go/ast"

	"github.com/rosqual/rosdiscover-go/ir"
)

// parentMap maps every ast.Node reachable under a function body to its
// immediate parent, built once per function since go/ast carries no
// parent pointers (unlike clang::ParentMap, which the original's
// path-condition builder walks directly).
type parentMap map[ast.Node]ast.Node

func buildParentMap(body *ast.BlockStmt) parentMap {
	parents := make(parentMap)
	var stack []ast.Node
	ast.Inspect(body, func(n ast.Node) bool {
		if n == nil {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			return true
		}
		if len(stack) > 0 {
			parents[n] = stack[len(stack)-1]
		}
		stack = append(stack, n)
		return true
	})
	return parents
}

// Guard computes the path condition under which site executes, per
// spec.md §4.6: walk from site up through parents, conjoining one
// conjunct per dominating conditional construct. The empty conjunction
// is ir.True().
func (c *Context) Guard(parents parentMap, site ast.Node) ir.Value {
	guard := ir.True()
	child := site
	for {
		parent, ok := parents[child]
		if !ok {
			return guard
		}
		if conjunct, ok := c.guardConjunct(parents, parent, child); ok {
			guard = conjoin(guard, conjunct)
		}
		child = parent
	}
}

func conjoin(acc, next ir.Value) ir.Value {
	if ir.IsTrivialTrue(acc) {
		return next
	}
	return ir.And{LHS: acc, RHS: next}
}

// guardConjunct reports the guard contribution of parent given that
// control reached it via child, or ok=false if parent contributes
// nothing (e.g. a plain *ast.BlockStmt, or a *ast.RangeStmt per the
// decided Open Question that Go's range loop has no boolean entry
// predicate).
func (c *Context) guardConjunct(parents parentMap, parent, child ast.Node) (ir.Value, bool) {
	switch p := parent.(type) {
	case *ast.IfStmt:
		if child != p.Body && child != p.Else {
			return nil, false // Init and Cond run before the branch is taken
		}
		cond := c.Bool(p.Cond)
		if child == p.Else {
			return ir.Negate{Inner: cond}, true
		}
		return cond, true

	case *ast.ForStmt:
		if p.Cond == nil || (child != p.Body && child != p.Post) {
			return nil, false
		}
		return c.Bool(p.Cond), true

	case *ast.RangeStmt:
		// Decided Open Question: no boolean entry predicate exists for a
		// range loop, so it contributes no conjunct (DESIGN.md #1).
		return nil, false

	case *ast.CaseClause:
		// A case clause's parent is its switch's Body block; the switch
		// statement itself is one level further up.
		switch sw := parents[parents[p]].(type) {
		case *ast.TypeSwitchStmt:
			// Decided Open Question: no symbolic type-test node exists in
			// the closed value IR (DESIGN.md #2).
			return ir.Unknown{Expected: ir.Bool}, true
		case *ast.SwitchStmt:
			return c.switchClauseConjunct(sw, p), true
		}
		return nil, false

	default:
		return nil, false
	}
}

// switchClauseConjunct builds clause's guard: the disjunction of
// Compare(tag, value, EQ) for each of its case values, or (for a
// default clause, List == nil) the negation of the disjunction of every
// sibling non-default clause's values, per spec.md §4.6.
func (c *Context) switchClauseConjunct(sw *ast.SwitchStmt, clause *ast.CaseClause) ir.Value {
	tag := c.Generic(sw.Tag)
	if clause.List != nil {
		return disjunctionOfEquals(tag, clause.List, c)
	}
	var allOthers ir.Value = ir.BoolLiteral{B: false}
	first := true
	for _, stmt := range sw.Body.List {
		other, ok := stmt.(*ast.CaseClause)
		if !ok || other == clause || other.List == nil {
			continue
		}
		disj := disjunctionOfEquals(tag, other.List, c)
		if first {
			allOthers = disj
			first = false
		} else {
			allOthers = ir.Or{LHS: allOthers, RHS: disj}
		}
	}
	return ir.Negate{Inner: allOthers}
}

func disjunctionOfEquals(tag ir.Value, values []ast.Expr, c *Context) ir.Value {
	var acc ir.Value
	for i, expr := range values {
		cmp := ir.Compare{LHS: tag, RHS: c.Generic(expr), Op: ir.EQ}
		if i == 0 {
			acc = cmp
			continue
		}
		acc = ir.Or{LHS: acc, RHS: cmp}
	}
	return acc
}
