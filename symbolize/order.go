package symbolize

import (
	"go/ast"

	"github.com/rosqual/rosdiscover-go/apicall"
)

// OrderSites returns the subset of sites reachable under body, in the
// order a straight-line executor would reach them, per spec.md §4.4. A
// hand-written recursive post-order walk is used instead of
// ast.Inspect's pre-order callback because a call site must be ordered
// after the sub-expressions (and therefore any nested call sites) that
// compute its own arguments, and post-order visitation gives that for
// free. Siblings are visited in source order, so statements of one
// *ast.BlockStmt come out in source-position order with no separate sort,
// and the result depends only on the AST.
func OrderSites(body *ast.BlockStmt, sites []*ast.CallExpr) []*ast.CallExpr {
	want := make(map[*ast.CallExpr]bool, len(sites))
	for _, s := range sites {
		want[s] = true
	}

	var ordered []*ast.CallExpr
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if n == nil {
			return
		}
		ast.Inspect(n, func(child ast.Node) bool {
			if child == nil || child == n {
				return true
			}
			// Recurse into child's own subtree fully (post-order) before
			// considering whether child itself is a matched call site, then
			// stop ast.Inspect's own descent so we don't double-visit.
			walk(child)
			return false
		})
		if call, ok := n.(*ast.CallExpr); ok && want[call] {
			ordered = append(ordered, call)
		}
	}
	walk(body)
	return ordered
}

// Order is the apicall.RawAPICall-specific convenience wrapper around
// OrderSites.
func Order(body *ast.BlockStmt, raw []apicall.RawAPICall) []apicall.RawAPICall {
	sites := make([]*ast.CallExpr, len(raw))
	bySite := make(map[*ast.CallExpr]apicall.RawAPICall, len(raw))
	for i, r := range raw {
		sites[i] = r.Site
		bySite[r.Site] = r
	}
	var result []apicall.RawAPICall
	for _, s := range OrderSites(body, sites) {
		result = append(result, bySite[s])
	}
	return result
}
