package symbolize

import (
	"go/ast"
	"go/types"

	"github.com/rosqual/rosdiscover-go/apicall"
	"github.com/rosqual/rosdiscover-go/internal/diag"
	"github.com/rosqual/rosdiscover-go/ir"
)

// FunctionSymbolizer implements spec.md §4.5: it unifies a function's API
// calls and its calls to other relevant functions into one ordered
// statement sequence, lifts each into the IR, attaches a path condition
// to each, and appends the result to the function's body. One
// FunctionSymbolizer is used per symbolized function; Relevant is shared
// read-only state handed down by the call-graph driver (C7).
type FunctionSymbolizer struct {
	*Context
	Relevant map[string]bool // qualified names eligible for FunctionCall resolution
}

// NewFunctionSymbolizer returns a symbolizer sharing ctx's type info and
// logging context, scoped to the given relevant-function set.
func NewFunctionSymbolizer(ctx *Context, relevant map[string]bool) *FunctionSymbolizer {
	return &FunctionSymbolizer{Context: ctx, Relevant: relevant}
}

// pending is one unified raw statement awaiting ordering and lifting.
type pending struct {
	site   *ast.CallExpr
	api    *apicall.RawAPICall // non-nil for a recognized API call
	callee string               // non-empty for an inter-procedural call
}

// Symbolize lifts decl's body into fn.Body, given the API call sites C2
// already found with this function as their Enclosing. It is the C5
// entry point invoked once per relevant function by the driver.
func (fs *FunctionSymbolizer) Symbolize(fn *ir.SymbolicFunction, decl *ast.FuncDecl, apiCalls []apicall.RawAPICall) {
	if decl.Body == nil {
		fn.Define(ir.Compound{})
		return
	}

	apiSites := make(map[*ast.CallExpr]bool, len(apiCalls))
	items := make(map[*ast.CallExpr]pending, len(apiCalls))
	for i := range apiCalls {
		r := apiCalls[i]
		apiSites[r.Site] = true
		items[r.Site] = pending{site: r.Site, api: &r}
	}

	for _, site := range fs.findInterproceduralCalls(decl.Body, apiSites) {
		items[site] = pending{site: site, callee: fs.calleeName(site)}
	}

	sites := make([]*ast.CallExpr, 0, len(items))
	for s := range items {
		sites = append(sites, s)
	}
	ordered := OrderSites(decl.Body, sites)

	parents := buildParentMap(decl.Body)

	var stmts []ir.Stmt
	for _, site := range ordered {
		item := items[site]
		stmt, ok := fs.lift(fn, item)
		if !ok {
			continue
		}
		guard := fs.Guard(parents, site)
		stmts = append(stmts, ir.Annotate(stmt, guard))
	}
	fn.Define(ir.Compound{Stmts: stmts})
}

// findInterproceduralCalls returns every call site in body whose callee
// resolves to a named function, excluding sites already claimed by an
// API call. Filtering against Relevant happens in lift, not here, so
// that a call to a non-relevant (leaf, no-API-reaching) function is
// still discovered and then dropped with a logged reason rather than
// never being looked at. A call through a function value (no
// statically resolved callee) is logged as skipped here.
func (fs *FunctionSymbolizer) findInterproceduralCalls(body *ast.BlockStmt, apiSites map[*ast.CallExpr]bool) []*ast.CallExpr {
	var sites []*ast.CallExpr
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || apiSites[call] {
			return true
		}
		if fs.calleeName(call) != "" {
			sites = append(sites, call)
		} else if tv, ok := fs.Info.Types[call.Fun]; ok && tv.IsValue() {
			diag.Skip(fs.Ctx, "skipping indirect call with no statically resolved callee",
				"location", fs.position(call).String())
		}
		return true
	})
	return sites
}

// calleeName returns call's statically resolved callee's qualified name,
// or "" if the callee is not a named function (a func-typed variable or
// field, a closure value, a builtin, a type conversion) — the
// indirect-callee case spec.md §4.5 edge case (i) requires skipping
// rather than guessing. An interface method call resolves to the
// interface's method and is returned by name.
func (fs *FunctionSymbolizer) calleeName(call *ast.CallExpr) string {
	var ident *ast.Ident
	switch f := call.Fun.(type) {
	case *ast.Ident:
		ident = f
	case *ast.SelectorExpr:
		ident = f.Sel
	default:
		return ""
	}
	obj := fs.identObject(ident)
	fn, ok := obj.(*types.Func)
	if !ok {
		return ""
	}
	return fn.FullName()
}

func (fs *FunctionSymbolizer) lift(fn *ir.SymbolicFunction, item pending) (ir.Stmt, bool) {
	if item.api != nil {
		return fs.liftAPICall(fn, *item.api)
	}
	if !fs.Relevant[item.callee] {
		diag.Skip(fs.Ctx, "skipping call to non-relevant function", "callee", item.callee,
			"location", fs.position(item.site).String())
		return nil, false
	}
	return ir.FunctionCall{Callee: item.callee}, true
}

// nameValue lifts a RawAPICall's resource-name argument via the string
// symbolizer, or Unknown if the call site carried no name argument at
// all (e.g. a bare ros.Init() with no node-name argument).
func (fs *FunctionSymbolizer) nameValue(raw apicall.RawAPICall) ir.Value {
	if raw.NameExpr == nil {
		return ir.Unknown{Expected: ir.String}
	}
	return fs.String(raw.NameExpr)
}

// liftAPICall dispatches on raw.Kind exactly like the original's
// switch (apiCall->getKind()) in FunctionSymbolizer.h, synthesizing a
// fresh local and wrapping in ir.Assignment for every resource-reading
// kind (spec.md §4.5 step 3).
func (fs *FunctionSymbolizer) liftAPICall(fn *ir.SymbolicFunction, raw apicall.RawAPICall) (ir.Stmt, bool) {
	name := fs.nameValue(raw)

	switch raw.Kind {
	case apicall.RosInit:
		return ir.RosInit{Name: name}, true
	case apicall.Publisher:
		return ir.Publisher{Name: name}, true
	case apicall.Subscriber:
		return ir.Subscriber{Name: name}, true
	case apicall.ServiceProvider:
		return ir.ServiceProvider{Name: name}, true
	case apicall.WriteParam:
		return ir.WriteParam{Name: name, Value: fs.Generic(raw.ValueExpr)}, true
	case apicall.DeleteParam:
		return ir.DeleteParam{Name: name}, true

	case apicall.ReadParam, apicall.ReadParamCached:
		value := ir.ReadParam{Name: name}
		local := fn.CreateLocal(ir.UnknownType)
		return ir.Assignment{Local: local.ID, Value: value}, true

	case apicall.ReadParamWithDefault:
		def := fs.Generic(raw.ValueExpr)
		value := ir.ReadParamWithDefault{Name: name, Default: def}
		local := fn.CreateLocal(def.SymbolicType())
		return ir.Assignment{Local: local.ID, Value: value}, true

	case apicall.HasParam:
		value := ir.HasParam{Name: name}
		local := fn.CreateLocal(ir.Bool)
		return ir.Assignment{Local: local.ID, Value: value}, true

	case apicall.ServiceCaller:
		// Decided Open Question (DESIGN.md #4): spec.md §4.5 step 3 lists
		// serviceCall among the resource-reading kinds that synthesize an
		// Assignment, overriding the original's bare-statement behavior.
		value := ir.ServiceCaller{Name: name}
		local := fn.CreateLocal(ir.UnknownType)
		return ir.Assignment{Local: local.ID, Value: value}, true

	default:
		diag.Warn(fs.Ctx, "unrecognized api call kind, skipping", "kind", string(raw.Kind))
		return nil, false
	}
}
