// Package rosdiscover is the whole-program orchestration layer (C7): it
// drives package loading, call-graph construction, the containing/
// relevant-function computation, and the two-pass declare/symbolize
// assembly of the final ir.SymbolicProgram. Grounded on
// original_source/include/rosdiscover-clang/Summary/Action.h's
// SummaryBuilderASTConsumer::HandleTranslationUnit.
package rosdiscover

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/callgraph"
	"golang.org/x/tools/go/callgraph/static"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/rosqual/rosdiscover-go/apicall"
	"github.com/rosqual/rosdiscover-go/internal/diag"
	"github.com/rosqual/rosdiscover-go/ir"
	"github.com/rosqual/rosdiscover-go/symbolize"
)

// declSite pairs a function declaration with the package it was loaded
// from, the join point between a qualified name and the AST/type info
// needed to declare and symbolize it.
type declSite struct {
	decl *ast.FuncDecl
	fn   *types.Func
	pkg  *packages.Package
}

// scanResult is one package worker's contribution to the whole-program
// index, merged onto the single coordinator goroutine (spec.md §5).
type scanResult struct {
	pkg        *packages.Package
	decls      []declSite
	apiCalls   []apicall.RawAPICall
	containers map[string]bool // qualified names with >=1 API call site
}

// Run executes C7 end to end: load is assumed already done by the
// caller (internal/load), pkgs is the fully type-checked package set,
// catalog is the (possibly configuration-extended) C2 catalog.
func Run(ctx context.Context, pkgs []*packages.Package, catalog *apicall.Catalog) (*ir.SymbolicProgram, error) {
	prog, _ := ssautil.AllPackages(pkgs, ssa.SanityCheckFunctions)
	prog.Build()
	cg := static.CallGraph(prog)

	results := make(chan scanResult)
	g, gctx := errgroup.WithContext(ctx)
	for _, pkg := range pkgs {
		pkg := pkg
		g.Go(func() error {
			workerCtx := diag.With(gctx, "package", pkg.PkgPath)
			res := scanPackage(workerCtx, pkg, catalog)
			select {
			case results <- res:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	go func() {
		g.Wait()
		close(results)
	}()

	// Single coordinator: every mutation of the whole-program index
	// happens here, sequentially, so no lock is needed while resolving
	// FunctionCall targets against it later.
	declIndex := map[string]declSite{}
	apiCallsByDecl := map[*ast.FuncDecl][]apicall.RawAPICall{}
	containing := map[string]bool{}
	for res := range results {
		for _, d := range res.decls {
			name := d.fn.FullName()
			if _, exists := declIndex[name]; exists {
				diag.Warn(ctx, "duplicate qualified function name, first seen definition wins",
					"name", name, "package", res.pkg.PkgPath)
				continue
			}
			declIndex[name] = d
		}
		for _, raw := range res.apiCalls {
			apiCallsByDecl[raw.Enclosing] = append(apiCallsByDecl[raw.Enclosing], raw)
		}
		for name := range res.containers {
			containing[name] = true
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan packages: %w", err)
	}

	relevant := computeRelevant(cg, containing)

	program := ir.NewSymbolicProgram()
	fsets := make(map[string]*declSite, len(relevant))
	for name := range relevant {
		site, ok := declIndex[name]
		if !ok {
			continue // relevant via call graph but not locally declared (e.g. stdlib): no source to symbolize
		}
		fsets[name] = &site
		fn := ir.NewSymbolicFunction(name, site.pkg.Fset.Position(site.decl.Pos()).String())
		for p, param := range signatureParameters(site.fn) {
			fn.AddParameter(ir.Parameter{Index: p, Name: param.name, Type: param.typ})
		}
		program.Declare(fn)
	}

	// Every ir.SymbolicFunction here is disjoint (owns its own body and
	// local counter); the shared program.Functions map is read-only from
	// this point on (Declare already ran on the coordinator above), so
	// concurrent Lookup calls need no lock (spec.md §5's "declare-phase/
	// symbolize-phase split to avoid taking a lock during FunctionCall
	// resolution").
	g2, gctx2 := errgroup.WithContext(ctx)
	for name, site := range fsets {
		name, site := name, site
		g2.Go(func() error {
			fn, _ := program.Lookup(name)
			symCtx := &symbolize.Context{
				Ctx:  diag.With(gctx2, "function", name),
				Info: site.pkg.TypesInfo,
				Fset: site.pkg.Fset,
				Pkg:  site.pkg.Types,
			}
			fs := symbolize.NewFunctionSymbolizer(symCtx, relevant)
			fs.Symbolize(fn, site.decl, apiCallsByDecl[site.decl])
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, fmt.Errorf("symbolize functions: %w", err)
	}

	return program, nil
}

// scanPackage is a package worker: it finds every API call site and
// every top-level function declaration, purely by reading pkg's own AST
// — no shared state is touched until the result is handed to the
// coordinator.
func scanPackage(ctx context.Context, pkg *packages.Package, catalog *apicall.Catalog) scanResult {
	res := scanResult{pkg: pkg, containers: map[string]bool{}}
	res.apiCalls = catalog.FindAll(pkg)
	for _, raw := range res.apiCalls {
		if raw.Enclosing == nil {
			diag.Skip(ctx, "api call outside any function declaration, skipping")
			continue
		}
		if fn, ok := pkg.TypesInfo.Defs[raw.Enclosing.Name].(*types.Func); ok {
			res.containers[fn.FullName()] = true
		}
	}

	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			decl, ok := d.(*ast.FuncDecl)
			if !ok {
				continue
			}
			fn, ok := pkg.TypesInfo.Defs[decl.Name].(*types.Func)
			if !ok {
				continue
			}
			res.decls = append(res.decls, declSite{decl: decl, fn: fn, pkg: pkg})
		}
	}
	return res
}

// computeRelevant returns containing ∪ every function that transitively
// calls a containing function, per spec.md §4.7.3: walk the static
// call graph's incoming edges from each containing function's node.
func computeRelevant(cg *callgraph.Graph, containing map[string]bool) map[string]bool {
	nodeByName := map[string]*callgraph.Node{}
	for fn, node := range cg.Nodes {
		obj, ok := objectOf(fn)
		if !ok {
			continue
		}
		nodeByName[obj.FullName()] = node
	}

	relevant := map[string]bool{}
	var queue []*callgraph.Node
	for name := range containing {
		relevant[name] = true
		if node, ok := nodeByName[name]; ok {
			queue = append(queue, node)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, edge := range n.In {
			caller := edge.Caller
			obj, ok := objectOf(caller.Func)
			if !ok {
				continue
			}
			name := obj.FullName()
			if relevant[name] {
				continue
			}
			relevant[name] = true
			queue = append(queue, caller)
		}
	}
	return relevant
}

func objectOf(fn *ssa.Function) (*types.Func, bool) {
	obj := fn.Object()
	if obj == nil {
		return nil, false
	}
	tf, ok := obj.(*types.Func)
	return tf, ok
}

type namedParam struct {
	name string
	typ  ir.Type
}

// signatureParameters lifts fn's formal parameters, dropping any whose
// type does not map onto the closed symbolic Type enum, keyed by their
// original declaration index (spec.md §4.7.4).
func signatureParameters(fn *types.Func) map[int]namedParam {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil
	}
	params := sig.Params()
	out := make(map[int]namedParam, params.Len())
	for i := 0; i < params.Len(); i++ {
		v := params.At(i)
		t := symbolicTypeOfParam(v.Type())
		if t == ir.Unsupported {
			continue
		}
		name := v.Name()
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		out[i] = namedParam{name: name, typ: t}
	}
	return out
}

func symbolicTypeOfParam(t types.Type) ir.Type {
	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return ir.Unsupported
	}
	switch {
	case basic.Info()&types.IsBoolean != 0:
		return ir.Bool
	case basic.Info()&types.IsString != 0:
		return ir.String
	case basic.Info()&types.IsInteger != 0:
		return ir.Integer
	case basic.Info()&types.IsFloat != 0:
		return ir.Float
	default:
		return ir.Unsupported
	}
}
