package symbolize_test

import (
	"context"
	"go/ast"
	"testing"

	"github.com/rosqual/rosdiscover-go/apicall"
	"github.com/rosqual/rosdiscover-go/internal/load"
	"github.com/rosqual/rosdiscover-go/internal/testfixture"
	"github.com/rosqual/rosdiscover-go/ir"
	"github.com/rosqual/rosdiscover-go/symbolize"
	"golang.org/x/tools/go/packages"
)

const functionTestSrc = `package main

import "example.com/fnfixture/ros"

func publish(nh *ros.NodeHandle) {
	nh.Advertise("chatter", 10)
}

func helper() int { return 1 }

func run(nh *ros.NodeHandle) {
	publish(nh)
	nh.GetParam("rate")
	helper()
}
`

func loadFunctionFixture(t *testing.T) (*packages.Package, map[string]*ast.FuncDecl) {
	t.Helper()
	dir := testfixture.Module(t, "example.com/fnfixture", map[string]string{"main.go": functionTestSrc})
	pkgs, err := load.Load(load.Options{Dir: dir}, "./...")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if errs := load.HasErrors(pkgs); len(errs) > 0 {
		t.Fatalf("load errors: %v", errs)
	}
	var pkg *packages.Package
	for _, p := range pkgs {
		if p.PkgPath == "example.com/fnfixture" {
			pkg = p
		}
	}
	if pkg == nil {
		t.Fatalf("fixture package not found")
	}
	decls := map[string]*ast.FuncDecl{}
	for _, file := range pkg.Syntax {
		for _, d := range file.Decls {
			if fn, ok := d.(*ast.FuncDecl); ok {
				decls[fn.Name.Name] = fn
			}
		}
	}
	return pkg, decls
}

func TestFunctionSymbolizerLiftsAPICallAndRelevantCall(t *testing.T) {
	pkg, decls := loadFunctionFixture(t)
	catalog := apicall.New(nil, nil)
	all := catalog.FindAll(pkg)

	byDecl := map[*ast.FuncDecl][]apicall.RawAPICall{}
	for _, r := range all {
		byDecl[r.Enclosing] = append(byDecl[r.Enclosing], r)
	}

	ctx := &symbolize.Context{Ctx: context.Background(), Info: pkg.TypesInfo, Fset: pkg.Fset, Pkg: pkg.Types}
	relevant := map[string]bool{"example.com/fnfixture.publish": true}
	fs := symbolize.NewFunctionSymbolizer(ctx, relevant)

	fn := ir.NewSymbolicFunction("example.com/fnfixture.run", "run.go:1")
	fs.Symbolize(fn, decls["run"], byDecl[decls["run"]])

	if len(fn.Body.Stmts) != 2 {
		t.Fatalf("got %d statements, want 2 (call to publish, GetParam; helper() is not relevant)", len(fn.Body.Stmts))
	}

	call, ok := fn.Body.Stmts[0].(ir.FunctionCall)
	if !ok || call.Callee != "example.com/fnfixture.publish" {
		t.Errorf("stmt 0: got %#v, want FunctionCall{publish}", fn.Body.Stmts[0])
	}

	assign, ok := fn.Body.Stmts[1].(ir.Assignment)
	if !ok {
		t.Fatalf("stmt 1: got %#v, want Assignment", fn.Body.Stmts[1])
	}
	if _, ok := assign.Value.(ir.ReadParam); !ok {
		t.Errorf("assignment value: got %#v, want ReadParam", assign.Value)
	}
	if len(fn.Locals) != 1 || fn.Locals[0].Type != ir.UnknownType {
		t.Errorf("locals: got %#v, want one UnknownType local", fn.Locals)
	}
}

func TestFunctionSymbolizerLiftsPublisherFromAPICall(t *testing.T) {
	pkg, decls := loadFunctionFixture(t)
	catalog := apicall.New(nil, nil)
	all := catalog.FindAll(pkg)

	byDecl := map[*ast.FuncDecl][]apicall.RawAPICall{}
	for _, r := range all {
		byDecl[r.Enclosing] = append(byDecl[r.Enclosing], r)
	}

	ctx := &symbolize.Context{Ctx: context.Background(), Info: pkg.TypesInfo, Fset: pkg.Fset, Pkg: pkg.Types}
	fs := symbolize.NewFunctionSymbolizer(ctx, nil)

	fn := ir.NewSymbolicFunction("example.com/fnfixture.publish", "publish.go:1")
	fs.Symbolize(fn, decls["publish"], byDecl[decls["publish"]])

	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(fn.Body.Stmts))
	}
	pub, ok := fn.Body.Stmts[0].(ir.Publisher)
	if !ok {
		t.Fatalf("got %#v, want Publisher", fn.Body.Stmts[0])
	}
	lit, ok := pub.Name.(ir.StringLiteral)
	if !ok || lit.Text != "chatter" {
		t.Errorf("publisher name: got %#v, want StringLiteral{chatter}", pub.Name)
	}
}
