// Package load is thin glue over golang.org/x/tools/go/packages: the Go
// analogue of feeding a compilation database into the frontend. It is
// not part of the analysis core (spec.md §1, "Compilation Database /
// Load Driver" is a non-goal of the core) — everything here is a direct
// pass-through to the frontend's own query surface.
package load

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// Options controls how patterns are resolved into packages.
type Options struct {
	Dir        string   // working directory patterns are resolved relative to
	BuildFlags []string // extra flags forwarded to the build system, e.g. "-tags=foo"
	Tests      bool     // include _test.go files and synthesized test packages
}

const neededInfo = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedDeps |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo

// Load resolves patterns (import paths, "./..." patterns, or directories)
// into fully type-checked packages. Any package-level load error (a
// malformed compilation database entry, in the original's terms) is
// reported through packages.Package.Errors by the caller, not here —
// Load only fails on a frontend-invocation error (e.g. no go.mod found).
func Load(opts Options, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:       neededInfo,
		Dir:        opts.Dir,
		Tests:      opts.Tests,
		BuildFlags: opts.BuildFlags,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	return pkgs, nil
}

// HasErrors reports whether any loaded package carries a frontend error
// (parse or type-check failure), and renders them for the caller.
func HasErrors(pkgs []*packages.Package) []error {
	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, fmt.Errorf("%s: %w", pkg.PkgPath, e))
		}
	})
	return errs
}
