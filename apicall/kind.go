// Package apicall discovers and classifies call sites against the
// recognized robotics middleware client API (spec.md §4.2): node
// initialization, topic publish/subscribe, service provide/call, and
// parameter read/write/delete/has. Topic and service-provider calls are
// NodeHandle-scoped, node initialization is a free function, and service
// calls and parameter operations come in both a NodeHandle-scoped form
// and a free-function ("bare") form.
package apicall

import "go/ast"

// Kind is the closed enumeration of recognized API call shapes.
type Kind string

const (
	RosInit              Kind = "ros-init"
	Publisher            Kind = "publisher"
	Subscriber           Kind = "subscriber"
	ServiceProvider      Kind = "service-provider"
	ServiceCaller        Kind = "service-caller"
	ReadParam            Kind = "read-param"
	ReadParamCached      Kind = "read-param-cached"
	ReadParamWithDefault Kind = "read-param-with-default"
	HasParam             Kind = "has-param"
	WriteParam           Kind = "write-param"
	DeleteParam          Kind = "delete-param"
)

// RawAPICall is one recognized call site, prior to symbolization into
// the IR. It carries a back-pointer to its AST site per spec.md §4.5
// step 1.
type RawAPICall struct {
	Kind Kind

	// Site is the AST node C4's statement ordering should treat as this
	// raw statement's position; for chained calls (ServiceClient(...).
	// Call(...)) this is the outer call, since that is the site a
	// straight-line executor reaches.
	Site *ast.CallExpr

	// NameExpr supplies the resource name (topic/service/parameter).
	NameExpr ast.Expr

	// ValueExpr is the default value (ReadParamWithDefault) or the
	// written value (WriteParam); nil for every other kind.
	ValueExpr ast.Expr

	// Enclosing is the smallest enclosing function declaration, used by
	// the call-graph driver (C7) to compute the containing-functions set.
	Enclosing *ast.FuncDecl
}

// IsResourceRead reports whether this kind's symbolization produces a
// value (and therefore an Assignment to a fresh local) rather than a
// bare side-effecting statement, per spec.md §4.5 step 3.
func (k Kind) IsResourceRead() bool {
	switch k {
	case ReadParam, ReadParamCached, ReadParamWithDefault, HasParam, ServiceCaller:
		return true
	default:
		return false
	}
}
