package apicall

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// methodPattern matches a NodeHandle-scoped method call, e.g.
// (*ros.NodeHandle).Advertise(topic, queueSize).
type methodPattern struct {
	typeName   string // e.g. "NodeHandle"
	methodName string
	kind       Kind
	nameArg    int
	valueArg   int // -1 if this kind carries no default/written value
}

// funcPattern matches a free ("bare") function call, e.g.
// ros.GetParam(name).
type funcPattern struct {
	funcName string
	kind     Kind
	nameArg  int
	valueArg int
}

var methodPatterns = []methodPattern{
	{"NodeHandle", "Advertise", Publisher, 0, -1},
	{"NodeHandle", "Subscribe", Subscriber, 0, -1},
	{"NodeHandle", "AdvertiseService", ServiceProvider, 0, -1},
	{"NodeHandle", "GetParam", ReadParam, 0, -1},
	{"NodeHandle", "GetParamCached", ReadParamCached, 0, -1},
	{"NodeHandle", "Param", ReadParamWithDefault, 0, 1},
	{"NodeHandle", "HasParam", HasParam, 0, -1},
	{"NodeHandle", "SetParam", WriteParam, 0, 1},
	{"NodeHandle", "DeleteParam", DeleteParam, 0, -1},
}

var funcPatterns = []funcPattern{
	{"Init", RosInit, 0, -1},
	{"GetParam", ReadParam, 0, -1},
	{"GetParamCached", ReadParamCached, 0, -1},
	{"Param", ReadParamWithDefault, 0, 1},
	{"HasParam", HasParam, 0, -1},
	{"SetParam", WriteParam, 0, 1},
	{"DeleteParam", DeleteParam, 0, -1},
	{"ServiceCall", ServiceCaller, 0, -1},
}

// serviceClientFactory is the NodeHandle method that returns a client
// handle, and serviceClientCallMethod is the method invoked on that
// handle to perform the bound-form service call,
// e.g. nh.ServiceClient("add_two_ints").Call(req, &resp).
const serviceClientFactory = "ServiceClient"
const serviceClientCallMethod = "Call"

// Catalog finds every recognized API call site in pkg, per spec.md §4.2:
// findAll(ast_context) -> sequence<RawApiCall>, order not significant.
// extraParamSinks/extraParamSources extend the free-function table with
// deployment-configured names (SPEC_FULL.md "Configuration").
type Catalog struct {
	extraParamSinks   []string // treated as WriteParam(name, value)
	extraParamSources []string // treated as ReadParam(name)
}

// New returns a Catalog seeded with the fixed built-in pattern tables,
// optionally extended by configuration.
func New(extraParamSinks, extraParamSources []string) *Catalog {
	return &Catalog{extraParamSinks: extraParamSinks, extraParamSources: extraParamSources}
}

// FindAll walks every syntax file in pkg and returns every recognized
// call site. Ordering is not significant (callers needing execution
// order use the statement-ordering component against the enclosing
// function body).
func (c *Catalog) FindAll(pkg *packages.Package) []RawAPICall {
	var found []RawAPICall
	info := pkg.TypesInfo
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			enclosing, _ := decl.(*ast.FuncDecl) // nil for package-level declarations
			ast.Inspect(decl, func(n ast.Node) bool {
				if call, ok := n.(*ast.CallExpr); ok {
					if raw, ok := c.match(call, info); ok {
						raw.Enclosing = enclosing
						found = append(found, raw)
					}
				}
				return true
			})
		}
	}
	return found
}

func (c *Catalog) match(call *ast.CallExpr, info *types.Info) (RawAPICall, bool) {
	if raw, ok := matchServiceClientCall(call, info); ok {
		return raw, true
	}
	ident, ok := call.Fun.(*ast.Ident)
	if sel, isSel := call.Fun.(*ast.SelectorExpr); isSel {
		ident, ok = sel.Sel, true
	}
	if !ok {
		return RawAPICall{}, false
	}
	fn, ok := calleeFunc(info, ident)
	if !ok {
		return RawAPICall{}, false
	}
	if recvType, ok := receiverTypeName(fn); ok && isRosPackage(fn) {
		for _, p := range methodPatterns {
			if p.typeName == recvType && p.methodName == fn.Name() {
				return buildRaw(call, p.kind, p.nameArg, p.valueArg), true
			}
		}
		return RawAPICall{}, false
	}
	for _, p := range funcPatterns {
		if isRosPackage(fn) && p.funcName == fn.Name() {
			return buildRaw(call, p.kind, p.nameArg, p.valueArg), true
		}
	}
	for _, name := range c.extraParamSinks {
		if fn.FullName() == name {
			return buildRaw(call, WriteParam, 0, 1), true
		}
	}
	for _, name := range c.extraParamSources {
		if fn.FullName() == name {
			return buildRaw(call, ReadParam, 0, -1), true
		}
	}
	return RawAPICall{}, false
}

// matchServiceClientCall recognizes the two-call chain
// nh.ServiceClient(name).Call(...) as a single ServiceCaller raw
// statement sited at the outer call (the point a straight-line executor
// actually reaches it), with the name lifted from the inner call.
func matchServiceClientCall(call *ast.CallExpr, info *types.Info) (RawAPICall, bool) {
	outerSel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || outerSel.Sel.Name != serviceClientCallMethod {
		return RawAPICall{}, false
	}
	inner, ok := outerSel.X.(*ast.CallExpr)
	if !ok {
		return RawAPICall{}, false
	}
	innerSel, ok := inner.Fun.(*ast.SelectorExpr)
	if !ok {
		return RawAPICall{}, false
	}
	fn, ok := calleeFunc(info, innerSel.Sel)
	if !ok {
		return RawAPICall{}, false
	}
	recvType, ok := receiverTypeName(fn)
	if !ok || recvType != "NodeHandle" || fn.Name() != serviceClientFactory || !isRosPackage(fn) {
		return RawAPICall{}, false
	}
	if len(inner.Args) == 0 {
		return RawAPICall{}, false
	}
	return RawAPICall{Kind: ServiceCaller, Site: call, NameExpr: inner.Args[0]}, true
}

func buildRaw(call *ast.CallExpr, kind Kind, nameArg, valueArg int) RawAPICall {
	raw := RawAPICall{Kind: kind, Site: call}
	if nameArg >= 0 && nameArg < len(call.Args) {
		raw.NameExpr = call.Args[nameArg]
	}
	if valueArg >= 0 && valueArg < len(call.Args) {
		raw.ValueExpr = call.Args[valueArg]
	}
	return raw
}

func calleeFunc(info *types.Info, ident *ast.Ident) (*types.Func, bool) {
	obj := info.Uses[ident]
	if obj == nil {
		obj = info.Defs[ident]
	}
	fn, ok := obj.(*types.Func)
	return fn, ok
}

// receiverTypeName returns the unqualified name of fn's receiver type,
// if fn is a method, stripping any pointer indirection
// ((*NodeHandle).Advertise and NodeHandle.Advertise both report
// "NodeHandle").
func receiverTypeName(fn *types.Func) (string, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return "", false
	}
	t := sig.Recv().Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok {
		return "", false
	}
	return named.Obj().Name(), true
}

// isRosPackage reports whether fn is declared in a package literally
// named "ros" — the stand-in robotics middleware client library (the Go
// analogue of the original's "ros::NodeHandle"/free functions in
// namespace ros). A deployment wiring a differently-named client
// package is handled via the extraParamSinks/extraParamSources
// configuration hook instead of a package-name heuristic, since only
// fully-qualified names survive that far.
func isRosPackage(fn *types.Func) bool {
	pkg := fn.Pkg()
	return pkg != nil && pkg.Name() == "ros"
}
