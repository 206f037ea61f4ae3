package ir

import (
	"fmt"
	"io"
	"sort"
)

// Parameter is a single named, typed formal parameter of a
// SymbolicFunction, keyed by its declaration index.
type Parameter struct {
	Index int
	Name  string
	Type  Type
}

func (p Parameter) ToJSON() map[string]any {
	return map[string]any{"index": p.Index, "name": p.Name, "type": p.Type.String()}
}

// LocalVariable is a function-local synthesized to hold the result of a
// value-producing statement (e.g. a parameter read).
type LocalVariable struct {
	ID   string
	Type Type
}

// SymbolicFunction is the per-function summary: its identity, its
// declared parameters, the locals synthesized during symbolization, and
// its body. Once symbolization of the function completes the struct is
// treated as immutable; the body is set once through Define, and
// Compound.Append returns a copy rather than mutating in place, even
// though the body field itself is still assignable.
type SymbolicFunction struct {
	QualifiedName  string
	SourceLocation string
	Parameters     map[int]Parameter
	Locals         []LocalVariable
	Body           Compound

	nextLocal int
}

// NewSymbolicFunction creates an empty function stub ready for parameter
// registration and, later, symbolization. This is the "declare" half of
// the call-graph driver's two-pass assembly (spec.md §4.7.5).
func NewSymbolicFunction(qualifiedName, sourceLocation string) *SymbolicFunction {
	return &SymbolicFunction{
		QualifiedName:  qualifiedName,
		SourceLocation: sourceLocation,
		Parameters:     make(map[int]Parameter),
	}
}

// AddParameter registers a parameter. Parameters whose type does not map
// to a supported symbolic type must not be added by the caller (spec.md
// §4.7.4: "parameters whose type does not map to a supported symbolic
// type are dropped").
func (f *SymbolicFunction) AddParameter(p Parameter) {
	f.Parameters[p.Index] = p
}

// CreateLocal synthesizes a fresh local variable of the given type and
// returns its identifier, suitable for use in a VariableReference or as
// an Assignment target.
func (f *SymbolicFunction) CreateLocal(t Type) LocalVariable {
	id := fmt.Sprintf("l%d", f.nextLocal)
	f.nextLocal++
	local := LocalVariable{ID: id, Type: t}
	f.Locals = append(f.Locals, local)
	return local
}

// Define sets the function's body. Called exactly once, at the end of
// function symbolization (C5 step 5).
func (f *SymbolicFunction) Define(body Compound) {
	f.Body = body
}

// orderedIndices returns the keys of Parameters sorted ascending. Dropped
// (unsupported-type) parameters leave holes in the index space, so the
// surviving set is not contiguous.
func (f *SymbolicFunction) orderedIndices() []int {
	indices := make([]int, 0, len(f.Parameters))
	for i := range f.Parameters {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

func (f *SymbolicFunction) Print(w io.Writer) {
	fmt.Fprintf(w, "function %s [", f.QualifiedName)
	for _, i := range f.orderedIndices() {
		p := f.Parameters[i]
		fmt.Fprintf(w, "%s: %s; ", p.Name, p.Type)
	}
	fmt.Fprint(w, "] ")
	f.Body.Print(w)
}

func (f *SymbolicFunction) ToJSON() map[string]any {
	params := make([]map[string]any, 0, len(f.Parameters))
	for _, i := range f.orderedIndices() {
		params = append(params, f.Parameters[i].ToJSON())
	}
	return map[string]any{
		"name":            f.QualifiedName,
		"source-location": f.SourceLocation,
		"parameters":      params,
		"body":            f.Body.ToJSON(),
	}
}
