package ir

import (
	"fmt"
	"io"
)

// CompareOp is the closed set of comparison operators a Compare value may
// carry.
type CompareOp int

const (
	EQ CompareOp = iota
	NE
	LT
	LE
	GT
	GE
)

func (op CompareOp) String() string {
	switch op {
	case EQ:
		return "=="
	case NE:
		return "!="
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return "?"
	}
}

// Value is any node of the closed symbolic value family. Every Value
// reports its SymbolicType (never nil, never a type outside the closed
// Type enum) and can render itself both as text and as a tagged JSON
// object.
type Value interface {
	isValue()
	Kind() string
	SymbolicType() Type
	Print(w io.Writer)
	ToJSON() map[string]any
}

type valueBase struct{}

func (valueBase) isValue() {}

// StringLiteral is a symbolic string constant.
type StringLiteral struct {
	valueBase
	Text string
}

func (StringLiteral) Kind() string      { return "string-literal" }
func (StringLiteral) SymbolicType() Type { return String }
func (v StringLiteral) Print(w io.Writer) { fmt.Fprintf(w, "%q", v.Text) }
func (v StringLiteral) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "value": v.Text}
}

// IntLiteral is a symbolic integer constant.
type IntLiteral struct {
	valueBase
	N int64
}

func (IntLiteral) Kind() string       { return "int-literal" }
func (IntLiteral) SymbolicType() Type { return Integer }
func (v IntLiteral) Print(w io.Writer) { fmt.Fprintf(w, "%d", v.N) }
func (v IntLiteral) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "value": v.N}
}

// BoolLiteral is a symbolic boolean constant.
type BoolLiteral struct {
	valueBase
	B bool
}

func (BoolLiteral) Kind() string       { return "bool-literal" }
func (BoolLiteral) SymbolicType() Type { return Bool }
func (v BoolLiteral) Print(w io.Writer) { fmt.Fprintf(w, "%t", v.B) }
func (v BoolLiteral) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "value": v.B}
}

// FloatLiteral is a symbolic floating-point constant.
type FloatLiteral struct {
	valueBase
	X float64
}

func (FloatLiteral) Kind() string       { return "float-literal" }
func (FloatLiteral) SymbolicType() Type { return Float }
func (v FloatLiteral) Print(w io.Writer) { fmt.Fprintf(w, "%g", v.X) }
func (v FloatLiteral) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "value": v.X}
}

// Unknown stands in for any value that could not be lifted. It always
// carries the type that was expected at the lift site, per invariant 5:
// an unliftable argument yields Unknown of the expected type, never a
// null node.
type Unknown struct {
	valueBase
	Expected Type
}

func (Unknown) Kind() string            { return "unknown" }
func (u Unknown) SymbolicType() Type    { return u.Expected }
func (u Unknown) Print(w io.Writer)     { fmt.Fprintf(w, "unknown<%s>", u.Expected) }
func (u Unknown) ToJSON() map[string]any {
	return map[string]any{"kind": u.Kind(), "type": u.Expected.String()}
}

// VariableReference refers to a parameter or local declared in the
// enclosing SymbolicFunction, by its LocalID.
type VariableReference struct {
	valueBase
	LocalID string
	Type    Type
}

func (VariableReference) Kind() string         { return "variable-reference" }
func (v VariableReference) SymbolicType() Type { return v.Type }
func (v VariableReference) Print(w io.Writer)  { fmt.Fprintf(w, "%s", v.LocalID) }
func (v VariableReference) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "local": v.LocalID}
}

// Call is a reference to a named function used as a value (e.g. passed
// as a callback), never invoked symbolically itself.
type Call struct {
	valueBase
	Callee string
}

func (Call) Kind() string       { return "call-reference" }
func (Call) SymbolicType() Type { return UnknownType }
func (v Call) Print(w io.Writer) { fmt.Fprintf(w, "&%s", v.Callee) }
func (v Call) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "callee": v.Callee}
}

// Compare is a symbolic comparison between two values.
type Compare struct {
	valueBase
	LHS, RHS Value
	Op       CompareOp
}

func (Compare) Kind() string       { return "compare" }
func (Compare) SymbolicType() Type { return Bool }
func (v Compare) Print(w io.Writer) {
	v.LHS.Print(w)
	fmt.Fprintf(w, " %s ", v.Op)
	v.RHS.Print(w)
}
func (v Compare) ToJSON() map[string]any {
	return map[string]any{
		"kind": v.Kind(),
		"op":   v.Op.String(),
		"lhs":  v.LHS.ToJSON(),
		"rhs":  v.RHS.ToJSON(),
	}
}

// And is a symbolic logical conjunction.
type And struct {
	valueBase
	LHS, RHS Value
}

func (And) Kind() string       { return "and" }
func (And) SymbolicType() Type { return Bool }
func (v And) Print(w io.Writer) {
	fmt.Fprint(w, "(")
	v.LHS.Print(w)
	fmt.Fprint(w, " && ")
	v.RHS.Print(w)
	fmt.Fprint(w, ")")
}
func (v And) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "lhs": v.LHS.ToJSON(), "rhs": v.RHS.ToJSON()}
}

// Or is a symbolic logical disjunction.
type Or struct {
	valueBase
	LHS, RHS Value
}

func (Or) Kind() string       { return "or" }
func (Or) SymbolicType() Type { return Bool }
func (v Or) Print(w io.Writer) {
	fmt.Fprint(w, "(")
	v.LHS.Print(w)
	fmt.Fprint(w, " || ")
	v.RHS.Print(w)
	fmt.Fprint(w, ")")
}
func (v Or) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "lhs": v.LHS.ToJSON(), "rhs": v.RHS.ToJSON()}
}

// Negate is symbolic logical negation.
type Negate struct {
	valueBase
	Inner Value
}

func (Negate) Kind() string       { return "negate" }
func (Negate) SymbolicType() Type { return Bool }
func (v Negate) Print(w io.Writer) {
	fmt.Fprint(w, "!")
	v.Inner.Print(w)
}
func (v Negate) ToJSON() map[string]any {
	return map[string]any{"kind": v.Kind(), "inner": v.Inner.ToJSON()}
}

// True is shorthand for the empty-conjunction guard (spec.md §4.6).
func True() Value { return BoolLiteral{B: true} }

// IsTrivialTrue reports whether v is the literal `true`, used to decide
// whether a guard should be omitted from serialization.
func IsTrivialTrue(v Value) bool {
	b, ok := v.(BoolLiteral)
	return ok && b.B
}
