package ir_test

import (
	"bytes"
	"testing"

	"github.com/rosqual/rosdiscover-go/ir"
)

func TestLiteralKindsAndTypes(t *testing.T) {
	cases := []struct {
		name string
		v    ir.Value
		kind string
		typ  ir.Type
	}{
		{"string", ir.StringLiteral{Text: "x"}, "string-literal", ir.String},
		{"int", ir.IntLiteral{N: 42}, "int-literal", ir.Integer},
		{"bool", ir.BoolLiteral{B: true}, "bool-literal", ir.Bool},
		{"float", ir.FloatLiteral{X: 1.5}, "float-literal", ir.Float},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Errorf("%s: Kind() = %q, want %q", tc.name, tc.v.Kind(), tc.kind)
		}
		if tc.v.SymbolicType() != tc.typ {
			t.Errorf("%s: SymbolicType() = %v, want %v", tc.name, tc.v.SymbolicType(), tc.typ)
		}
		var buf bytes.Buffer
		tc.v.Print(&buf)
		if buf.Len() == 0 {
			t.Errorf("%s: Print() wrote nothing", tc.name)
		}
		if _, ok := tc.v.ToJSON()["kind"]; !ok {
			t.Errorf("%s: ToJSON() missing kind field", tc.name)
		}
	}
}

func TestUnknownCarriesExpectedType(t *testing.T) {
	u := ir.Unknown{Expected: ir.Bool}
	if u.SymbolicType() != ir.Bool {
		t.Errorf("got %v, want Bool", u.SymbolicType())
	}
	if u.Kind() != "unknown" {
		t.Errorf("got kind %q, want unknown", u.Kind())
	}
}

func TestCompareAndLogicalOpsAreBoolTyped(t *testing.T) {
	cmp := ir.Compare{LHS: ir.IntLiteral{N: 1}, RHS: ir.IntLiteral{N: 2}, Op: ir.LT}
	and := ir.And{LHS: cmp, RHS: ir.BoolLiteral{B: true}}
	or := ir.Or{LHS: cmp, RHS: ir.BoolLiteral{B: false}}
	neg := ir.Negate{Inner: cmp}

	for _, v := range []ir.Value{cmp, and, or, neg} {
		if v.SymbolicType() != ir.Bool {
			t.Errorf("%s: SymbolicType() = %v, want Bool", v.Kind(), v.SymbolicType())
		}
	}
}

func TestTrueIsTriviallyTrue(t *testing.T) {
	if !ir.IsTrivialTrue(ir.True()) {
		t.Error("True() is not reported as trivially true")
	}
	if ir.IsTrivialTrue(ir.BoolLiteral{B: false}) {
		t.Error("false reported as trivially true")
	}
	if ir.IsTrivialTrue(ir.Unknown{Expected: ir.Bool}) {
		t.Error("Unknown reported as trivially true")
	}
}
