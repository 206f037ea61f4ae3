package serialize_test

import (
	"encoding/json"
	"testing"

	"github.com/rosqual/rosdiscover-go/ir"
	"github.com/rosqual/rosdiscover-go/serialize"
)

func sampleProgram() *ir.SymbolicProgram {
	prog := ir.NewSymbolicProgram()
	fn := ir.NewSymbolicFunction("pkg.F", "f.go:3")
	fn.AddParameter(ir.Parameter{Index: 0, Name: "topic", Type: ir.String})
	fn.Define(ir.Compound{Stmts: []ir.Stmt{
		ir.Publisher{Name: ir.StringLiteral{Text: "chatter"}},
	}})
	prog.Declare(fn)
	return prog
}

func TestProgramIsValidCanonicalJSON(t *testing.T) {
	out, err := serialize.Program(sampleProgram())
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := doc["functions"]; !ok {
		t.Error("missing top-level functions field")
	}
}

func TestProgramIsDeterministic(t *testing.T) {
	a, err := serialize.Program(sampleProgram())
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	b, err := serialize.Program(sampleProgram())
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	if string(a) != string(b) {
		t.Errorf("two renders of an identical program differ:\n%s\nvs\n%s", a, b)
	}
}

func TestPrettyAgreesWithProgramContent(t *testing.T) {
	prog := sampleProgram()
	compact, err := serialize.Program(prog)
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	pretty, err := serialize.Pretty(prog)
	if err != nil {
		t.Fatalf("Pretty: %v", err)
	}

	var compactDoc, prettyDoc map[string]any
	if err := json.Unmarshal(compact, &compactDoc); err != nil {
		t.Fatalf("unmarshal compact: %v", err)
	}
	if err := json.Unmarshal(pretty, &prettyDoc); err != nil {
		t.Fatalf("unmarshal pretty: %v", err)
	}

	compactJSON, _ := json.Marshal(compactDoc)
	prettyJSON, _ := json.Marshal(prettyDoc)
	if string(compactJSON) != string(prettyJSON) {
		t.Errorf("Pretty and Program disagree on content:\n%s\nvs\n%s", prettyJSON, compactJSON)
	}
}
