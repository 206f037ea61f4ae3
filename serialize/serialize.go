// Package serialize renders a symbolized ir.SymbolicProgram to the JSON
// document shape of spec.md §6 (C8), grounded on
// original_source/include/rosdiscover-clang/Symbolic/Function.h's
// toJson(). ir's ToJSON implementations return maps, so object keys are
// written in sorted order, not declaration order; this package's only
// job is encoding those maps and then passing the bytes through a
// canonicalization pass so that byte-identical input produces
// byte-identical output regardless of Go map iteration order anywhere
// upstream (spec.md §4.8/§8, "byte-identical output for byte-identical
// inputs").
package serialize

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"

	"github.com/rosqual/rosdiscover-go/ir"
)

// Program renders prog as canonicalized JSON bytes.
func Program(prog *ir.SymbolicProgram) ([]byte, error) {
	raw, err := json.Marshal(prog.ToJSON())
	if err != nil {
		return nil, fmt.Errorf("marshal program: %w", err)
	}
	canonical, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalize program json: %w", err)
	}
	return canonical, nil
}

// Pretty renders prog as indented JSON, for human inspection (e.g. test
// snapshots) where canonical compact form is hard to read; it
// is derived from the same ToJSON map as Program, so field content and
// ordering agree, only whitespace differs.
func Pretty(prog *ir.SymbolicProgram) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(prog.ToJSON()); err != nil {
		return nil, fmt.Errorf("marshal program: %w", err)
	}
	return buf.Bytes(), nil
}
