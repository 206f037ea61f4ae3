package rosdiscover_test

import (
	"context"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	rosdiscover "github.com/rosqual/rosdiscover-go"
	"github.com/rosqual/rosdiscover-go/apicall"
	"github.com/rosqual/rosdiscover-go/internal/load"
	"github.com/rosqual/rosdiscover-go/internal/testfixture"
	"github.com/rosqual/rosdiscover-go/serialize"
)

// driverFixtureSrc exercises the six worked scenarios from the
// architectural-recovery scope: an unconditional publisher, a
// conditionally-guarded subscriber, a parameter read with a default, a
// parameter name reached through a local variable, an inter-procedural
// call into a relevant helper, and a negated-guard write.
const driverFixtureSrc = `package main

import "example.com/e2e/ros"

func advertiseChatter(nh *ros.NodeHandle) {
	nh.Advertise("chatter", 10)
}

func maybeSubscribe(nh *ros.NodeHandle, enabled bool) {
	if enabled {
		nh.Subscribe("command", 1, func(any) {})
	}
}

func readRate(nh *ros.NodeHandle) {
	nh.Param("rate", 10)
}

func readDynamicName(nh *ros.NodeHandle) {
	name := "rate"
	nh.GetParam(name)
}

func configure(nh *ros.NodeHandle, enabled bool) {
	advertiseChatter(nh)
	maybeSubscribe(nh, enabled)
	readRate(nh)
	readDynamicName(nh)
	if !enabled {
		nh.SetParam("disabled", true)
	}
}
`

func TestRunEndToEnd(t *testing.T) {
	dir := testfixture.Module(t, "example.com/e2e", map[string]string{"main.go": driverFixtureSrc})
	pkgs, err := load.Load(load.Options{Dir: dir}, "./...")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if errs := load.HasErrors(pkgs); len(errs) > 0 {
		t.Fatalf("load errors: %v", errs)
	}

	catalog := apicall.New(nil, nil)
	program, err := rosdiscover.Run(context.Background(), pkgs, catalog)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	configure, ok := program.Lookup("example.com/e2e.configure")
	if !ok {
		t.Fatalf("configure not found in program")
	}
	if len(configure.Body.Stmts) != 5 {
		t.Fatalf("got %d statements in configure, want 5", len(configure.Body.Stmts))
	}

	out, err := serialize.Pretty(program)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	snaps.MatchSnapshot(t, string(out))
}
