// Command rosdiscover recovers a symbolic architectural model (topics,
// services, parameters, and the path conditions under which each is
// touched) from Go source calling a robotics middleware client library,
// per spec.md §6.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/rosqual/rosdiscover-go"
	"github.com/rosqual/rosdiscover-go/apicall"
	"github.com/rosqual/rosdiscover-go/config"
	"github.com/rosqual/rosdiscover-go/internal/diag"
	"github.com/rosqual/rosdiscover-go/internal/load"
	"github.com/rosqual/rosdiscover-go/serialize"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outputFilename string
		tags           string
		buildFlags     []string
		configPath     string
	)

	cmd := &cobra.Command{
		Use:   "rosdiscover <package or file patterns>...",
		Short: "recover publishers, subscribers, services, and parameters from Go source",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := buildFlags
			if tags != "" {
				flags = append(flags, "-tags="+tags)
			}
			return run(cmd.Context(), runOptions{
				patterns:       args,
				outputFilename: outputFilename,
				buildFlags:     flags,
				configPath:     configPath,
			})
		},
	}

	cmd.Flags().StringVar(&outputFilename, "output-filename", "node-summary.json", "file to write the JSON summary to")
	cmd.Flags().StringVar(&tags, "tags", "", "build tags forwarded to the Go build system")
	cmd.Flags().StringArrayVar(&buildFlags, "build-flags", nil, "extra flags forwarded to the Go build system")
	cmd.Flags().StringVar(&configPath, "config", ".rosdiscover.yaml", "path to the optional deployment configuration file")
	return cmd
}

type runOptions struct {
	patterns       []string
	outputFilename string
	buildFlags     []string
	configPath     string
}

func run(ctx context.Context, opts runOptions) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = diag.NewContext(ctx, logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	pkgs, err := load.Load(load.Options{BuildFlags: opts.buildFlags}, opts.patterns...)
	if err != nil {
		return fmt.Errorf("load packages: %w", err)
	}
	if errs := load.HasErrors(pkgs); len(errs) > 0 {
		for _, e := range errs {
			diag.Warn(ctx, "package load error", "error", e.Error())
		}
		return fmt.Errorf("%d package(s) failed to load", len(errs))
	}

	excluder, err := config.NewExcluder(cfg)
	if err != nil {
		return fmt.Errorf("compile exclude patterns: %w", err)
	}
	pkgs = filterExcluded(pkgs, excluder)

	catalog := apicall.New(cfg.ExtraParamSinks, cfg.ExtraParamSources)

	program, err := rosdiscover.Run(ctx, pkgs, catalog)
	if err != nil {
		return fmt.Errorf("symbolize program: %w", err)
	}

	out, err := serialize.Program(program)
	if err != nil {
		return fmt.Errorf("serialize program: %w", err)
	}

	if err := os.WriteFile(opts.outputFilename, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.outputFilename, err)
	}
	fmt.Println(string(out))
	return nil
}

func filterExcluded(pkgs []*packages.Package, excluder *config.Excluder) []*packages.Package {
	var kept []*packages.Package
	for _, pkg := range pkgs {
		if excluder.Match(pkg.PkgPath) {
			continue
		}
		kept = append(kept, pkg)
	}
	return kept
}
