// Package config loads the optional .rosdiscover.yaml deployment
// configuration: source-tree exclude globs and extra free-function names
// treated as parameter sinks/sources beyond the ros package's own API
// (SPEC_FULL.md "Configuration"). Absence of a config file is not an
// error; every field defaults to empty/permissive.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/gobwas/glob"
)

// Config is the parsed, validated shape of .rosdiscover.yaml.
type Config struct {
	Exclude           []string `yaml:"exclude"`
	ExtraParamSinks   []string `yaml:"extra-param-sinks"`
	ExtraParamSources []string `yaml:"extra-param-sources"`
}

// Load reads and parses the YAML file at path. A missing file yields the
// zero Config, not an error, since the config file is optional.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Excluder compiles Exclude into matchable globs once, so package-path
// filtering during the load/symbolize loop doesn't recompile a pattern
// per candidate path.
type Excluder struct {
	globs []glob.Glob
}

// NewExcluder compiles cfg's exclude patterns, returning an error that
// names the offending pattern on the first one that fails to compile.
func NewExcluder(cfg Config) (*Excluder, error) {
	e := &Excluder{globs: make([]glob.Glob, 0, len(cfg.Exclude))}
	for _, pattern := range cfg.Exclude {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", pattern, err)
		}
		e.globs = append(e.globs, g)
	}
	return e, nil
}

// Match reports whether pkgPath matches any configured exclude pattern.
func (e *Excluder) Match(pkgPath string) bool {
	for _, g := range e.globs {
		if g.Match(pkgPath) {
			return true
		}
	}
	return false
}
