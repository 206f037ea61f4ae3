package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rosqual/rosdiscover-go/config"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("got error %v, want nil for a missing config file", err)
	}
	if len(cfg.Exclude) != 0 || len(cfg.ExtraParamSinks) != 0 || len(cfg.ExtraParamSources) != 0 {
		t.Errorf("got %+v, want the zero Config", cfg)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".rosdiscover.yaml")
	const body = `
exclude:
  - "**/vendor/**"
  - "example.com/generated/**"
extra-param-sinks:
  - "example.com/app/config.Set"
extra-param-sources:
  - "example.com/app/config.Get"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "**/vendor/**" {
		t.Errorf("got Exclude %v", cfg.Exclude)
	}
	if len(cfg.ExtraParamSinks) != 1 || cfg.ExtraParamSinks[0] != "example.com/app/config.Set" {
		t.Errorf("got ExtraParamSinks %v", cfg.ExtraParamSinks)
	}
	if len(cfg.ExtraParamSources) != 1 || cfg.ExtraParamSources[0] != "example.com/app/config.Get" {
		t.Errorf("got ExtraParamSources %v", cfg.ExtraParamSources)
	}
}

func TestExcluderMatchesGlobPatterns(t *testing.T) {
	cfg := config.Config{Exclude: []string{"example.com/app/vendor/**", "example.com/app/internal/gen"}}
	excluder, err := config.NewExcluder(cfg)
	if err != nil {
		t.Fatalf("NewExcluder: %v", err)
	}

	cases := []struct {
		pkgPath string
		want    bool
	}{
		{"example.com/app/vendor/foo", true},
		{"example.com/app/internal/gen", true},
		{"example.com/app/internal/other", false},
		{"example.com/app", false},
	}
	for _, tc := range cases {
		if got := excluder.Match(tc.pkgPath); got != tc.want {
			t.Errorf("Match(%q) = %v, want %v", tc.pkgPath, got, tc.want)
		}
	}
}

func TestNewExcluderRejectsInvalidPattern(t *testing.T) {
	_, err := config.NewExcluder(config.Config{Exclude: []string{"["}})
	if err == nil {
		t.Fatal("expected an error for an invalid glob pattern")
	}
}
