package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/multierr"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Interval != 30*time.Second || cfg.Timeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Once || cfg.Output != "" || cfg.Listen != "" {
		t.Fatalf("once/output/listen should default off: %+v", cfg)
	}
	if cfg.LogDir != "logs" {
		t.Fatalf("log dir default wrong: %q", cfg.LogDir)
	}
}

func TestApplyEnv_ParsesAndOverrides(t *testing.T) {
	t.Setenv("HEALTHWATCH_URLS", "https://a.test, https://b.test,")
	t.Setenv("HEALTHWATCH_INTERVAL", "5")
	t.Setenv("HEALTHWATCH_TIMEOUT", "2")
	t.Setenv("HEALTHWATCH_OUTPUT", "out.json")
	t.Setenv("HEALTHWATCH_LISTEN", ":9090")
	t.Setenv("HEALTHWATCH_CONCURRENCY", "4")
	t.Setenv("LOG_DIR", "./_testlogs")

	cfg := Default()
	cfg.ApplyEnv()

	if len(cfg.URLs) != 2 || cfg.URLs[0] != "https://a.test" || cfg.URLs[1] != "https://b.test" {
		t.Fatalf("urls wrong: %+v", cfg.URLs)
	}
	if cfg.Interval != 5*time.Second || cfg.Timeout != 2*time.Second {
		t.Fatalf("durations wrong: %+v", cfg)
	}
	if cfg.Output != "out.json" || cfg.Listen != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("strings wrong: %+v", cfg)
	}
	if cfg.Concurrency != 4 {
		t.Fatalf("concurrency wrong: %d", cfg.Concurrency)
	}

	// Garbage numbers leave the current value alone.
	t.Setenv("HEALTHWATCH_INTERVAL", "soon")
	cfg2 := Default()
	cfg2.ApplyEnv()
	if cfg2.Interval != 30*time.Second {
		t.Fatalf("garbage interval should keep the default, got %s", cfg2.Interval)
	}

	// Missing env must not crash.
	os.Unsetenv("HEALTHWATCH_URLS")
	cfg3 := Default()
	cfg3.ApplyEnv()
	_ = cfg3
}

func TestApplyFile_MergesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "healthwatch.yaml")
	body := `
urls:
  - https://a.test
  - https://b.test
interval_seconds: 15
output: cycle.json
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg := Default()
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("apply file: %v", err)
	}

	if len(cfg.URLs) != 2 || cfg.URLs[1] != "https://b.test" {
		t.Fatalf("urls wrong: %+v", cfg.URLs)
	}
	if cfg.Interval != 15*time.Second {
		t.Fatalf("interval wrong: %s", cfg.Interval)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Timeout != 10*time.Second || cfg.LogDir != "logs" {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
	if cfg.Output != "cycle.json" {
		t.Fatalf("output wrong: %q", cfg.Output)
	}
}

func TestApplyFile_Errors(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("urls: {{{"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := cfg.ApplyFile(bad); err == nil {
		t.Fatal("want error for malformed yaml")
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Config{
		URLs:     []string{"https://ok.test", "not a url", "ftp://wrong.test"},
		Interval: 0,
		Timeout:  -time.Second,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("want validation error")
	}
	if n := len(multierr.Errors(err)); n != 4 {
		t.Fatalf("want 4 collected problems, got %d: %v", n, err)
	}
}

func TestValidate_OKConfigPasses(t *testing.T) {
	cfg := Default()
	cfg.URLs = DefaultURLs
	if err := cfg.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestSplitURLList(t *testing.T) {
	got := SplitURLList(" https://a.test ,, https://b.test,")
	if len(got) != 2 || got[0] != "https://a.test" || got[1] != "https://b.test" {
		t.Fatalf("unexpected split: %+v", got)
	}
	if got := SplitURLList(""); len(got) != 0 {
		t.Fatalf("empty input should yield no urls: %+v", got)
	}
}
