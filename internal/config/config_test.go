package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Pattern != "*.json" {
		t.Errorf("pattern %q, want *.json", cfg.Pattern)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("workers %d, want NumCPU", cfg.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input_dir: /models/legacy
output_dir: /models/glb
workers: 3
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InputDir != "/models/legacy" {
		t.Errorf("input dir %q", cfg.InputDir)
	}
	if cfg.OutputDir != "/models/glb" {
		t.Errorf("output dir %q", cfg.OutputDir)
	}
	if cfg.Workers != 3 {
		t.Errorf("workers %d, want 3", cfg.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level %q, want debug", cfg.Logging.Level)
	}
	// Unset fields keep defaults.
	if cfg.Pattern != "*.json" {
		t.Errorf("pattern %q, want default *.json", cfg.Pattern)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Default()
	cfg.InputDir = "/from/file"
	cfg.Workers = 2

	cfg.Resolve(Flags{InputDir: "/from/flag", Workers: 8, LogLevel: "warn"})

	if cfg.InputDir != "/from/flag" {
		t.Errorf("input dir %q, want flag value", cfg.InputDir)
	}
	if cfg.Workers != 8 {
		t.Errorf("workers %d, want 8", cfg.Workers)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level %q, want warn", cfg.Logging.Level)
	}
}

func TestResolveFillsGaps(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})
	if cfg.Pattern != "*.json" || cfg.Workers <= 0 || cfg.Logging.Level != "info" {
		t.Errorf("gaps not filled: %+v", cfg)
	}
}
