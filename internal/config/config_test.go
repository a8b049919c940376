package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "srtfix.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.LineEnding != "crlf" {
		t.Errorf("expected default line ending crlf, got %q", cfg.LineEnding)
	}
}

func TestLoad(t *testing.T) {
	content := `encoding = "windows-1250"
line_ending = "lf"
backup = true
clean = true
jobs = 8
`
	path := filepath.Join(t.TempDir(), "srtfix.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Encoding != "windows-1250" {
		t.Errorf("expected encoding windows-1250, got %q", cfg.Encoding)
	}
	if cfg.LineEnding != "lf" {
		t.Errorf("expected line ending lf, got %q", cfg.LineEnding)
	}
	if !cfg.Backup || !cfg.Clean || cfg.CleanAll {
		t.Errorf("unexpected flags: %+v", cfg)
	}
	if cfg.Jobs != 8 {
		t.Errorf("expected 8 jobs, got %d", cfg.Jobs)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srtfix.toml")
	if err := os.WriteFile(path, []byte("line_ending = [broken"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestLoadClampsJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srtfix.toml")
	if err := os.WriteFile(path, []byte("jobs = -3"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Jobs != 1 {
		t.Errorf("expected jobs clamped to 1, got %d", cfg.Jobs)
	}
}
