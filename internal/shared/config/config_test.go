package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("TEMP_DIR", "")

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("env: got %q, want dev", cfg.Env)
	}
	if cfg.TempDir != os.TempDir() {
		t.Fatalf("temp dir: got %q, want %q", cfg.TempDir, os.TempDir())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENV", "PROD")
	t.Setenv("TEMP_DIR", "/var/spool/resumes")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("env: got %q, want production", cfg.Env)
	}
	if cfg.TempDir != "/var/spool/resumes" {
		t.Fatalf("temp dir: got %q", cfg.TempDir)
	}
}
