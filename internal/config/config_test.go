package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Upload.MaxBytes != 64<<20 {
		t.Errorf("MaxBytes = %d", cfg.Upload.MaxBytes)
	}
	if cfg.Upload.MaxConcurrentParses != 4 {
		t.Errorf("MaxConcurrentParses = %d", cfg.Upload.MaxConcurrentParses)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("UPLOAD_SCRATCH_DIR", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Upload.MaxBytes != 1024 {
		t.Errorf("MaxBytes = %d, want 1024", cfg.Upload.MaxBytes)
	}
}

func TestLoadRejectsBadScratchDir(t *testing.T) {
	t.Setenv("UPLOAD_SCRATCH_DIR", "/definitely/not/a/dir")

	if _, err := Load(); err == nil {
		t.Error("expected error for nonexistent scratch dir")
	}
}
