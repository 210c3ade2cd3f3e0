package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("cms: {}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CMS.BaseURL != defaultCMSURL {
		t.Errorf("expected BaseURL %s, got %q", defaultCMSURL, cfg.CMS.BaseURL)
	}
	if cfg.CMS.HTTPTimeoutSeconds != defaultHTTPTimeoutSeconds {
		t.Errorf("expected HTTPTimeoutSeconds %d, got %d", defaultHTTPTimeoutSeconds, cfg.CMS.HTTPTimeoutSeconds)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default logging level info, got %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "cms:\n  base_url: http://file-value:1337\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("DRAFTSTACK_URL", "http://env-value:1337")
	t.Setenv("DRAFTSTACK_API_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CMS.BaseURL != "http://env-value:1337" {
		t.Errorf("expected env override, got %q", cfg.CMS.BaseURL)
	}
	if cfg.CMS.APIToken != "env-token" {
		t.Errorf("expected env token, got %q", cfg.CMS.APIToken)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	t.Setenv("DRAFTSTACK_URL", "http://from-env:1337")

	cfg := LoadOrDefault(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if cfg.CMS.BaseURL != "http://from-env:1337" {
		t.Errorf("expected env override on defaults, got %q", cfg.CMS.BaseURL)
	}
	if cfg.CMS.HTTPTimeoutSeconds != defaultHTTPTimeoutSeconds {
		t.Errorf("expected default timeout, got %d", cfg.CMS.HTTPTimeoutSeconds)
	}
}

func TestValidate_RequiresCredentials(t *testing.T) {
	cfg := NewDefault()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error with no credentials")
	}

	cfg.CMS.APIToken = "token"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with API token: %v", err)
	}

	cfg.CMS.APIToken = ""
	cfg.CMS.AdminEmail = "admin@example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error with email but no password")
	}
	cfg.CMS.AdminPassword = "hunter2"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error with admin credentials: %v", err)
	}
}
