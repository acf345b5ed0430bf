package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.WizardBaseURL != "" {
		t.Fatalf("WizardBaseURL = %q, want empty", cfg.WizardBaseURL)
	}
	if cfg.StoragePath != "" {
		t.Fatalf("StoragePath = %q, want empty", cfg.StoragePath)
	}
	if cfg.GuidesDir != "" {
		t.Fatalf("GuidesDir = %q, want empty", cfg.GuidesDir)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("NOTICEDESK_WEB_HTTP_ADDR", "127.0.0.1:9100")
	t.Setenv("NOTICEDESK_WEB_WIZARD_BASE_URL", "http://wizard:9200")
	t.Setenv("NOTICEDESK_WEB_SESSION_SECRET", "env-secret")
	t.Setenv("NOTICEDESK_WEB_DB_PATH", "/srv/noticedesk/web.db")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9100")
	}
	if cfg.WizardBaseURL != "http://wizard:9200" {
		t.Fatalf("WizardBaseURL = %q, want %q", cfg.WizardBaseURL, "http://wizard:9200")
	}
	if cfg.SessionSecret != "env-secret" {
		t.Fatalf("SessionSecret = %q, want %q", cfg.SessionSecret, "env-secret")
	}
	if cfg.StoragePath != "/srv/noticedesk/web.db" {
		t.Fatalf("StoragePath = %q, want %q", cfg.StoragePath, "/srv/noticedesk/web.db")
	}
}

func TestParseConfigFlagOverridesEnv(t *testing.T) {
	t.Setenv("NOTICEDESK_WEB_HTTP_ADDR", "127.0.0.1:9100")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigOverrideGuidesDir(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-guides-dir", "/srv/guides"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.GuidesDir != "/srv/guides" {
		t.Fatalf("GuidesDir = %q, want %q", cfg.GuidesDir, "/srv/guides")
	}
}

func TestLoadGuidesEmptyDirUsesEmbedded(t *testing.T) {
	library, watcher, err := loadGuides("  ")
	if err != nil {
		t.Fatalf("loadGuides() error = %v", err)
	}
	if library != nil || watcher != nil {
		t.Fatalf("expected nil library and watcher for an empty dir")
	}
}
