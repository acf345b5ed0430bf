package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("cy") {
		t.Fatalf("expected locale cy")
	}

	if got := len(bundle.LocaleMessages("en-GB")); got == 0 {
		t.Fatalf("expected en-GB messages")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/core.yaml"), `locale: "en-GB"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/web.yaml"), `locale: "en-GB"
namespace: "web"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocalePathMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-GB/core.yaml"), `locale: "cy"
namespace: "core"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}

	value, ok := bundle.Message("cy", "error.wizard_unexpected")
	if !ok {
		t.Fatal("expected base-locale fallback for untranslated key")
	}
	if value == "" {
		t.Fatal("expected non-empty fallback message")
	}

	translated, ok := bundle.Message("cy", "nav.pricing")
	if !ok {
		t.Fatal("expected translated key")
	}
	if translated != "Prisiau" {
		t.Fatalf("nav.pricing cy = %q, want %q", translated, "Prisiau")
	}
}

func TestMessageMissingKey(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if _, ok := bundle.Message(BaseLocale, "no.such.key"); ok {
		t.Fatal("expected lookup miss")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
