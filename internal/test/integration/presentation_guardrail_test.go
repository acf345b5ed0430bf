//go:build integration
// +build integration

// Package integration holds cross-package guardrails that keep the module's
// layering honest. They load real package metadata, so they run behind the
// integration build tag.
package integration

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// Presentation packages turn prepared view data into markup. Upstream calls
// and persistence belong to the handlers, so these packages must not import
// the layers that do that work.
func TestPresentationPackagesStayPresentationOnly(t *testing.T) {
	config := &packages.Config{
		Mode:  packages.NeedName | packages.NeedImports,
		Tests: false,
		Dir:   repoRoot(t),
	}
	pkgs, err := packages.Load(config, presentationPatterns()...)
	if err != nil {
		t.Fatalf("load presentation packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("presentation package load errors")
	}
	if len(pkgs) == 0 {
		t.Fatal("presentation packages not found")
	}

	var violations []string
	for _, pkg := range pkgs {
		imports := make([]string, 0, len(pkg.Imports))
		for importPath := range pkg.Imports {
			imports = append(imports, importPath)
		}
		sort.Strings(imports)
		for _, importPath := range imports {
			if !forbiddenPresentationImport(importPath) {
				continue
			}
			violations = append(violations, pkg.PkgPath+" imports "+importPath)
		}
	}

	if len(violations) > 0 {
		t.Fatalf("presentation packages must not reach into transport or persistence:\n- %s",
			strings.Join(violations, "\n- "))
	}
}

func TestPresentationGuardrailScopes(t *testing.T) {
	patterns := presentationPatterns()
	if len(patterns) == 0 {
		t.Fatal("expected at least one package pattern")
	}
	for _, want := range []string{"./internal/web/components", "./internal/web/content"} {
		found := false
		for _, pattern := range patterns {
			if pattern == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("expected scan scope to include %s, got %v", want, patterns)
		}
	}
}

func TestForbiddenPresentationImports(t *testing.T) {
	if !forbiddenPresentationImport("github.com/noticedesk/noticedesk.uk/internal/web/storage/sqlite") {
		t.Fatal("expected storage imports to be forbidden")
	}
	if !forbiddenPresentationImport("github.com/noticedesk/noticedesk.uk/internal/web/wizard") {
		t.Fatal("expected wizard imports to be forbidden")
	}
	if !forbiddenPresentationImport("net/http") {
		t.Fatal("expected net/http imports to be forbidden")
	}
	if forbiddenPresentationImport("github.com/noticedesk/noticedesk.uk/internal/web/routepath") {
		t.Fatal("expected routepath imports to be allowed")
	}
}

func presentationPatterns() []string {
	return []string{
		"./internal/web/components",
		"./internal/web/content",
	}
}

func forbiddenPresentationImport(importPath string) bool {
	if importPath == "net/http" {
		return true
	}
	for _, prefix := range []string{
		"github.com/noticedesk/noticedesk.uk/internal/web/storage",
		"github.com/noticedesk/noticedesk.uk/internal/web/wizard",
		"github.com/noticedesk/noticedesk.uk/internal/web/socialproof",
	} {
		if importPath == prefix || strings.HasPrefix(importPath, prefix+"/") {
			return true
		}
	}
	return false
}

func repoRoot(t *testing.T) string {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get working dir: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatal("go.mod not found")
		}
		wd = parent
	}
}
