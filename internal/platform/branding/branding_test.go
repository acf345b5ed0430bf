package branding

import (
	"strings"
	"testing"
)

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "NoticeDesk" {
		t.Fatalf("AppName = %q, want %q", AppName, "NoticeDesk")
	}
}

func TestDomainMatchesSupportEmail(t *testing.T) {
	if !strings.HasSuffix(SupportEmail, "@"+Domain) {
		t.Fatalf("SupportEmail = %q, want address at %q", SupportEmail, Domain)
	}
}
