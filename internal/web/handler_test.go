package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/flash"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/sessioncookie"
	"github.com/noticedesk/noticedesk.uk/internal/web/storage/memory"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time { return c.now }

// testNow is a fixed instant before the Section 21 transition date so
// countdown blocks render in their ticking state.
var testNow = time.Date(2026, 4, 12, 12, 0, 0, 0, time.UTC)

// newTestHandler builds a handler on the in-memory store with a fixed clock.
func newTestHandler(t *testing.T, mutate func(*Config)) *Handler {
	t.Helper()
	cfg := Config{
		Store:  memory.New(),
		Clock:  fakeClock{now: testNow},
		Logger: log.New(io.Discard, "", 0),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return handler
}

// freezeTime pins the package clock used by countdown renders.
func freezeTime(t *testing.T, now time.Time) {
	t.Helper()
	restore := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = restore })
}

func get(t *testing.T, handler http.Handler, path string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

// TestPageRendering verifies layout rendering for full pages and HTMX
// boosted navigation.
func TestPageRendering(t *testing.T) {
	freezeTime(t, testNow)
	handler := newTestHandler(t, nil).Routes()

	tests := []struct {
		name        string
		path        string
		htmx        bool
		contains    []string
		notContains []string
	}{
		{
			name: "home full page",
			path: "/",
			contains: []string{
				"<!doctype html>",
				"Court-ready eviction notices for England and Wales | NoticeDesk",
				"Serve a court-ready eviction notice without the solicitor bill",
				`data-proof="notices_today"`,
				`data-countdown="banner"`,
				"Questions landlords ask",
				"Not ready to serve yet?",
			},
		},
		{
			name: "home htmx",
			path: "/",
			htmx: true,
			contains: []string{
				"Serve a court-ready eviction notice without the solicitor bill",
			},
			notContains: []string{
				"<!doctype html>",
				"<html",
			},
		},
		{
			name: "pricing",
			path: "/pricing",
			contains: []string{
				"Simple one-off pricing",
				"£39",
				"£69",
				"Most popular",
				"Notice + Proof Pack",
				"What it costs, compared",
			},
		},
		{
			name: "how it works",
			path: "/how-it-works",
			contains: []string{
				"From first question to served notice",
				"What your notice looks like",
				`src="/static/previews/section-8-form-3.svg"`,
				`src="/static/previews/section-21-form-6a.svg"`,
			},
		},
		{
			name: "section 8 landing",
			path: "/notices/section-8",
			contains: []string{
				"Section 8 notice for rent arrears",
				"Housing Act 1988 section 8 (as amended)",
				"Ground 8: Serious rent arrears",
				"Mandatory",
				"35 Woodhall Park Avenue",
			},
			notContains: []string{
				`data-countdown="medium"`,
			},
		},
		{
			name: "section 21 landing",
			path: "/notices/section-21",
			contains: []string{
				"Section 21 no-fault notice",
				"Form 6A",
				`data-countdown="medium"`,
			},
		},
		{
			name: "england landing",
			path: "/england",
			contains: []string{
				"Eviction notices for properties in England",
				"Pick your route",
				`href="/notices/section-8"`,
				`href="/notices/section-21"`,
				`data-countdown="medium"`,
			},
		},
		{
			name: "wales landing",
			path: "/wales",
			contains: []string{
				"Possession notices for properties in Wales",
				"Renting Homes (Wales) Act 2016",
				"Cymraeg",
			},
			notContains: []string{
				"data-countdown",
			},
		},
		{
			name: "guides index",
			path: "/guides",
			contains: []string{
				"Landlord guides",
				"Deposit protection rules and why they block your notice",
				`href="/guides/section-8-grounds"`,
			},
		},
		{
			name: "guide article",
			path: "/guides/deposit-protection",
			contains: []string{
				"Deposit protection rules and why they block your notice",
				"unforgiving",
			},
		},
		{
			name: "terms",
			path: "/terms",
			contains: []string{
				"Terms of service",
				"document preparation service",
			},
		},
		{
			name: "privacy",
			path: "/privacy",
			contains: []string{
				"Privacy policy",
				"nd_session",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			recorder := get(t, handler, tc.path, tc.htmx)
			if recorder.Code != http.StatusOK {
				t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
			}

			body := recorder.Body.String()
			for _, expected := range tc.contains {
				assertContains(t, body, expected)
			}
			for _, unexpected := range tc.notContains {
				assertNotContains(t, body, unexpected)
			}
		})
	}
}

func TestUnknownPathRendersBranded404(t *testing.T) {
	handler := newTestHandler(t, nil).Routes()

	recorder := get(t, handler, "/no-such-page", false)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
	}

	body := recorder.Body.String()
	assertContains(t, body, "<!doctype html>")
	assertContains(t, body, "Page not found")
	assertContains(t, body, "Back to the homepage")
}

func TestPageMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, nil).Routes()

	req := httptest.NewRequest(http.MethodPost, "http://example.com/pricing", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, recorder.Code)
	}
	if allow := recorder.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", allow, http.MethodGet)
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t, nil).Routes()

	recorder := get(t, handler, "/healthz", false)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if body := recorder.Body.String(); body != "OK" {
		t.Fatalf("body = %q, want %q", body, "OK")
	}
}

func TestProofCounterFragment(t *testing.T) {
	handler := newTestHandler(t, nil).Routes()

	t.Run("known variant", func(t *testing.T) {
		recorder := get(t, handler, "/proof/counter/notices_today", true)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
		}

		body := recorder.Body.String()
		assertContains(t, body, `data-proof="notices_today"`)
		assertContains(t, body, `hx-get="/proof/counter/notices_today"`)
		assertContains(t, body, `hx-trigger="every 60s"`)
		assertContains(t, body, "landlords started a notice today")
		assertContains(t, body, "data-countup=")
		assertNotContains(t, body, "<!doctype html>")
	})

	t.Run("reduced motion drops the animation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/proof/counter/notices_today", nil)
		req.Header.Set("Sec-CH-Prefers-Reduced-Motion", "reduce")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
		}
		assertNotContains(t, recorder.Body.String(), "data-countup=")
	})

	t.Run("unknown variant", func(t *testing.T) {
		recorder := get(t, handler, "/proof/counter/bogus", false)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
		}
	})
}

func TestDeadlineCountdownFragment(t *testing.T) {
	handler := newTestHandler(t, nil).Routes()

	t.Run("large ticks every second", func(t *testing.T) {
		freezeTime(t, testNow)
		recorder := get(t, handler, "/deadline/countdown?size=large", true)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
		}

		body := recorder.Body.String()
		assertContains(t, body, `data-countdown="large"`)
		assertContains(t, body, `hx-trigger="every 1s"`)
		assertContains(t, body, "seconds")
	})

	t.Run("unknown size falls back to banner", func(t *testing.T) {
		freezeTime(t, testNow)
		recorder := get(t, handler, "/deadline/countdown?size=bogus", true)

		body := recorder.Body.String()
		assertContains(t, body, `data-countdown="banner"`)
		assertContains(t, body, `hx-trigger="every 60s"`)
		assertContains(t, body, "Serve yours before the deadline")
	})

	t.Run("terminal state stops polling", func(t *testing.T) {
		freezeTime(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
		recorder := get(t, handler, "/deadline/countdown?size=banner", true)

		body := recorder.Body.String()
		assertContains(t, body, "The transition date has passed.")
		assertNotContains(t, body, "hx-trigger")
	})
}

// fakeWizard serves one canned validation response.
func fakeWizard(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/cases/") || !strings.HasSuffix(r.URL.Path, "/validation") {
			t.Errorf("unexpected wizard path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResumeReadyState(t *testing.T) {
	wizardBackend := fakeWizard(t, http.StatusOK, `{"issues":[]}`)
	handler := newTestHandler(t, func(cfg *Config) {
		cfg.WizardBaseURL = wizardBackend.URL
	}).Routes()

	recorder := get(t, handler, "/resume/case-ready", false)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	body := recorder.Body.String()
	assertContains(t, body, "Your notice is ready to continue")
	assertContains(t, body, "case_id=case-ready&amp;mode=review")
	assertNotContains(t, body, "A few answers need attention")
}

func TestResumeIssueList(t *testing.T) {
	payload := `{"issues":[
		{"code":"ground8_arrears_below_threshold","severity":"warning","user_fix_hint":"Check the arrears schedule before relying on Ground 8."},
		{"code":"deposit_unprotected","severity":"blocking","affected_question_id":"deposit_scheme","alternate_question_ids":["deposit_amount"],"user_fix_hint":"Tell us which scheme protects the deposit.","legal_reason":"An unprotected deposit invalidates a Section 21 notice until it is returned."}
	]}`
	wizardBackend := fakeWizard(t, http.StatusUnprocessableEntity, payload)
	handler := newTestHandler(t, func(cfg *Config) {
		cfg.WizardBaseURL = wizardBackend.URL
	}).Routes()

	recorder := get(t, handler, "/resume/case-42", false)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	body := recorder.Body.String()
	assertContains(t, body, "A few answers need attention")
	assertContains(t, body, "Deposit not protected in a scheme")
	assertContains(t, body, "Arrears below the Ground 8 threshold")
	assertContains(t, body, "jump_to=deposit_scheme")
	assertContains(t, body, "Fix this answer")
	assertContains(t, body, "Why this matters")
	assertContains(t, body, "An unprotected deposit invalidates a Section 21 notice")
	assertContains(t, body, "Deposit amount")

	blockingAt := strings.Index(body, "Deposit not protected in a scheme")
	warningAt := strings.Index(body, "Arrears below the Ground 8 threshold")
	if blockingAt < 0 || warningAt < 0 || blockingAt > warningAt {
		t.Fatalf("expected blocking issue before warning, got positions %d and %d", blockingAt, warningAt)
	}
}

func TestResumeFallbackStates(t *testing.T) {
	t.Run("case not found", func(t *testing.T) {
		wizardBackend := fakeWizard(t, http.StatusNotFound, "")
		handler := newTestHandler(t, func(cfg *Config) {
			cfg.WizardBaseURL = wizardBackend.URL
		}).Routes()

		recorder := get(t, handler, "/resume/case-gone", false)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
		}

		body := recorder.Body.String()
		assertContains(t, body, "This case link has expired")
		assertContains(t, body, "Start a new notice")
	})

	t.Run("backend error", func(t *testing.T) {
		wizardBackend := fakeWizard(t, http.StatusInternalServerError, "")
		handler := newTestHandler(t, func(cfg *Config) {
			cfg.WizardBaseURL = wizardBackend.URL
		}).Routes()

		recorder := get(t, handler, "/resume/case-1", false)
		body := recorder.Body.String()
		assertContains(t, body, "The notice builder returned an unexpected response.")
		assertContains(t, body, "Start a new notice")
		assertNotContains(t, body, "ready to continue")
	})

	t.Run("no wizard configured", func(t *testing.T) {
		handler := newTestHandler(t, nil).Routes()

		recorder := get(t, handler, "/resume/case-1", false)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
		}
		assertContains(t, recorder.Body.String(), "temporarily unavailable")
	})

	t.Run("nested path is not found", func(t *testing.T) {
		handler := newTestHandler(t, nil).Routes()

		recorder := get(t, handler, "/resume/case-1/extra", false)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, recorder.Code)
		}
	})
}

func postLead(t *testing.T, handler http.Handler, form url.Values, referer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "http://example.com/leads", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func flashCookie(t *testing.T, recorder *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == flash.CookieName && cookie.MaxAge >= 0 {
			return cookie
		}
	}
	return nil
}

func TestLeadCapture(t *testing.T) {
	store := memory.New()
	handler := newTestHandler(t, func(cfg *Config) {
		cfg.Store = store
	}).Routes()

	t.Run("valid email subscribes and redirects back", func(t *testing.T) {
		form := url.Values{}
		form.Set("email", "landlord@example.co.uk")
		form.Set("jurisdiction", "england")
		recorder := postLead(t, handler, form, "http://example.com/england")

		if recorder.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
		}
		if location := recorder.Header().Get("Location"); location != "/england" {
			t.Fatalf("Location = %q, want %q", location, "/england")
		}
		if flashCookie(t, recorder) == nil {
			t.Fatalf("expected a flash cookie to be set")
		}

		lead, found, err := store.GetLeadByEmail(context.Background(), "landlord@example.co.uk")
		if err != nil || !found {
			t.Fatalf("GetLeadByEmail found=%v err=%v", found, err)
		}
		if lead.Jurisdiction != "england" {
			t.Fatalf("lead.Jurisdiction = %q, want %q", lead.Jurisdiction, "england")
		}
		if lead.ID == "" {
			t.Fatalf("expected lead to receive an id")
		}
	})

	t.Run("success flash renders on the next page", func(t *testing.T) {
		form := url.Values{}
		form.Set("email", "banner@example.co.uk")
		recorder := postLead(t, handler, form, "")

		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		for _, cookie := range recorder.Result().Cookies() {
			req.AddCookie(cookie)
		}
		followUp := httptest.NewRecorder()
		handler.ServeHTTP(followUp, req)

		assertContains(t, followUp.Body.String(), "Checklist on its way. Check your inbox.")
	})

	t.Run("invalid email flashes an error without storing", func(t *testing.T) {
		form := url.Values{}
		form.Set("email", "not-an-email")
		recorder := postLead(t, handler, form, "http://example.com/")

		if recorder.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
		}
		if flashCookie(t, recorder) == nil {
			t.Fatalf("expected a flash cookie to be set")
		}
		if _, found, _ := store.GetLeadByEmail(context.Background(), "not-an-email"); found {
			t.Fatalf("expected invalid email to be rejected")
		}
	})

	t.Run("unknown jurisdiction is dropped", func(t *testing.T) {
		form := url.Values{}
		form.Set("email", "scotland@example.co.uk")
		form.Set("jurisdiction", "scotland")
		postLead(t, handler, form, "")

		lead, found, err := store.GetLeadByEmail(context.Background(), "scotland@example.co.uk")
		if err != nil || !found {
			t.Fatalf("GetLeadByEmail found=%v err=%v", found, err)
		}
		if lead.Jurisdiction != "" {
			t.Fatalf("lead.Jurisdiction = %q, want empty", lead.Jurisdiction)
		}
	})

	t.Run("cross origin referer falls back to home", func(t *testing.T) {
		form := url.Values{}
		form.Set("email", "other@example.co.uk")
		recorder := postLead(t, handler, form, "https://evil.example.net/england")

		if location := recorder.Header().Get("Location"); location != "/" {
			t.Fatalf("Location = %q, want %q", location, "/")
		}
	})

	t.Run("get is not allowed", func(t *testing.T) {
		recorder := get(t, handler, "/leads", false)
		if recorder.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, recorder.Code)
		}
		if allow := recorder.Header().Get("Allow"); allow != http.MethodPost {
			t.Fatalf("Allow = %q, want %q", allow, http.MethodPost)
		}
	})
}

func signSessionToken(t *testing.T, secret, email, name string) string {
	t.Helper()
	claims := sessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign session token: %v", err)
	}
	return token
}

func TestSignedInViewer(t *testing.T) {
	const secret = "test-secret"
	handler := newTestHandler(t, func(cfg *Config) {
		cfg.SessionSecret = secret
	}).Routes()

	t.Run("valid session shows the account area", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.AddCookie(&http.Cookie{
			Name:  sessioncookie.Name,
			Value: signSessionToken(t, secret, "margaret@example.co.uk", "Margaret H."),
		})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		body := recorder.Body.String()
		assertContains(t, body, "Margaret H.")
		assertContains(t, body, "Sign out")
	})

	t.Run("bad signature renders anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.AddCookie(&http.Cookie{
			Name:  sessioncookie.Name,
			Value: signSessionToken(t, "other-secret", "margaret@example.co.uk", "Margaret H."),
		})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assertNotContains(t, recorder.Body.String(), "Sign out")
	})
}

func TestLogout(t *testing.T) {
	var revokedToken string
	revokeEndpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err == nil {
			revokedToken = r.PostFormValue("token")
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(revokeEndpoint.Close)

	const secret = "test-secret"
	handler := newTestHandler(t, func(cfg *Config) {
		cfg.SessionSecret = secret
		cfg.AuthRevokeURL = revokeEndpoint.URL
	}).Routes()

	t.Run("same origin logout clears the session", func(t *testing.T) {
		revokedToken = ""
		token := signSessionToken(t, secret, "margaret@example.co.uk", "")
		req := httptest.NewRequest(http.MethodGet, "http://example.com/logout", nil)
		req.Header.Set("Referer", "http://example.com/pricing")
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
		}
		if location := recorder.Header().Get("Location"); location != "/" {
			t.Fatalf("Location = %q, want %q", location, "/")
		}

		var cleared *http.Cookie
		for _, cookie := range recorder.Result().Cookies() {
			if cookie.Name == sessioncookie.Name {
				cleared = cookie
			}
		}
		if cleared == nil || cleared.MaxAge != -1 {
			t.Fatalf("expected session cookie to be cleared")
		}
		if revokedToken != token {
			t.Fatalf("revoked token = %q, want the session token", revokedToken)
		}
	})

	t.Run("logout without origin proof only redirects", func(t *testing.T) {
		revokedToken = ""
		req := httptest.NewRequest(http.MethodGet, "http://example.com/logout", nil)
		req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "tok"})
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		if recorder.Code != http.StatusFound {
			t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
		}
		for _, cookie := range recorder.Result().Cookies() {
			if cookie.Name == sessioncookie.Name {
				t.Fatalf("expected session cookie to be left alone")
			}
		}
		if revokedToken != "" {
			t.Fatalf("expected no revoke call, got token %q", revokedToken)
		}
	})
}

func TestWelshLanguageSelection(t *testing.T) {
	handler := newTestHandler(t, nil).Routes()

	recorder := get(t, handler, "/wales?lang=cy", false)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}

	body := recorder.Body.String()
	assertContains(t, body, `lang="cy"`)
	assertContains(t, body, "Sut mae'n gweithio")
	assertContains(t, body, "English")

	var langCookie *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == i18n.LangCookieName {
			langCookie = cookie
		}
	}
	if langCookie == nil || langCookie.Value != "cy" {
		t.Fatalf("expected %s cookie to store cy", i18n.LangCookieName)
	}
}

// assertContains fails the test when the body lacks the expected fragment.
func assertContains(t *testing.T, body string, expected string) {
	t.Helper()
	if !strings.Contains(body, expected) {
		t.Fatalf("expected response to contain %q", expected)
	}
}

// assertNotContains fails the test when the body includes an unexpected fragment.
func assertNotContains(t *testing.T, body string, unexpected string) {
	t.Helper()
	if strings.Contains(body, unexpected) {
		t.Fatalf("expected response to not contain %q", unexpected)
	}
}
