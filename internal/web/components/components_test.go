package components

import (
	"strings"
	"testing"
	"time"

	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/deadline"
	"github.com/noticedesk/noticedesk.uk/internal/web/guides"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	g "maragu.dev/gomponents"
)

func renderString(t *testing.T, node g.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := node.Render(&sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func testPageConfig() PageConfig {
	return PageConfig{
		Title:       "Pricing | NoticeDesk",
		Description: "Plans for landlords.",
		Path:        "/pricing",
		Lang:        "en-GB",
		Copy:        i18n.Site(nil),
		StartURL:    "/wizard/flow?type=eviction",
	}
}

func TestLayoutRendersChrome(t *testing.T) {
	t.Parallel()

	html := renderString(t, Layout(testPageConfig(), g.Text("page body here")))

	for _, want := range []string{
		"<!doctype html>",
		`lang="en-GB"`,
		"<title>Pricing | NoticeDesk</title>",
		`property="og:title"`,
		`<main id="main">`,
		"page body here",
		"NoticeDesk",
		"How it works",
		"Not a law firm",
		"lucide-shield-check",
		`hx-boost="true"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("layout missing %q", want)
		}
	}
}

func TestLayoutSignedInShowsAccount(t *testing.T) {
	t.Parallel()

	cfg := testPageConfig()
	cfg.Viewer = Viewer{Email: "t.mohammed@example.co.uk", Name: "Tariq", SignedIn: true}

	html := renderString(t, Layout(cfg))
	if !strings.Contains(html, "Tariq") {
		t.Fatal("signed-in layout missing display name")
	}
	if !strings.Contains(html, "/logout") {
		t.Fatal("signed-in layout missing sign-out link")
	}

	cfg.Viewer = Viewer{}
	html = renderString(t, Layout(cfg))
	if strings.Contains(html, "/logout") {
		t.Fatal("anonymous layout should not link sign-out")
	}
	if !strings.Contains(html, cfg.StartURL) {
		t.Fatal("anonymous layout missing start CTA")
	}
}

func TestLayoutFlashBanner(t *testing.T) {
	t.Parallel()

	cfg := testPageConfig()
	cfg.Flash = &Flash{Kind: "success", Message: "Check your inbox."}

	html := renderString(t, Layout(cfg))
	if !strings.Contains(html, "alert-success") {
		t.Fatal("flash banner missing success tone")
	}
	if !strings.Contains(html, "Check your inbox.") {
		t.Fatal("flash banner missing message")
	}

	cfg.Flash = nil
	html = renderString(t, Layout(cfg))
	if strings.Contains(html, "alert-success") {
		t.Fatal("layout rendered a flash banner without a notice")
	}
}

func TestLayoutLanguageSwitcher(t *testing.T) {
	t.Parallel()

	cfg := testPageConfig()
	cfg.Languages = []LangLink{
		{Label: "English", URL: "/wales?lang=en-GB"},
		{Label: "Cymraeg", URL: "/wales?lang=cy", Active: true},
	}

	html := renderString(t, Layout(cfg))
	if !strings.Contains(html, "/wales?lang=en-GB") {
		t.Fatal("switcher missing inactive language link")
	}
	if strings.Contains(html, `href="/wales?lang=cy"`) {
		t.Fatal("active language should render as text, not a link")
	}
	if !strings.Contains(html, "Cymraeg") {
		t.Fatal("switcher missing active language label")
	}
}

func TestCountdownSizes(t *testing.T) {
	t.Parallel()

	copy := i18n.Deadline(nil)
	b := deadline.Breakdown{Days: 246, Hours: 12, Minutes: 30, Seconds: 15}

	large := renderString(t, Countdown(deadline.SizeLarge, b, copy, ""))
	if !strings.Contains(large, "seconds") {
		t.Fatal("large countdown missing seconds label")
	}
	if !strings.Contains(large, "15") {
		t.Fatal("large countdown missing seconds value")
	}

	medium := renderString(t, Countdown(deadline.SizeMedium, b, copy, ""))
	if strings.Contains(medium, "seconds") {
		t.Fatal("medium countdown should not show seconds")
	}

	compact := renderString(t, Countdown(deadline.SizeCompact, b, copy, ""))
	if !strings.Contains(compact, "246d 12h 30m") {
		t.Fatalf("compact countdown = %q, want inline format", compact)
	}

	banner := renderString(t, Countdown(deadline.SizeBanner, b, copy, "/start"))
	if !strings.Contains(banner, copy.BannerCTA) {
		t.Fatal("banner countdown missing CTA")
	}
}

func TestCountdownTerminal(t *testing.T) {
	t.Parallel()

	copy := i18n.Deadline(nil)
	html := renderString(t, Countdown(deadline.SizeLarge, deadline.Breakdown{Passed: true}, copy, ""))
	if !strings.Contains(html, copy.Terminal) {
		t.Fatal("terminal countdown missing passed message")
	}
}

func TestCountdownPollerCadence(t *testing.T) {
	t.Parallel()

	copy := i18n.Deadline(nil)
	b := deadline.Breakdown{Days: 1}

	large := renderString(t, CountdownPoller(deadline.SizeLarge, b, copy, ""))
	if !strings.Contains(large, `hx-trigger="every 1s"`) {
		t.Fatal("large poller should tick every second")
	}
	if !strings.Contains(large, "/deadline/countdown?size=large") {
		t.Fatal("large poller missing fragment URL")
	}

	banner := renderString(t, CountdownPoller(deadline.SizeBanner, b, copy, ""))
	if !strings.Contains(banner, `hx-trigger="every 60s"`) {
		t.Fatal("banner poller should tick every minute")
	}

	terminal := renderString(t, CountdownPoller(deadline.SizeBanner, deadline.Breakdown{Passed: true}, copy, ""))
	if strings.Contains(terminal, "hx-trigger") {
		t.Fatal("terminal poller should stop refreshing")
	}
}

func TestProofBadgeAnimation(t *testing.T) {
	t.Parallel()

	copy := i18n.Proof(nil)

	animated := renderString(t, ProofBadge(2347, "landlords started a notice today", copy, true))
	if !strings.Contains(animated, `data-countup="2347"`) {
		t.Fatal("animated badge missing count-up target")
	}
	if !strings.Contains(animated, `data-countup-duration="1200"`) {
		t.Fatal("animated badge missing duration")
	}
	if !strings.Contains(animated, "2,347") {
		t.Fatal("badge missing humanized value")
	}

	still := renderString(t, ProofBadge(2347, "", copy, false))
	if strings.Contains(still, "data-countup") {
		t.Fatal("reduced-motion badge should omit count-up attributes")
	}
	if !strings.Contains(still, "2,347") {
		t.Fatal("reduced-motion badge still renders the final value")
	}
	if !strings.Contains(still, copy.Suffix) {
		t.Fatal("badge should fall back to the localized suffix label")
	}
}

func TestProofPollerAttributes(t *testing.T) {
	t.Parallel()

	html := renderString(t, ProofPoller("notices_today", g.Text("inner")))
	if !strings.Contains(html, "/proof/counter/notices_today") {
		t.Fatal("poller missing fragment URL")
	}
	if !strings.Contains(html, `hx-trigger="every 60s"`) {
		t.Fatal("poller missing refresh trigger")
	}
}

func TestIssueListOrderAndLinks(t *testing.T) {
	t.Parallel()

	copy := i18n.Resume(nil)
	issues := []IssueView{
		{
			Title:    "Rent amount is missing",
			Hint:     "Enter the monthly rent from the tenancy agreement.",
			Reason:   "Ground 8 requires the arrears to be measured against the rent.",
			Blocking: true,
			FixURL:   "/wizard/flow?case_id=abc123&jump_to=rent_amount",
			FixLabel: "Fix this answer",
			Alternates: []Link{
				{Href: "/wizard/flow?case_id=abc123&jump_to=rent_schedule", Label: "Rent schedule"},
			},
		},
		{
			Title:    "Consider adding a covering letter",
			Blocking: false,
			FixLabel: "Fix this answer",
		},
	}

	html := renderString(t, IssueList(issues, copy))
	if !strings.Contains(html, "Blocking") {
		t.Fatal("issue list missing blocking badge")
	}
	if !strings.Contains(html, "Warning") {
		t.Fatal("issue list missing warning badge")
	}
	if strings.Index(html, "Rent amount is missing") > strings.Index(html, "covering letter") {
		t.Fatal("blocking issue should render before the warning")
	}
	if !strings.Contains(html, "jump_to=rent_amount") {
		t.Fatal("issue list missing fix link")
	}
	if !strings.Contains(html, "jump_to=rent_schedule") {
		t.Fatal("issue list missing alternate link")
	}
	if !strings.Contains(html, copy.LegalReasonLabel) {
		t.Fatal("issue list missing legal reason label")
	}
}

func TestPreviewCardFallback(t *testing.T) {
	t.Parallel()

	html := renderString(t, PreviewCard("/static/previews/section-8-form-3.svg", "Completed Form 3", "Sample data"))
	if !strings.Contains(html, `src="/static/previews/section-8-form-3.svg"`) {
		t.Fatal("preview missing image source")
	}
	if !strings.Contains(html, "Preview coming soon") {
		t.Fatal("preview missing fallback block")
	}
	if !strings.Contains(html, "data-preview-fallback") {
		t.Fatal("preview fallback not addressable by script")
	}
	if !strings.Contains(html, "Sample data") {
		t.Fatal("preview missing caption")
	}
}

func TestFAQAccordionUsesDetails(t *testing.T) {
	t.Parallel()

	faqs := content.FAQs()
	html := renderString(t, FAQAccordion("Questions", faqs))
	if got := strings.Count(html, "<details"); got != len(faqs) {
		t.Fatalf("details count = %d, want %d", got, len(faqs))
	}
}

func TestPricingCardsHighlightOne(t *testing.T) {
	t.Parallel()

	html := renderString(t, PricingCards(content.Plans(), "/start"))
	if got := strings.Count(html, "Most popular"); got != 1 {
		t.Fatalf("highlight badge count = %d, want 1", got)
	}
	if !strings.Contains(html, "£39") {
		t.Fatal("pricing missing entry plan price")
	}
}

func TestGroundsListBadges(t *testing.T) {
	t.Parallel()

	notice, ok := content.NoticeBySlug("section-8")
	if !ok {
		t.Fatal("section-8 notice content missing")
	}
	html := renderString(t, GroundsList(notice.Grounds))
	if got := strings.Count(html, ">Mandatory<"); got != 1 {
		t.Fatalf("mandatory badge count = %d, want 1", got)
	}
	if got := strings.Count(html, ">Discretionary<"); got != 2 {
		t.Fatalf("discretionary badge count = %d, want 2", got)
	}
	if !strings.Contains(html, "Ground 8: Serious rent arrears") {
		t.Fatal("grounds list missing ground 8 heading")
	}
}

func TestGuideCardsLinkBySlug(t *testing.T) {
	t.Parallel()

	items := []guides.Guide{
		{Slug: "deposit-protection", Title: "Deposit rules", Description: "The 30-day rule.", Date: time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC)},
	}
	html := renderString(t, GuideCards(items, "Read the guide"))
	if !strings.Contains(html, `href="/guides/deposit-protection"`) {
		t.Fatal("guide card missing article link")
	}
	if !strings.Contains(html, "24 February 2026") {
		t.Fatal("guide card missing formatted date")
	}
}

func TestGuideArticleRendersHTML(t *testing.T) {
	t.Parallel()

	guide := guides.Guide{Slug: "x", Title: "Sample", HTML: "<h2>Ground 8</h2><p>Two months.</p>"}
	html := renderString(t, GuideArticle(guide))
	if !strings.Contains(html, "<h2>Ground 8</h2>") {
		t.Fatal("article should embed rendered markdown unescaped")
	}
}

func TestErrorContent(t *testing.T) {
	t.Parallel()

	html := renderString(t, ErrorContent("Page not found", "It may have moved.", "Back to home"))
	for _, want := range []string{"Page not found", "It may have moved.", "Back to home", `href="/"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("error content missing %q", want)
		}
	}
}

func TestHeroRendersCTAs(t *testing.T) {
	t.Parallel()

	hero := content.HomeHero()
	html := renderString(t, Hero(hero, "/start", "/how-it-works"))
	if !strings.Contains(html, hero.Title) {
		t.Fatal("hero missing title")
	}
	if !strings.Contains(html, `href="/start"`) {
		t.Fatal("hero missing primary CTA link")
	}
	if !strings.Contains(html, `href="/how-it-works"`) {
		t.Fatal("hero missing secondary CTA link")
	}
}
