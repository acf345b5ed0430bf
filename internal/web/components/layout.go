// Package components is the gomponents design system for the marketing
// site. Components take plain data from the content catalog and localized
// copy; they never reach into storage or upstream clients.
package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/platform/branding"
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Viewer is the signed-in account shown in the nav, if any.
type Viewer struct {
	Email    string
	Name     string
	SignedIn bool
}

// DisplayName prefers the name claim and falls back to the email.
func (v Viewer) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return v.Email
}

// LangLink is one entry in the language switcher.
type LangLink struct {
	Label  string
	URL    string
	Active bool
}

// Flash is a resolved one-time notice banner.
type Flash struct {
	Kind    string
	Message string
}

// PageConfig carries the chrome data for a full page render.
type PageConfig struct {
	Title       string
	Description string
	Path        string
	Lang        string
	Copy        i18n.SiteCopy
	Viewer      Viewer
	Languages   []LangLink
	Flash       *Flash
	StartURL    string
}

// Layout wraps page content in the full HTML document with nav and footer.
// Page content renders inside <main> so boosted navigation can swap it.
func Layout(cfg PageConfig, children ...g.Node) g.Node {
	lang := cfg.Lang
	if lang == "" {
		lang = "en-GB"
	}
	description := cfg.Description
	if description == "" {
		description = cfg.Copy.MetaDescription
	}

	return h.Doctype(
		h.HTML(
			h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(cfg.Title)),
				h.Meta(h.Name("description"), h.Content(description)),
				h.Meta(g.Attr("property", "og:site_name"), h.Content(branding.AppName)),
				h.Meta(g.Attr("property", "og:title"), h.Content(cfg.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(description)),
				h.Meta(g.Attr("property", "og:type"), h.Content("website")),
				h.Meta(g.Attr("property", "og:url"), h.Content("https://"+branding.Domain+cfg.Path)),
				h.Link(h.Rel("canonical"), h.Href("https://"+branding.Domain+cfg.Path)),
				h.Link(h.Rel("icon"), h.Href(routepath.StaticPrefix+"favicon.svg"), h.Type("image/svg+xml")),
				h.Link(h.Rel("stylesheet"), h.Href("https://cdn.jsdelivr.net/npm/daisyui@4.12.14/dist/full.min.css")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Link(h.Rel("stylesheet"), h.Href(routepath.StaticPrefix+"site.css")),
				h.Script(h.Src("https://unpkg.com/htmx.org@1.9.12"), h.Defer()),
				h.Script(h.Src(routepath.StaticPrefix+"app.js"), h.Defer()),
			),
			h.Body(
				h.Class("min-h-screen bg-base-100 text-base-content antialiased"),
				g.Attr("hx-boost", "true"),
				g.Raw(icons.LucideSprite()),
				navBar(cfg),
				flashBanner(cfg.Flash),
				h.Main(h.ID("main"), g.Group(children)),
				footerBar(cfg),
			),
		),
	)
}

func navBar(cfg PageConfig) g.Node {
	return h.Header(
		h.Class("border-b border-base-300 bg-base-100/90 sticky top-0 z-10 backdrop-blur"),
		h.Nav(
			h.Class("container mx-auto flex items-center justify-between gap-4 px-4 py-3"),
			h.A(
				h.Href(routepath.Root),
				h.Class("flex items-center gap-2 font-extrabold text-lg tracking-tight"),
				Icon(icons.Notice),
				g.Text(branding.AppName),
			),
			h.Div(
				h.Class("hidden md:flex items-center gap-5 text-sm"),
				h.A(h.Href(routepath.HowItWorks), h.Class("link link-hover"), g.Text(cfg.Copy.NavHowItWorks)),
				h.A(h.Href(routepath.Pricing), h.Class("link link-hover"), g.Text(cfg.Copy.NavPricing)),
				h.A(h.Href(routepath.NoticeSection8), h.Class("link link-hover"), g.Text(cfg.Copy.NavSection8)),
				h.A(h.Href(routepath.NoticeSection21), h.Class("link link-hover"), g.Text(cfg.Copy.NavSection21)),
				h.A(h.Href(routepath.Guides), h.Class("link link-hover"), g.Text(cfg.Copy.NavGuides)),
			),
			h.Div(
				h.Class("flex items-center gap-3"),
				languageSwitcher(cfg.Languages),
				accountArea(cfg),
			),
		),
	)
}

func languageSwitcher(languages []LangLink) g.Node {
	if len(languages) < 2 {
		return nil
	}
	return h.Div(
		h.Class("flex items-center gap-1 text-xs"),
		g.Group(g.Map(languages, func(lang LangLink) g.Node {
			if lang.Active {
				return h.Span(h.Class("badge badge-ghost badge-sm font-semibold"), g.Text(lang.Label))
			}
			return h.A(h.Href(lang.URL), h.Class("link link-hover opacity-70"), g.Text(lang.Label))
		})),
	)
}

func accountArea(cfg PageConfig) g.Node {
	if cfg.Viewer.SignedIn {
		return h.Div(
			h.Class("flex items-center gap-3 text-sm"),
			h.Span(h.Class("hidden sm:inline text-base-content/70"), g.Text(cfg.Viewer.DisplayName())),
			h.A(
				h.Href(routepath.Logout),
				h.Class("btn btn-ghost btn-sm gap-1"),
				g.Attr("hx-boost", "false"),
				Icon(icons.LogOut),
				g.Text(cfg.Copy.NavSignOut),
			),
		)
	}
	startURL := cfg.StartURL
	if startURL == "" {
		startURL = routepath.Pricing
	}
	return h.A(
		h.Href(startURL),
		h.Class("btn btn-primary btn-sm"),
		g.Attr("hx-boost", "false"),
		g.Text(cfg.Copy.ActionStartNotice),
	)
}

func flashBanner(notice *Flash) g.Node {
	if notice == nil || notice.Message == "" {
		return nil
	}
	tone := "alert-info"
	switch notice.Kind {
	case "success":
		tone = "alert-success"
	case "warning":
		tone = "alert-warning"
	case "error":
		tone = "alert-error"
	}
	return h.Div(
		h.Class("container mx-auto px-4 pt-4"),
		h.Div(
			h.Class("alert "+tone),
			h.Role("status"),
			Icon(icons.Check),
			h.Span(g.Text(notice.Message)),
		),
	)
}

func footerBar(cfg PageConfig) g.Node {
	return h.Footer(
		h.Class("border-t border-base-300 mt-16"),
		h.Div(
			h.Class("container mx-auto px-4 py-10 grid gap-8 md:grid-cols-3 text-sm"),
			h.Div(
				h.Class("space-y-2"),
				h.Div(h.Class("flex items-center gap-2 font-bold"), Icon(icons.Notice), g.Text(branding.AppName)),
				h.P(h.Class("text-base-content/70"), g.Text(branding.Tagline)),
				h.P(h.Class("text-base-content/50"), g.Text(cfg.Copy.FooterDisclaimer)),
			),
			h.Div(
				h.Class("space-y-2"),
				h.A(h.Href(routepath.NoticeSection8), h.Class("link link-hover block"), g.Text(cfg.Copy.NavSection8)),
				h.A(h.Href(routepath.NoticeSection21), h.Class("link link-hover block"), g.Text(cfg.Copy.NavSection21)),
				h.A(h.Href(routepath.England), h.Class("link link-hover block"), g.Text("England")),
				h.A(h.Href(routepath.Wales), h.Class("link link-hover block"), g.Text("Wales")),
				h.A(h.Href(routepath.Guides), h.Class("link link-hover block"), g.Text(cfg.Copy.NavGuides)),
			),
			h.Div(
				h.Class("space-y-2"),
				h.A(h.Href("mailto:"+branding.SupportEmail), h.Class("link link-hover block"), g.Text(cfg.Copy.FooterContact)),
				h.A(h.Href(routepath.Terms), h.Class("link link-hover block"), g.Text(cfg.Copy.FooterTerms)),
				h.A(h.Href(routepath.Privacy), h.Class("link link-hover block"), g.Text(cfg.Copy.FooterPrivacy)),
				h.P(h.Class("text-base-content/50 pt-2"), g.Text("© "+branding.AppName+". "+cfg.Copy.FooterRights)),
			),
		),
	)
}
