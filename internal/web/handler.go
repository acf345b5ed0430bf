// Package web serves the marketing site: landing pages, guides, the
// resume-a-case flow, and the htmx fragments behind the live counters.
package web

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/guides"
	"github.com/noticedesk/noticedesk.uk/internal/web/htmx"
	apperrors "github.com/noticedesk/noticedesk.uk/internal/web/platform/errors"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/flash"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/observability"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/render"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/weberror"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	"github.com/noticedesk/noticedesk.uk/internal/web/socialproof"
	webstatic "github.com/noticedesk/noticedesk.uk/internal/web/static"
	webstorage "github.com/noticedesk/noticedesk.uk/internal/web/storage"
	"github.com/noticedesk/noticedesk.uk/internal/web/wizard"
	g "maragu.dev/gomponents"
)

// Config defines the inputs for the web server and its handler.
type Config struct {
	// HTTPAddr is the listen address, used by NewServer only.
	HTTPAddr string
	// WizardBaseURL is the wizard backend origin for case validation calls.
	// Empty leaves resume pages in their unavailable state.
	WizardBaseURL string
	// AuthRevokeURL is the auth provider's session revoke endpoint, notified
	// best-effort on logout.
	AuthRevokeURL string
	// SessionSecret verifies nd_session tokens. Empty renders every visitor
	// as anonymous.
	SessionSecret string
	// Store persists counters and leads.
	Store webstorage.Store
	// Library overrides the embedded guides. Nil loads the embedded set.
	Library *guides.Library
	// Clock overrides counter time in tests.
	Clock socialproof.Clock
	// Logger receives request logs. Nil uses a standard logger on stderr.
	Logger *log.Logger
}

// Handler owns the route handlers and their dependencies.
type Handler struct {
	store        webstorage.Store
	counters     *socialproof.Counter
	wizardClient *wizard.Client
	sessions     *SessionVerifier
	library      *guides.Library
	revoke       *revokeNotifier
	logger       *log.Logger
}

// NewHandler wires the handler dependencies.
func NewHandler(cfg Config) (*Handler, error) {
	if cfg.Store == nil {
		return nil, apperrors.E(apperrors.KindUnknown, "web store is required")
	}

	var wizardClient *wizard.Client
	if strings.TrimSpace(cfg.WizardBaseURL) != "" {
		client, err := wizard.NewClient(cfg.WizardBaseURL, nil)
		if err != nil {
			return nil, err
		}
		wizardClient = client
	}

	library := cfg.Library
	if library == nil {
		loaded, err := guides.NewLibrary()
		if err != nil {
			return nil, err
		}
		library = loaded
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	return &Handler{
		store:        cfg.Store,
		counters:     socialproof.New(cfg.Store, cfg.Clock, nil),
		wizardClient: wizardClient,
		sessions:     NewSessionVerifier(cfg.SessionSecret),
		library:      library,
		revoke:       newRevokeNotifier(cfg.AuthRevokeURL, nil),
		logger:       logger,
	}, nil
}

// Routes assembles the route table wrapped in the shared middleware chain.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle(routepath.StaticPrefix, withStaticMime(
		http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))),
	))

	mux.HandleFunc(routepath.Pricing, requireGet(h.handlePricing))
	mux.HandleFunc(routepath.HowItWorks, requireGet(h.handleHowItWorks))
	mux.HandleFunc(routepath.NoticeSection8, requireGet(h.noticeHandler("section-8")))
	mux.HandleFunc(routepath.NoticeSection21, requireGet(h.noticeHandler("section-21")))
	mux.HandleFunc(routepath.England, requireGet(h.jurisdictionHandler("england")))
	mux.HandleFunc(routepath.Wales, requireGet(h.jurisdictionHandler("wales")))
	mux.HandleFunc(routepath.Guides, requireGet(h.handleGuides))
	mux.HandleFunc(routepath.GuidesPrefix, requireGet(h.handleGuideArticle))
	mux.HandleFunc(routepath.ResumePrefix, requireGet(h.handleResume))
	mux.HandleFunc(routepath.ProofCounterPrefix, requireGet(h.handleProofCounter))
	mux.HandleFunc(routepath.DeadlineCountdown, requireGet(h.handleDeadlineCountdown))
	mux.HandleFunc(routepath.Leads, h.handleLeads)
	mux.HandleFunc(routepath.Logout, requireGet(h.handleLogout))
	mux.HandleFunc(routepath.Terms, requireGet(h.handleTerms))
	mux.HandleFunc(routepath.Privacy, requireGet(h.handlePrivacy))

	mux.HandleFunc(routepath.Healthz, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != routepath.Root {
			h.renderNotFound(w, r)
			return
		}
		requireGet(h.handleHome)(w, r)
	})

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.RequestLogger(h.logger),
	)
}

func requireGet(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		next.ServeHTTP(w, r)
	})
}

// pageContext resolves the request language once per page render.
type pageContext struct {
	loc  i18n.Localizer
	lang string
	copy i18n.SiteCopy
}

func (h *Handler) pageContext(w http.ResponseWriter, r *http.Request) pageContext {
	loc, lang := i18n.ResolveLocalizer(w, r, nil)
	return pageContext{loc: loc, lang: lang, copy: i18n.Site(loc)}
}

// pageConfig assembles the layout chrome for one page. jurisdiction selects
// the start-wizard target and whether the Welsh language switcher shows.
func (h *Handler) pageConfig(w http.ResponseWriter, r *http.Request, pc pageContext, title string, jurisdiction string) components.PageConfig {
	cfg := components.PageConfig{
		Title:    i18n.PageTitle(title),
		Path:     r.URL.Path,
		Lang:     pc.lang,
		Copy:     pc.copy,
		Viewer:   h.viewerFromRequest(r),
		StartURL: startWizardURL(jurisdiction),
	}
	if notice, ok := flash.ReadAndClear(w, r); ok {
		if message := flashMessage(pc.loc, notice); message != "" {
			cfg.Flash = &components.Flash{Kind: string(notice.Kind), Message: message}
		}
	}
	if offersWelsh(jurisdiction) || pc.lang == "cy" {
		cfg.Languages = languageLinks(r, pc.loc, pc.lang)
	}
	return cfg
}

// errorPage is the chrome for error renders: same shell, no flash consumption.
func (h *Handler) errorPage(r *http.Request, pc pageContext) components.PageConfig {
	return components.PageConfig{
		Path:     r.URL.Path,
		Lang:     pc.lang,
		Copy:     pc.copy,
		Viewer:   h.viewerFromRequest(r),
		StartURL: startWizardURL(""),
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, cfg components.PageConfig, body ...g.Node) {
	full := components.Layout(cfg, body...)
	htmx.RenderPage(w, r, nil, render.Component(full), htmx.TitleTag(cfg.Title))
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, pc pageContext, err error) {
	weberror.Write(w, r, pc.loc, h.errorPage(r, pc), err)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	h.renderError(w, r, pc, apperrors.E(apperrors.KindNotFound, "no page at "+r.URL.Path))
}

// startWizardURL builds the wizard entry link for the start CTAs.
func startWizardURL(jurisdiction string) string {
	jurisdiction = strings.TrimSpace(jurisdiction)
	if jurisdiction == "" {
		jurisdiction = content.JurisdictionEngland
	}
	return wizard.BuildFlowURL("", "", wizard.CaseContext{
		Type:         content.CaseTypeEviction,
		Jurisdiction: jurisdiction,
		Product:      content.ProductNoticeOnly,
	}, "")
}

func offersWelsh(jurisdiction string) bool {
	entry, ok := content.JurisdictionBySlug(jurisdiction)
	return ok && entry.OffersWelsh
}

func languageLinks(r *http.Request, loc i18n.Localizer, activeLang string) []components.LangLink {
	options := i18n.BuildLanguageOptions(activeLang, loc)
	links := make([]components.LangLink, 0, len(options))
	for _, option := range options {
		links = append(links, components.LangLink{
			Label:  option.Label,
			URL:    i18n.LanguageURL(r.URL.Path, r.URL.RawQuery, option.Tag),
			Active: option.Active,
		})
	}
	return links
}

// flashMessage resolves a stored notice key to display copy. Keys missing
// from the catalog drop the banner rather than leaking the raw key.
func flashMessage(loc i18n.Localizer, notice flash.Notice) string {
	message := i18n.T(loc, notice.Key)
	if strings.TrimSpace(message) == "" || message == notice.Key {
		return ""
	}
	return message
}

// nowFunc is the wall clock used by fragment handlers. Swapped in tests.
var nowFunc = time.Now
