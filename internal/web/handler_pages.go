package web

import (
	"net/http"

	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/deadline"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
)

// handlePricing renders the pricing page.
func (h *Handler) handlePricing(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	intro := content.PricingIntro()
	cfg := h.pageConfig(w, r, pc, intro.Title, "")
	headings := content.Headings()

	h.renderPage(w, r, cfg,
		components.PageIntro(intro),
		components.PricingCards(content.Plans(), cfg.StartURL),
		components.ComparisonTable(headings.Comparison, content.Comparison()),
		components.CTABand(content.ClosingCTA(), cfg.StartURL),
	)
}

// handleHowItWorks renders the walkthrough page.
func (h *Handler) handleHowItWorks(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	intro := content.HowItWorksIntro()
	cfg := h.pageConfig(w, r, pc, intro.Title, "")
	headings := content.Headings()

	h.renderPage(w, r, cfg,
		components.PageIntro(intro),
		components.StepList("", content.Steps()),
		components.ContentSection(headings.Preview, components.PreviewPair(content.Notices())),
		components.FAQAccordion(headings.FAQs, content.FAQs()),
		components.CTABand(content.ClosingCTA(), cfg.StartURL),
	)
}

// noticeHandler builds the landing page handler for one notice route.
func (h *Handler) noticeHandler(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notice, ok := content.NoticeBySlug(slug)
		if !ok {
			h.renderNotFound(w, r)
			return
		}
		pc := h.pageContext(w, r)
		cfg := h.pageConfig(w, r, pc, notice.Title, "")
		headings := content.Headings()

		body := []g.Node{
			components.Hero(content.NoticeHero(notice), cfg.StartURL, routepath.HowItWorks),
		}
		if notice.ShowCountdown {
			body = append(body, components.ContentSection("", countdownBlock(pc, deadline.SizeMedium)))
		}
		body = append(body,
			components.ContentSection(headings.Facts, components.NoticeFacts(notice)),
		)
		if len(notice.Grounds) > 0 {
			body = append(body,
				components.ContentSection(headings.Grounds, components.GroundsList(notice.Grounds)),
			)
		}
		body = append(body,
			components.ContentSection(headings.UseWhen, components.UseWhenList(notice.UseWhen)),
			components.ContentSection(headings.Preview,
				components.PreviewCard(notice.PreviewImage, notice.PreviewAlt, content.PreviewCaption()),
			),
			components.CTABand(content.ClosingCTA(), cfg.StartURL),
		)
		h.renderPage(w, r, cfg, body...)
	}
}

// jurisdictionHandler builds the landing page handler for England or Wales.
func (h *Handler) jurisdictionHandler(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jurisdiction, ok := content.JurisdictionBySlug(slug)
		if !ok {
			h.renderNotFound(w, r)
			return
		}
		pc := h.pageContext(w, r)
		cfg := h.pageConfig(w, r, pc, jurisdiction.Headline, jurisdiction.Slug)
		headings := content.Headings()

		var routes []content.NoticeType
		for _, noticeSlug := range jurisdiction.NoticeSlugs {
			if notice, ok := content.NoticeBySlug(noticeSlug); ok {
				routes = append(routes, notice)
			}
		}

		body := []g.Node{
			components.Hero(content.JurisdictionHero(jurisdiction), cfg.StartURL, routepath.HowItWorks),
		}
		if jurisdiction.ShowCountdown {
			body = append(body, components.ContentSection("", countdownBlock(pc, deadline.SizeMedium)))
		}
		body = append(body,
			components.ContentSection(headings.Notes, components.JurisdictionNotes(jurisdiction.Notes)),
		)
		if len(routes) > 0 {
			body = append(body,
				components.ContentSection(headings.Routes, components.NoticeRouteCards(routes)),
			)
		}
		body = append(body,
			components.LeadCapture(i18n.Leads(pc.loc), jurisdiction.Param),
			components.CTABand(content.ClosingCTA(), cfg.StartURL),
		)
		h.renderPage(w, r, cfg, body...)
	}
}

// handleTerms renders the terms of service.
func (h *Handler) handleTerms(w http.ResponseWriter, r *http.Request) {
	h.renderLegal(w, r, content.TermsPage())
}

// handlePrivacy renders the privacy policy.
func (h *Handler) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	h.renderLegal(w, r, content.PrivacyPage())
}

func (h *Handler) renderLegal(w http.ResponseWriter, r *http.Request, page content.LegalPage) {
	pc := h.pageContext(w, r)
	cfg := h.pageConfig(w, r, pc, page.Title, "")
	h.renderPage(w, r, cfg, components.LegalArticle(page))
}
