package web

import (
	"net/http"

	"github.com/noticedesk/noticedesk.uk/internal/platform/branding"
	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/deadline"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
)

// handleHome renders the main landing page.
func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	cfg := h.pageConfig(w, r, pc, branding.Tagline, "")
	headings := content.Headings()

	today, _ := content.CounterByVariant(content.CounterNoticesToday)
	served, _ := content.CounterByVariant(content.CounterLandlordsServed)

	h.renderPage(w, r, cfg,
		components.Hero(content.HomeHero(), cfg.StartURL, routepath.HowItWorks,
			h.proofBadge(r, pc, today),
			countdownBlock(pc, deadline.SizeCompact),
		),
		components.TrustBar(content.Trust()),
		components.ContentSection("", countdownBlock(pc, deadline.SizeBanner)),
		components.StepList(headings.Steps, content.Steps()),
		components.StatBadges(content.Stats(), h.proofBadge(r, pc, served)),
		components.ComparisonTable(headings.Comparison, content.Comparison()),
		components.Testimonials(headings.Testimonials, content.Testimonials()),
		components.FAQAccordion(headings.FAQs, content.FAQs()),
		components.LeadCapture(i18n.Leads(pc.loc), ""),
		components.CTABand(content.ClosingCTA(), cfg.StartURL),
	)
}
