package web

import (
	"net/http"
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	apperrors "github.com/noticedesk/noticedesk.uk/internal/web/platform/errors"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
)

// handleGuides renders the guide index.
func (h *Handler) handleGuides(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	intro := content.GuidesIntro()
	cfg := h.pageConfig(w, r, pc, intro.Title, "")

	h.renderPage(w, r, cfg,
		components.PageIntro(intro),
		components.GuideCards(h.library.All(), pc.copy.ActionReadGuide),
		components.CTABand(content.ClosingCTA(), cfg.StartURL),
	)
}

// handleGuideArticle renders one guide article by slug.
func (h *Handler) handleGuideArticle(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, routepath.GuidesPrefix), "/")
	guide, ok := h.library.BySlug(slug)
	if !ok {
		h.renderError(w, r, pc, apperrors.E(apperrors.KindNotFound, "no guide "+slug))
		return
	}

	cfg := h.pageConfig(w, r, pc, guide.Title, "")
	h.renderPage(w, r, cfg, components.GuideArticle(guide))
}
