package web

import (
	"net/http"
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/deadline"
	"github.com/noticedesk/noticedesk.uk/internal/web/htmx"
	apperrors "github.com/noticedesk/noticedesk.uk/internal/web/platform/errors"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/render"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	"github.com/noticedesk/noticedesk.uk/internal/web/socialproof"
	g "maragu.dev/gomponents"
)

// handleProofCounter serves the badge fragment for one counter variant. The
// poller on the page swaps itself with this response every minute.
func (h *Handler) handleProofCounter(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	variant := strings.Trim(strings.TrimPrefix(r.URL.Path, routepath.ProofCounterPrefix), "/")
	counter, ok := content.CounterByVariant(variant)
	if !ok {
		h.renderError(w, r, pc, apperrors.E(apperrors.KindNotFound, "no counter variant "+variant))
		return
	}
	htmx.RenderFragment(w, r, render.Component(h.proofBadge(r, pc, counter)))
}

// handleDeadlineCountdown serves the countdown block sized by the size query
// parameter. Each poll replaces the block on the page in place.
func (h *Handler) handleDeadlineCountdown(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	size := deadline.ParseSize(r.URL.Query().Get("size"))
	htmx.RenderFragment(w, r, render.Component(countdownBlock(pc, size)))
}

// proofBadge builds the live badge for one counter variant wrapped in its
// refresh poller.
func (h *Handler) proofBadge(r *http.Request, pc pageContext, counter content.Counter) g.Node {
	value := h.counters.Value(httpx.RequestContext(r), socialproof.Config{
		Variant:     counter.Variant,
		Base:        counter.Base,
		DailyGrowth: counter.DailyGrowth,
	})
	return components.ProofPoller(counter.Variant,
		components.ProofBadge(value, counter.Label, i18n.Proof(pc.loc), allowMotion(r)),
	)
}

// countdownBlock builds the countdown for one size wrapped in its poller.
func countdownBlock(pc pageContext, size deadline.Size) g.Node {
	return components.CountdownPoller(size, deadline.Remaining(nowFunc()), i18n.Deadline(pc.loc), startWizardURL(""))
}

// allowMotion reports whether the count-up animation should run. Browsers
// sending the reduced-motion client hint opt out.
func allowMotion(r *http.Request) bool {
	return !strings.Contains(strings.ToLower(r.Header.Get("Sec-CH-Prefers-Reduced-Motion")), "reduce")
}
