package components

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	countUpDurationMillis = 1200
	countUpSteps          = 28
)

// ProofPoller wraps a proof badge in its htmx refresh attributes so the
// value creeps up while a visitor lingers on the page.
func ProofPoller(variant string, inner g.Node) g.Node {
	return h.Div(
		g.Attr("data-proof", variant),
		g.Attr("hx-get", routepath.ProofCounter(variant)),
		g.Attr("hx-trigger", "every 60s"),
		g.Attr("hx-swap", "outerHTML"),
		inner,
	)
}

// ProofBadge renders the live counter value with its label. The count-up
// data attributes are omitted when the visitor prefers reduced motion so
// the final value renders with no animation.
func ProofBadge(value int, label string, copy i18n.ProofCopy, animate bool) g.Node {
	if label == "" {
		label = copy.Suffix
	}
	numberAttrs := []g.Node{
		h.Class("font-extrabold text-primary tabular-nums"),
	}
	if animate {
		numberAttrs = append(numberAttrs,
			g.Attr("data-countup", strconv.Itoa(value)),
			g.Attr("data-countup-duration", strconv.Itoa(countUpDurationMillis)),
			g.Attr("data-countup-steps", strconv.Itoa(countUpSteps)),
		)
	}
	return h.Div(
		h.Class("inline-flex items-center gap-2 rounded-full border border-base-300 bg-base-100 px-4 py-2 text-sm shadow-sm"),
		h.Aria("label", copy.Aria),
		g.Attr("aria-live", "polite"),
		Icon(icons.Landlords),
		h.Span(append(numberAttrs, g.Text(humanize.Comma(int64(value))))...),
		h.Span(h.Class("text-base-content/70"), g.Text(label)),
	)
}
