package components

import (
	"fmt"

	"github.com/noticedesk/noticedesk.uk/internal/web/deadline"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CountdownPoller renders the countdown for one size wrapped in its htmx
// refresh attributes. The fragment endpoint returns this same node so each
// poll replaces the block in place. Polling stops once the deadline passes.
func CountdownPoller(size deadline.Size, b deadline.Breakdown, copy i18n.DeadlineCopy, startURL string) g.Node {
	attrs := []g.Node{
		g.Attr("data-countdown", string(size)),
	}
	if !b.Passed {
		attrs = append(attrs,
			g.Attr("hx-get", routepath.DeadlineCountdown+"?size="+string(size)),
			g.Attr("hx-trigger", "every "+pollEvery(size)),
			g.Attr("hx-swap", "outerHTML"),
		)
	}
	return h.Div(append(attrs, Countdown(size, b, copy, startURL))...)
}

// Countdown renders the remaining-time block for one presentation size.
func Countdown(size deadline.Size, b deadline.Breakdown, copy i18n.DeadlineCopy, startURL string) g.Node {
	if b.Passed {
		return h.Div(
			h.Class("alert alert-warning justify-center text-sm"),
			h.Role("status"),
			g.Text(copy.Terminal),
		)
	}

	switch size {
	case deadline.SizeLarge:
		return h.Div(
			h.Class("text-center"),
			h.Aria("label", copy.Aria),
			h.Role("timer"),
			h.H2(h.Class("text-xl font-bold"), g.Text(copy.Heading)),
			h.P(h.Class("mt-1 text-sm text-base-content/70"), g.Text(copy.Subheading)),
			h.Div(
				h.Class("mt-5 flex items-start justify-center gap-4"),
				countdownCell(b.Days, copy.Days, "text-5xl"),
				countdownCell(b.Hours, copy.Hours, "text-5xl"),
				countdownCell(b.Minutes, copy.Minutes, "text-5xl"),
				countdownCell(b.Seconds, copy.Seconds, "text-5xl"),
			),
		)
	case deadline.SizeMedium:
		return h.Div(
			h.Class("text-center"),
			h.Aria("label", copy.Aria),
			h.Role("timer"),
			h.Div(
				h.Class("flex items-start justify-center gap-3"),
				countdownCell(b.Days, copy.Days, "text-3xl"),
				countdownCell(b.Hours, copy.Hours, "text-3xl"),
				countdownCell(b.Minutes, copy.Minutes, "text-3xl"),
			),
		)
	case deadline.SizeCompact:
		return h.Span(
			h.Class("badge badge-warning gap-1.5 font-semibold"),
			h.Aria("label", copy.Aria),
			h.Role("timer"),
			g.Textf("%dd %02dh %02dm", b.Days, b.Hours, b.Minutes),
		)
	default:
		return h.Div(
			h.Class("bg-warning/15 border border-warning/40 rounded-box px-5 py-4"),
			h.Aria("label", copy.Aria),
			h.Role("timer"),
			h.Div(
				h.Class("flex flex-wrap items-center justify-center gap-x-6 gap-y-3 text-center"),
				h.Div(
					h.Class("text-left"),
					h.P(h.Class("font-bold"), g.Text(copy.Heading)),
					h.P(h.Class("text-sm text-base-content/70"), g.Text(copy.Subheading)),
				),
				h.Div(
					h.Class("flex items-start gap-3"),
					countdownCell(b.Days, copy.Days, "text-2xl"),
					countdownCell(b.Hours, copy.Hours, "text-2xl"),
					countdownCell(b.Minutes, copy.Minutes, "text-2xl"),
				),
				g.If(startURL != "",
					h.A(
						h.Href(startURL),
						h.Class("btn btn-warning btn-sm"),
						g.Attr("hx-boost", "false"),
						g.Text(copy.BannerCTA),
					),
				),
			),
		)
	}
}

func countdownCell(value int, label string, sizeClass string) g.Node {
	return h.Div(
		h.Class("min-w-14"),
		h.Div(h.Class(sizeClass+" font-extrabold tabular-nums"), g.Text(fmt.Sprintf("%02d", value))),
		h.Div(h.Class("text-xs uppercase tracking-wide text-base-content/60"), g.Text(label)),
	)
}

func pollEvery(size deadline.Size) string {
	if size.ShowsSeconds() {
		return "1s"
	}
	return "60s"
}
