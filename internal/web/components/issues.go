package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Link is a labelled URL.
type Link struct {
	Href  string
	Label string
}

// IssueView is one validation issue prepared for display. FixURL points
// back into the wizard at the affected question; Alternates are secondary
// questions that can also resolve the issue.
type IssueView struct {
	Title      string
	Hint       string
	Reason     string
	Blocking   bool
	FixURL     string
	FixLabel   string
	Alternates []Link
}

// IssueList renders validation issues as expandable rows, blocking issues
// first.
func IssueList(issues []IssueView, copy i18n.ResumeCopy) g.Node {
	return h.Div(
		h.Class("space-y-3"),
		g.Group(g.Map(issues, func(issue IssueView) g.Node {
			return issueRow(issue, copy)
		})),
	)
}

func issueRow(issue IssueView, copy i18n.ResumeCopy) g.Node {
	badge := h.Span(h.Class("badge badge-warning badge-sm"), g.Text("Warning"))
	icon := Icon(icons.Warning)
	if issue.Blocking {
		badge = h.Span(h.Class("badge badge-error badge-sm"), g.Text("Blocking"))
	}
	return h.Details(
		h.Class("collapse collapse-arrow border border-base-300 bg-base-100"),
		h.Summary(
			h.Class("collapse-title cursor-pointer"),
			h.Div(
				h.Class("flex items-center gap-3"),
				icon,
				h.Span(h.Class("font-medium flex-1"), g.Text(issue.Title)),
				badge,
			),
		),
		h.Div(
			h.Class("collapse-content space-y-3 text-sm"),
			g.If(issue.Hint != "",
				h.P(h.Class("text-base-content/80"), g.Text(issue.Hint)),
			),
			g.If(issue.Reason != "",
				h.Div(
					h.Class("rounded-box bg-base-200/60 px-4 py-3"),
					h.P(h.Class("text-xs uppercase tracking-wide text-base-content/50"), g.Text(copy.LegalReasonLabel)),
					h.P(h.Class("mt-1 text-base-content/80"), g.Text(issue.Reason)),
				),
			),
			g.If(issue.FixURL != "",
				h.Div(
					h.Class("flex flex-wrap items-center gap-2"),
					h.A(
						h.Href(issue.FixURL),
						h.Class("btn btn-primary btn-sm gap-1"),
						g.Attr("hx-boost", "false"),
						g.Text(issue.FixLabel),
						Icon(icons.Forward),
					),
					g.Group(g.Map(issue.Alternates, func(alt Link) g.Node {
						return h.A(
							h.Href(alt.Href),
							h.Class("btn btn-ghost btn-sm"),
							g.Attr("hx-boost", "false"),
							g.Text(alt.Label),
						)
					})),
				),
			),
		),
	)
}

// ResumeReady renders the "no issues, ready to download" state.
func ResumeReady(copy i18n.ResumeCopy, continueURL string) g.Node {
	return h.Div(
		h.Class("card border border-success/40 bg-success/5"),
		h.Div(
			h.Class("card-body items-center text-center"),
			IconBadge(icons.Check, "success"),
			h.H2(h.Class("mt-2 text-xl font-bold"), g.Text(copy.ReadyHeading)),
			h.Div(
				h.Class("card-actions mt-4"),
				h.A(
					h.Href(continueURL),
					h.Class("btn btn-success gap-1"),
					g.Attr("hx-boost", "false"),
					Icon(icons.Download),
					g.Text(copy.Continue),
				),
			),
		),
	)
}

// ResumeUnavailable renders the case-not-found or backend-down state.
func ResumeUnavailable(message string, copy i18n.ResumeCopy, startURL string) g.Node {
	return h.Div(
		h.Class("card border border-base-300"),
		h.Div(
			h.Class("card-body items-center text-center"),
			IconBadge(icons.Warning, "warning"),
			h.P(h.Class("mt-2 text-base-content/80"), g.Text(message)),
			h.Div(
				h.Class("card-actions mt-4"),
				h.A(
					h.Href(startURL),
					h.Class("btn btn-primary"),
					g.Attr("hx-boost", "false"),
					g.Text(copy.StartOver),
				),
			),
		),
	)
}
