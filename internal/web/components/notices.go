package components

import (
	"strconv"

	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NoticeFacts renders the fact box on a notice landing page.
func NoticeFacts(notice content.NoticeType) g.Node {
	return h.Div(
		h.Class("card border border-base-300 bg-base-200/40"),
		h.Div(
			h.Class("card-body"),
			h.P(h.Class("text-xs uppercase tracking-wide text-base-content/50"), g.Text(notice.ActReference)),
			h.Div(
				h.Class("mt-2 grid gap-3 sm:grid-cols-2"),
				g.Group(g.Map(notice.KeyFacts, func(fact content.KeyFact) g.Node {
					return h.Div(
						h.Div(h.Class("text-xs text-base-content/60"), g.Text(fact.Label)),
						h.Div(h.Class("font-semibold"), g.Text(fact.Value)),
					)
				})),
			),
		),
	)
}

// GroundsList renders the possession grounds pleaded on a Section 8 notice.
func GroundsList(grounds []content.Ground) g.Node {
	if len(grounds) == 0 {
		return nil
	}
	return h.Div(
		h.Class("space-y-3"),
		g.Group(g.Map(grounds, func(ground content.Ground) g.Node {
			badge := h.Span(h.Class("badge badge-ghost badge-sm"), g.Text("Discretionary"))
			if ground.Mandatory {
				badge = h.Span(h.Class("badge badge-primary badge-sm"), g.Text("Mandatory"))
			}
			return h.Div(
				h.Class("card border border-base-300"),
				h.Div(
					h.Class("card-body py-4"),
					h.Div(
						h.Class("flex items-center justify-between gap-3"),
						h.H3(
							h.Class("font-semibold"),
							g.Text("Ground "+strconv.Itoa(ground.Number)+": "+ground.Name),
						),
						badge,
					),
					h.P(h.Class("text-sm text-base-content/80"), g.Text(ground.Summary)),
				),
			)
		})),
	)
}

// UseWhenList renders the "this route fits when" bullets.
func UseWhenList(items []string) g.Node {
	return h.Ul(
		h.Class("space-y-2 text-sm"),
		g.Group(g.Map(items, func(item string) g.Node {
			return h.Li(
				h.Class("flex items-start gap-2"),
				Icon(icons.Check),
				h.Span(g.Text(item)),
			)
		})),
	)
}

// PreviewCard shows the completed sample form. When the image fails to
// load, app.js hides it and reveals the fallback block instead.
func PreviewCard(imageURL, alt, caption string) g.Node {
	return h.Div(
		h.Class("card border border-base-300 overflow-hidden w-full max-w-md mx-auto"),
		h.Img(
			h.Src(imageURL),
			h.Alt(alt),
			h.Class("w-full bg-base-200"),
			g.Attr("loading", "lazy"),
			g.Attr("data-preview", "true"),
		),
		h.Div(
			h.Class("hidden flex-col items-center justify-center gap-2 bg-base-200 py-16 text-base-content/60"),
			g.Attr("data-preview-fallback", "true"),
			Icon(icons.Notice),
			h.Span(h.Class("text-sm"), g.Text("Preview coming soon")),
		),
		g.If(caption != "",
			h.Div(
				h.Class("px-4 py-3 text-xs text-base-content/60 border-t border-base-300"),
				g.Text(caption),
			),
		),
	)
}

// PreviewPair renders both completed-form previews side by side.
func PreviewPair(notices []content.NoticeType) g.Node {
	return h.Div(
		h.Class("grid gap-8 md:grid-cols-2"),
		g.Group(g.Map(notices, func(notice content.NoticeType) g.Node {
			return PreviewCard(notice.PreviewImage, notice.PreviewAlt, notice.Section+" on "+notice.FormNo)
		})),
	)
}

// NoticeRouteCards links from a jurisdiction page to its notice routes.
func NoticeRouteCards(notices []content.NoticeType) g.Node {
	if len(notices) == 0 {
		return nil
	}
	return h.Div(
		h.Class("grid gap-6 md:grid-cols-2"),
		g.Group(g.Map(notices, func(notice content.NoticeType) g.Node {
			return h.A(
				h.Href(routepath.Notice(notice.Slug)),
				h.Class("card border border-base-300 hover:border-primary/40 transition-all"),
				h.Div(
					h.Class("card-body"),
					h.Div(h.Class("badge badge-outline"), g.Text(notice.FormNo)),
					h.H3(h.Class("card-title mt-2"), g.Text(notice.Title)),
					h.P(h.Class("text-sm text-base-content/80"), g.Text(notice.Strapline)),
				),
			)
		})),
	)
}

// JurisdictionNotes renders the bullet notes on a jurisdiction page.
func JurisdictionNotes(notes []string) g.Node {
	return h.Ul(
		h.Class("space-y-2 text-sm"),
		g.Group(g.Map(notes, func(note string) g.Node {
			return h.Li(
				h.Class("flex items-start gap-2"),
				Icon(icons.Legislation),
				h.Span(g.Text(note)),
			)
		})),
	)
}
