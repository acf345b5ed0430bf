package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// PricingCards renders the one-off plan cards.
func PricingCards(plans []content.Plan, startURL string) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12"),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-3 items-stretch"),
			g.Group(g.Map(plans, func(plan content.Plan) g.Node {
				cardClass := "card border border-base-300 h-full"
				if plan.Highlight {
					cardClass = "card border-2 border-primary shadow-xl shadow-primary/10 h-full"
				}
				return h.Div(
					h.Class(cardClass),
					h.Div(
						h.Class("card-body"),
						g.If(plan.Highlight,
							h.Span(h.Class("badge badge-primary badge-sm self-start"), g.Text("Most popular")),
						),
						h.H3(h.Class("font-semibold text-lg"), g.Text(plan.Name)),
						h.Div(
							h.Class("flex items-baseline gap-1.5"),
							h.Span(h.Class("text-4xl font-extrabold"), g.Text(plan.Price)),
							h.Span(h.Class("text-sm text-base-content/60"), g.Text(plan.Suffix)),
						),
						h.P(h.Class("text-sm text-base-content/70"), g.Text(plan.Tagline)),
						h.Ul(
							h.Class("mt-4 space-y-2 text-sm flex-1"),
							g.Group(g.Map(plan.Features, func(feature string) g.Node {
								return h.Li(
									h.Class("flex items-start gap-2"),
									Icon(icons.Check),
									h.Span(g.Text(feature)),
								)
							})),
						),
						h.Div(
							h.Class("card-actions mt-6"),
							h.A(
								h.Href(startURL),
								h.Class(buttonClass(plan.Highlight)),
								g.Attr("hx-boost", "false"),
								g.Text(plan.CTA),
							),
						),
					),
				)
			})),
		),
	)
}

func buttonClass(highlight bool) string {
	if highlight {
		return "btn btn-primary btn-block"
	}
	return "btn btn-outline btn-block"
}
