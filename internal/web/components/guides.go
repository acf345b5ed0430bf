package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/web/guides"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const guideDateLayout = "2 January 2006"

// GuideCards renders the guide index grid.
func GuideCards(items []guides.Guide, readLabel string) g.Node {
	return h.Div(
		h.Class("grid gap-6 md:grid-cols-2"),
		g.Group(g.Map(items, func(guide guides.Guide) g.Node {
			return h.Div(
				h.Class("card border border-base-300 hover:border-primary/40 transition-all"),
				h.Div(
					h.Class("card-body"),
					g.If(!guide.Date.IsZero(),
						g.El("time",
							h.Class("text-xs text-base-content/50"),
							g.Attr("datetime", guide.Date.Format("2006-01-02")),
							g.Text(guide.Date.Format(guideDateLayout)),
						),
					),
					h.H3(h.Class("font-semibold text-lg"), g.Text(guide.Title)),
					h.P(h.Class("text-sm text-base-content/70"), g.Text(guide.Description)),
					h.Div(
						h.Class("card-actions mt-3"),
						h.A(
							h.Href(routepath.Guide(guide.Slug)),
							h.Class("btn btn-ghost btn-sm gap-1"),
							g.Text(readLabel),
						),
					),
				),
			)
		})),
	)
}

// GuideArticle renders one guide's markdown body.
func GuideArticle(guide guides.Guide) g.Node {
	return h.Article(
		h.Class("prose prose-sm md:prose-base mx-auto px-4 py-10"),
		h.H1(g.Text(guide.Title)),
		g.If(!guide.Date.IsZero(),
			g.El("time",
				h.Class("text-sm text-base-content/50"),
				g.Attr("datetime", guide.Date.Format("2006-01-02")),
				g.Text(guide.Date.Format(guideDateLayout)),
			),
		),
		h.Div(g.Raw(guide.HTML)),
	)
}
