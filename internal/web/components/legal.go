package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LegalArticle renders a terms or privacy page from its catalog entry.
func LegalArticle(page content.LegalPage) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12 max-w-3xl"),
		h.H1(h.Class("text-3xl font-extrabold tracking-tight"), g.Text(page.Title)),
		h.P(h.Class("mt-2 text-sm text-base-content/60"), g.Text(page.Updated)),
		g.Group(g.Map(page.Sections, func(section content.LegalSection) g.Node {
			return h.Div(
				h.Class("mt-8"),
				h.H2(h.Class("text-xl font-bold"), g.Text(section.Heading)),
				g.Group(g.Map(section.Body, func(paragraph string) g.Node {
					return h.P(
						h.Class("mt-3 text-sm leading-relaxed text-base-content/80"),
						g.Text(paragraph),
					)
				})),
			)
		})),
	)
}
