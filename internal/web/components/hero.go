package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Hero renders the above-the-fold block. Extras render under the CTA row,
// typically the live proof badge and the compact countdown.
func Hero(hero content.Hero, startURL, secondaryURL string, extras ...g.Node) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 pt-14 pb-10 md:pt-24 md:pb-16 text-center"),
		h.Div(
			h.Class("mx-auto max-w-3xl"),
			g.If(hero.Eyebrow != "",
				h.P(h.Class("badge badge-outline badge-lg mb-4"), g.Text(hero.Eyebrow)),
			),
			h.H1(
				h.Class("text-3xl md:text-5xl font-extrabold tracking-tight leading-tight"),
				g.Text(hero.Title),
			),
			h.P(
				h.Class("mt-5 text-base md:text-lg text-base-content/80"),
				g.Text(hero.Lede),
			),
			h.Div(
				h.Class("mt-8 flex flex-wrap items-center justify-center gap-3"),
				h.A(
					h.Href(startURL),
					h.Class("btn btn-primary btn-lg shadow-lg shadow-primary/20"),
					g.Attr("hx-boost", "false"),
					g.Text(hero.PrimaryCTA),
				),
				g.If(hero.SecondaryCTA != "" && secondaryURL != "",
					h.A(h.Href(secondaryURL), h.Class("btn btn-ghost btn-lg"), g.Text(hero.SecondaryCTA)),
				),
			),
			g.If(len(extras) > 0,
				h.Div(
					h.Class("mt-8 flex flex-wrap items-center justify-center gap-4"),
					g.Group(extras),
				),
			),
		),
	)
}

// PageIntro is the compact header block on secondary pages.
func PageIntro(intro content.Intro) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 pt-12 pb-4 text-center"),
		h.H1(h.Class("text-3xl md:text-4xl font-extrabold tracking-tight"), g.Text(intro.Title)),
		g.If(intro.Lede != "",
			h.P(h.Class("mt-4 mx-auto max-w-2xl text-base-content/80"), g.Text(intro.Lede)),
		),
	)
}
