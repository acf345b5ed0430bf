package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Icon renders a sprite glyph for a catalog icon ID.
func Icon(id icons.ID) g.Node {
	return h.SVG(
		h.Class("size-4 shrink-0"),
		h.Aria("label", icons.Label(id)),
		h.Role("img"),
		g.El("use", g.Attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))),
	)
}

// IconBadge renders a glyph inside a tinted circle, used at section heads.
func IconBadge(id icons.ID, tone string) g.Node {
	if tone == "" {
		tone = "primary"
	}
	return h.Span(
		h.Class("inline-flex items-center justify-center rounded-full bg-"+tone+"/10 text-"+tone+" p-2.5"),
		h.SVG(
			h.Class("size-5"),
			h.Aria("label", icons.Label(id)),
			h.Role("img"),
			g.El("use", g.Attr("href", "#"+icons.LucideSymbolID(icons.LucideNameOrDefault(id)))),
		),
	)
}
