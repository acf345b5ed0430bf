package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ErrorContent renders the branded error state shown for 404s and server
// failures, as a fragment or inside the full layout.
func ErrorContent(title, body, homeLabel string) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-24 text-center"),
		IconBadge(icons.Warning, "warning"),
		h.H1(h.Class("mt-4 text-3xl font-bold"), g.Text(title)),
		h.P(h.Class("mt-3 mx-auto max-w-md text-base-content/70"), g.Text(body)),
		h.Div(
			h.Class("mt-8"),
			h.A(h.Href(routepath.Root), h.Class("btn btn-primary"), g.Text(homeLabel)),
		),
	)
}
