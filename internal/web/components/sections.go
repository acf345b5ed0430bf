package components

import (
	"github.com/noticedesk/noticedesk.uk/internal/platform/icons"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ContentSection wraps an inner block in the standard narrow page section
// with an optional heading.
func ContentSection(heading string, inner ...g.Node) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-10"),
		h.Div(
			h.Class("max-w-3xl mx-auto"),
			g.If(heading != "",
				h.H2(h.Class("text-2xl font-bold mb-6"), g.Text(heading)),
			),
			g.Group(inner),
		),
	)
}

// TrustBar renders the strip of reassurance items under the hero.
func TrustBar(items []content.TrustItem) g.Node {
	return h.Section(
		h.Class("border-y border-base-300 bg-base-200/50"),
		h.Div(
			h.Class("container mx-auto px-4 py-5 flex flex-wrap items-center justify-center gap-x-8 gap-y-3 text-sm"),
			g.Group(g.Map(items, func(item content.TrustItem) g.Node {
				return h.Div(
					h.Class("flex items-center gap-2"),
					Icon(item.Icon),
					h.Span(g.Text(item.Label)),
				)
			})),
		),
	)
}

// StatBadges renders static stat cards, optionally alongside a live counter.
func StatBadges(stats []content.Stat, live ...g.Node) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-10"),
		h.Div(
			h.Class("flex flex-wrap items-stretch justify-center gap-4"),
			g.Group(live),
			g.Group(g.Map(stats, func(stat content.Stat) g.Node {
				return h.Div(
					h.Class("stat bg-base-200/60 rounded-box px-6 py-4 text-center"),
					h.Div(h.Class("stat-value text-2xl"), g.Text(stat.Value)),
					h.Div(h.Class("stat-desc whitespace-normal"), g.Text(stat.Label)),
				)
			})),
		),
	)
}

// StepList renders the "how it works" walkthrough.
func StepList(heading string, steps []content.Step) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12"),
		g.If(heading != "",
			h.H2(h.Class("text-center text-2xl md:text-3xl font-bold mb-8"), g.Text(heading)),
		),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-2 lg:grid-cols-4"),
			g.Group(g.Map(steps, func(step content.Step) g.Node {
				return h.Div(
					h.Class("card border border-base-300 hover:border-primary/40 transition-all"),
					h.Div(
						h.Class("card-body"),
						IconBadge(step.Icon, "primary"),
						h.H3(h.Class("mt-3 font-semibold text-lg"), g.Text(step.Title)),
						h.P(h.Class("text-sm text-base-content/80 leading-relaxed"), g.Text(step.Body)),
					),
				)
			})),
		),
	)
}

// Testimonials renders the quote cards.
func Testimonials(heading string, items []content.Testimonial) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12"),
		g.If(heading != "",
			h.H2(h.Class("text-center text-2xl md:text-3xl font-bold mb-8"), g.Text(heading)),
		),
		h.Div(
			h.Class("grid gap-6 md:grid-cols-3"),
			g.Group(g.Map(items, func(item content.Testimonial) g.Node {
				return h.Div(
					h.Class("card bg-base-200/40 border border-base-300"),
					h.Div(
						h.Class("card-body"),
						h.P(h.Class("text-sm leading-relaxed"), g.Text("“"+item.Quote+"”")),
						h.Div(
							h.Class("mt-4 text-sm"),
							h.Strong(g.Text(item.Name)),
							h.P(h.Class("text-base-content/60"), g.Text(item.Detail+", "+item.Location)),
						),
					),
				)
			})),
		),
	)
}

// FAQAccordion renders expandable question rows.
func FAQAccordion(heading string, faqs []content.FAQ) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12 max-w-3xl"),
		g.If(heading != "",
			h.H2(h.Class("text-center text-2xl md:text-3xl font-bold mb-8"), g.Text(heading)),
		),
		h.Div(
			h.Class("space-y-3"),
			g.Group(g.Map(faqs, func(faq content.FAQ) g.Node {
				return h.Details(
					h.Class("collapse collapse-arrow border border-base-300 bg-base-100"),
					h.Summary(
						h.Class("collapse-title font-medium cursor-pointer"),
						g.Text(faq.Question),
					),
					h.Div(
						h.Class("collapse-content text-sm text-base-content/80 leading-relaxed"),
						h.P(g.Text(faq.Answer)),
					),
				)
			})),
		),
	)
}

// ComparisonTable renders the cost comparison against solicitors and DIY.
func ComparisonTable(heading string, rows []content.ComparisonRow) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12"),
		g.If(heading != "",
			h.H2(h.Class("text-center text-2xl md:text-3xl font-bold mb-8"), g.Text(heading)),
		),
		h.Div(
			h.Class("overflow-x-auto rounded-box border border-base-300"),
			h.Table(
				h.Class("table"),
				h.THead(
					h.Tr(
						h.Th(g.Text("")),
						h.Th(h.Class("text-primary"), g.Text("NoticeDesk")),
						h.Th(g.Text("High-street solicitor")),
						h.Th(g.Text("DIY templates")),
					),
				),
				h.TBody(
					g.Group(g.Map(rows, func(row content.ComparisonRow) g.Node {
						return h.Tr(
							h.Th(h.Class("font-medium"), g.Text(row.Label)),
							h.Td(h.Class("font-semibold"), g.Text(row.Us)),
							h.Td(h.Class("text-base-content/70"), g.Text(row.Solicitor)),
							h.Td(h.Class("text-base-content/70"), g.Text(row.DIY)),
						)
					})),
				),
			),
		),
	)
}

// CTABand renders the closing call-to-action.
func CTABand(cta content.CTA, startURL string) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-14"),
		h.Div(
			h.Class("rounded-box bg-primary text-primary-content px-6 py-12 text-center"),
			h.H2(h.Class("text-2xl md:text-3xl font-bold"), g.Text(cta.Title)),
			h.P(h.Class("mt-3 mx-auto max-w-xl opacity-90"), g.Text(cta.Body)),
			h.Div(
				h.Class("mt-6"),
				h.A(
					h.Href(startURL),
					h.Class("btn btn-lg bg-base-100 text-base-content border-0"),
					g.Attr("hx-boost", "false"),
					g.Text(cta.Button),
				),
			),
		),
	)
}

// LeadCapture renders the deadline-alert email form.
func LeadCapture(copy i18n.LeadsCopy, jurisdiction string) g.Node {
	return h.Section(
		h.Class("container mx-auto px-4 py-12 max-w-xl text-center"),
		IconBadge(icons.Mail, "secondary"),
		h.H2(h.Class("mt-4 text-2xl font-bold"), g.Text(copy.Heading)),
		h.P(h.Class("mt-2 text-base-content/70"), g.Text(copy.Subheading)),
		h.FormEl(
			h.Class("mt-6 flex flex-col sm:flex-row gap-3 justify-center"),
			h.Method("post"),
			h.Action(routepath.Leads),
			g.Attr("hx-boost", "false"),
			g.If(jurisdiction != "",
				h.Input(h.Type("hidden"), h.Name("jurisdiction"), h.Value(jurisdiction)),
			),
			h.LabelEl(h.Class("sr-only"), h.For("lead-email"), g.Text(copy.EmailLabel)),
			h.Input(
				h.ID("lead-email"),
				h.Type("email"),
				h.Name("email"),
				h.Required(),
				h.Placeholder(copy.EmailPlaceholder),
				h.Class("input input-bordered w-full sm:max-w-xs"),
			),
			h.Button(h.Type("submit"), h.Class("btn btn-secondary"), g.Text(copy.Subscribe)),
		),
	)
}
