// Package content is the single copy and configuration catalog for the
// marketing pages. Components stay generic; everything product-specific
// (plans, FAQs, testimonials, notice facts, jurisdiction data) lives here
// as plain data.
package content

import "github.com/noticedesk/noticedesk.uk/internal/platform/icons"

// Hero is the above-the-fold block on a landing page.
type Hero struct {
	Eyebrow      string
	Title        string
	Lede         string
	PrimaryCTA   string
	SecondaryCTA string
}

// TrustItem is one entry in the trust bar under the hero.
type TrustItem struct {
	Icon  icons.ID
	Label string
}

// Stat is a static stat badge. Live counters are defined in counters.go.
type Stat struct {
	Value string
	Label string
}

// Step is one entry in the "how it works" list.
type Step struct {
	Icon  icons.ID
	Title string
	Body  string
}

// Testimonial is a customer quote card.
type Testimonial struct {
	Quote    string
	Name     string
	Detail   string
	Location string
}

// FAQ is one accordion entry.
type FAQ struct {
	Question string
	Answer   string
}

// ComparisonRow is one line of the cost-comparison table.
type ComparisonRow struct {
	Label     string
	Us        string
	Solicitor string
	DIY       string
}

// CTA is the closing call-to-action band.
type CTA struct {
	Title  string
	Body   string
	Button string
}

// HomeHero is the home page hero block.
func HomeHero() Hero {
	return Hero{
		Eyebrow:      "Section 8 and Section 21 notices for England & Wales",
		Title:        "Serve a court-ready eviction notice without the solicitor bill",
		Lede:         "Answer guided questions about your tenancy and download a completed Form 3 or Form 6A in about ten minutes, checked against the current rules before you serve it.",
		PrimaryCTA:   "Start my notice",
		SecondaryCTA: "See how it works",
	}
}

// Trust returns the trust bar entries.
func Trust() []TrustItem {
	return []TrustItem{
		{Icon: icons.Shield, Label: "Prescribed forms, current revision"},
		{Icon: icons.Deadline, Label: "Ready in about ten minutes"},
		{Icon: icons.Court, Label: "Grounds wording straight from Schedule 2"},
		{Icon: icons.Arrears, Label: "A fraction of high-street fees"},
	}
}

// Stats returns the static stat badges shown alongside the live counter.
func Stats() []Stat {
	return []Stat{
		{Value: "10 min", Label: "average time to a finished notice"},
		{Value: "4.8/5", Label: "average landlord rating"},
		{Value: "2", Label: "notice routes covered, Section 8 and Section 21"},
	}
}

// Steps returns the "how it works" walkthrough.
func Steps() []Step {
	return []Step{
		{
			Icon:  icons.Question,
			Title: "Answer guided questions",
			Body:  "Tell us about the tenancy, the property and the arrears. Plain-English questions, no legal jargon.",
		},
		{
			Icon:  icons.Check,
			Title: "We run the compliance checks",
			Body:  "Deposit protection, notice dates, grounds thresholds. Anything that would invalidate the notice is flagged before you pay.",
		},
		{
			Icon:  icons.Download,
			Title: "Download your completed notice",
			Body:  "A finished Form 3 or Form 6A with every field filled in and the grounds set out in full.",
		},
		{
			Icon:  icons.Mail,
			Title: "Serve it with confidence",
			Body:  "Step-by-step service instructions and a certificate of service so your proof holds up in court.",
		},
	}
}

// Testimonials returns the quote cards.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Quote:    "The Section 8 notice was ready in ten minutes and the grounds wording was exactly what the court expected. The judge had no questions.",
			Name:     "Margaret H.",
			Detail:   "Landlord, 3 properties",
			Location: "Leeds",
		},
		{
			Quote:    "My letting agent quoted £180 plus VAT for a Section 21. This did the same Form 6A, caught a deposit problem first, and cost a fraction of that.",
			Name:     "Dev P.",
			Detail:   "First-time landlord",
			Location: "Cardiff",
		},
		{
			Quote:    "I had served an invalid notice myself and lost two months. The compliance checks alone are worth it.",
			Name:     "Susan W.",
			Detail:   "Landlord, 1 property",
			Location: "Manchester",
		},
	}
}

// Comparison returns the cost-comparison table rows.
func Comparison() []ComparisonRow {
	return []ComparisonRow{
		{Label: "Cost per notice", Us: "From £39", Solicitor: "£150 to £300", DIY: "Free"},
		{Label: "Prescribed form, current revision", Us: "Always", Solicitor: "Yes", DIY: "Easy to get wrong"},
		{Label: "Compliance checks before serving", Us: "Automatic", Solicitor: "Yes", DIY: "None"},
		{Label: "Grounds wording from Schedule 2", Us: "Included in full", Solicitor: "Yes", DIY: "Often missing"},
		{Label: "Time to a finished notice", Us: "About 10 minutes", Solicitor: "Days", DIY: "Hours of research"},
		{Label: "Service instructions and proof", Us: "Included", Solicitor: "Sometimes", DIY: "No"},
	}
}

// FAQs returns the accordion entries.
func FAQs() []FAQ {
	return []FAQ{
		{
			Question: "Which notice do I need, Section 8 or Section 21?",
			Answer:   "Section 8 is for when the tenant has broken the agreement, most commonly two or more months of rent arrears, and gives two weeks' notice on Form 3. Section 21 is the no-fault route on Form 6A with two months' notice. Our guided questions point you to the right one, and many landlords serve both in parallel.",
		},
		{
			Question: "Is the notice really court-ready?",
			Answer:   "Yes. We complete the prescribed form in its current revision, set out the full statutory wording for each ground relied on, and run the compliance checks that most commonly get notices struck out. You review everything before you download.",
		},
		{
			Question: "What happens after I serve the notice?",
			Answer:   "You wait out the notice period, two weeks for a Section 8 rent-arrears notice or two months for a Section 21. If the tenant has not left or paid, you apply to court for possession. Your download pack includes what to keep as evidence for that stage.",
		},
		{
			Question: "Do you cover Wales?",
			Answer:   "Yes. Wales has used its own notices under the Renting Homes (Wales) Act 2016 since December 2022, so the forms and notice periods differ from England. Choose Wales at the start and the questions and documents adjust to the Welsh rules.",
		},
		{
			Question: "What if my tenant pays off some of the arrears?",
			Answer:   "Ground 8 needs two months of arrears both when you serve and at the hearing, which is why we also plead the discretionary grounds 10 and 11 on every arrears notice. Partial payment weakens the mandatory ground but does not kill the claim.",
		},
		{
			Question: "Is this legal advice?",
			Answer:   "No. NoticeDesk prepares the prescribed forms from the answers you give and flags common compliance problems. It is not a law firm and does not provide legal advice. For a dispute that is already in court, speak to a solicitor.",
		},
		{
			Question: "What changes on 1 May 2026?",
			Answer:   "The tenancy reforms in the Renters' Rights Act are due to commence, and Section 21 no-fault notices are expected to be abolished for existing tenancies from that date. Notices validly served before commencement stay effective, which is why the countdown matters if you plan to use the Section 21 route.",
		},
	}
}

// ClosingCTA returns the call-to-action band at the foot of each landing page.
func ClosingCTA() CTA {
	return CTA{
		Title:  "Your notice, done properly, tonight",
		Body:   "Start the guided questions now. You only pay when your notice passes the compliance checks and is ready to download.",
		Button: "Start my notice",
	}
}

// SectionHeadings is the h2 copy over the shared landing sections.
type SectionHeadings struct {
	Steps        string
	Comparison   string
	Testimonials string
	FAQs         string
	Facts        string
	Grounds      string
	UseWhen      string
	Preview      string
	Routes       string
	Notes        string
}

// Headings returns the section headings shared across the landing pages.
func Headings() SectionHeadings {
	return SectionHeadings{
		Steps:        "How it works",
		Comparison:   "What it costs, compared",
		Testimonials: "Landlords who used NoticeDesk",
		FAQs:         "Questions landlords ask",
		Facts:        "At a glance",
		Grounds:      "The grounds we plead",
		UseWhen:      "This route fits when",
		Preview:      "What your notice looks like",
		Routes:       "Pick your route",
		Notes:        "The rules in brief",
	}
}

// Intro is the heading block on a secondary page.
type Intro struct {
	Title string
	Lede  string
}

// PricingIntro returns the pricing page header copy.
func PricingIntro() Intro {
	return Intro{
		Title: "Simple one-off pricing",
		Lede:  "No subscription and no hidden extras. You pay once, when your notice has passed the checks and is ready to download.",
	}
}

// HowItWorksIntro returns the how-it-works page header copy.
func HowItWorksIntro() Intro {
	return Intro{
		Title: "From first question to served notice",
		Lede:  "Four steps and about ten minutes. Here is what happens between starting the questions and holding a court-ready notice.",
	}
}

// GuidesIntro returns the guides index header copy.
func GuidesIntro() Intro {
	return Intro{
		Title: "Landlord guides",
		Lede:  "Plain-English explanations of the possession process, written for landlords and kept current as the rules change.",
	}
}
