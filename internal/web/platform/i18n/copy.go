package i18n

import (
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/platform/branding"
)

// SiteCopy holds localized chrome copy shared across pages.
type SiteCopy struct {
	MetaDescription string

	NavHowItWorks   string
	NavPricing      string
	NavSection8     string
	NavSection21    string
	NavGuides       string
	NavContinueCase string
	NavSignOut      string

	FooterDisclaimer string
	FooterRights     string
	FooterContact    string
	FooterTerms      string
	FooterPrivacy    string

	ActionStartNotice string
	ActionResumeCase  string
	ActionReadGuide   string
	ActionGetStarted  string
	ActionFixAnswer   string
	ActionSeePricing  string
}

// ErrorCopy holds localized error page copy.
type ErrorCopy struct {
	NotFoundTitle string
	NotFoundBody  string
	ServerTitle   string
	ServerBody    string
	BackHome      string
}

// DeadlineCopy holds localized countdown labels.
type DeadlineCopy struct {
	Heading    string
	Subheading string
	Days       string
	Hours      string
	Minutes    string
	Seconds    string
	Terminal   string
	BannerCTA  string
	Aria       string
}

// ProofCopy holds localized social proof labels.
type ProofCopy struct {
	Suffix  string
	Aria    string
	Trusted string
}

// LeadsCopy holds localized lead capture form copy.
type LeadsCopy struct {
	Heading          string
	Subheading       string
	EmailLabel       string
	EmailPlaceholder string
	Subscribe        string
	Subscribed       string
}

// ResumeCopy holds localized resume page copy.
type ResumeCopy struct {
	Heading          string
	ReadyHeading     string
	IssuesHeading    string
	IssuesIntro      string
	Expired          string
	Continue         string
	StartOver        string
	LegalReasonLabel string
}

// Site builds SiteCopy for the given localizer.
func Site(loc Localizer) SiteCopy {
	return SiteCopy{
		MetaDescription: localizeWithFallback(loc, "meta.description", branding.Tagline),

		NavHowItWorks:   localizeWithFallback(loc, "nav.how_it_works", "How it works"),
		NavPricing:      localizeWithFallback(loc, "nav.pricing", "Pricing"),
		NavSection8:     localizeWithFallback(loc, "nav.section_8", "Section 8"),
		NavSection21:    localizeWithFallback(loc, "nav.section_21", "Section 21"),
		NavGuides:       localizeWithFallback(loc, "nav.guides", "Guides"),
		NavContinueCase: localizeWithFallback(loc, "nav.continue_case", "Continue your case"),
		NavSignOut:      localizeWithFallback(loc, "nav.sign_out", "Sign out"),

		FooterDisclaimer: localizeWithFallback(loc, "footer.disclaimer", "Not a law firm. Document preparation only."),
		FooterRights:     localizeWithFallback(loc, "footer.rights", "All rights reserved."),
		FooterContact:    localizeWithFallback(loc, "footer.contact", "Contact"),
		FooterTerms:      localizeWithFallback(loc, "footer.terms", "Terms"),
		FooterPrivacy:    localizeWithFallback(loc, "footer.privacy", "Privacy"),

		ActionStartNotice: localizeWithFallback(loc, "action.start_notice", "Start my notice"),
		ActionResumeCase:  localizeWithFallback(loc, "action.resume_case", "Resume my case"),
		ActionReadGuide:   localizeWithFallback(loc, "action.read_guide", "Read the guide"),
		ActionGetStarted:  localizeWithFallback(loc, "action.get_started", "Get started"),
		ActionFixAnswer:   localizeWithFallback(loc, "action.fix_answer", "Fix this answer"),
		ActionSeePricing:  localizeWithFallback(loc, "action.see_pricing", "See pricing"),
	}
}

// Errors builds ErrorCopy for the given localizer.
func Errors(loc Localizer) ErrorCopy {
	return ErrorCopy{
		NotFoundTitle: localizeWithFallback(loc, "error.not_found_title", "Page not found"),
		NotFoundBody:  localizeWithFallback(loc, "error.not_found_body", "The page you are looking for does not exist or has moved."),
		ServerTitle:   localizeWithFallback(loc, "error.server_title", "Something went wrong"),
		ServerBody:    localizeWithFallback(loc, "error.server_body", "We hit an unexpected problem. Please try again in a moment."),
		BackHome:      localizeWithFallback(loc, "error.back_home", "Back to the homepage"),
	}
}

// Deadline builds DeadlineCopy for the given localizer.
func Deadline(loc Localizer) DeadlineCopy {
	return DeadlineCopy{
		Heading:    localizeWithFallback(loc, "deadline.heading", "Section 21 is being abolished"),
		Subheading: localizeWithFallback(loc, "deadline.subheading", "Serve your no-fault notice before the Renters' Rights Act deadline."),
		Days:       localizeWithFallback(loc, "deadline.days", "days"),
		Hours:      localizeWithFallback(loc, "deadline.hours", "hours"),
		Minutes:    localizeWithFallback(loc, "deadline.minutes", "minutes"),
		Seconds:    localizeWithFallback(loc, "deadline.seconds", "seconds"),
		Terminal:   localizeWithFallback(loc, "deadline.terminal", "The Section 21 abolition deadline has passed."),
		BannerCTA:  localizeWithFallback(loc, "deadline.banner_cta", "Start before the deadline"),
		Aria:       localizeWithFallback(loc, "deadline.aria", "Time remaining until the Section 21 abolition deadline"),
	}
}

// Proof builds ProofCopy for the given localizer.
func Proof(loc Localizer) ProofCopy {
	return ProofCopy{
		Suffix:  localizeWithFallback(loc, "proof.suffix", "landlords helped this month"),
		Aria:    localizeWithFallback(loc, "proof.aria", "Number of landlords helped this month"),
		Trusted: localizeWithFallback(loc, "proof.trusted", "Trusted by landlords across England and Wales"),
	}
}

// Leads builds LeadsCopy for the given localizer.
func Leads(loc Localizer) LeadsCopy {
	return LeadsCopy{
		Heading:          localizeWithFallback(loc, "leads.heading", "Not ready to serve yet?"),
		Subheading:       localizeWithFallback(loc, "leads.subheading", "Get a free checklist of what landlords get wrong before court."),
		EmailLabel:       localizeWithFallback(loc, "leads.email_label", "Email address"),
		EmailPlaceholder: localizeWithFallback(loc, "leads.email_placeholder", "you@example.co.uk"),
		Subscribe:        localizeWithFallback(loc, "leads.subscribe", "Send me the checklist"),
		Subscribed:       localizeWithFallback(loc, "leads.notice_subscribed", "Check your inbox. The checklist is on its way."),
	}
}

// Resume builds ResumeCopy for the given localizer.
func Resume(loc Localizer) ResumeCopy {
	return ResumeCopy{
		Heading:          localizeWithFallback(loc, "resume.heading", "Welcome back"),
		ReadyHeading:     localizeWithFallback(loc, "resume.ready_heading", "Your notice is ready to finish"),
		IssuesHeading:    localizeWithFallback(loc, "resume.issues_heading", "A few answers need attention"),
		IssuesIntro:      localizeWithFallback(loc, "resume.issues_intro", "Fix these before your notice can be generated."),
		Expired:          localizeWithFallback(loc, "resume.expired", "We could not find that case. It may have expired."),
		Continue:         localizeWithFallback(loc, "resume.continue", "Continue where I left off"),
		StartOver:        localizeWithFallback(loc, "resume.start_over", "Start a new notice"),
		LegalReasonLabel: localizeWithFallback(loc, "resume.legal_reason_label", "Why this matters"),
	}
}

// PageTitle appends the product name to a page heading.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

func localizeWithFallback(loc Localizer, key string, fallback string) string {
	value := T(loc, key)
	if strings.TrimSpace(value) == "" || value == key {
		return fallback
	}
	return value
}
