package content

import "strings"

// Wizard query parameter values shared by every start-wizard link.
const (
	CaseTypeEviction    = "eviction"
	ProductNoticeOnly   = "notice_only"
	JurisdictionEngland = "england"
	JurisdictionWales   = "wales"
)

// Ground is one possession ground pleaded on a Section 8 notice.
type Ground struct {
	Number    int
	Name      string
	Summary   string
	Mandatory bool
}

// KeyFact is one label/value pair in a notice fact box.
type KeyFact struct {
	Label string
	Value string
}

// NoticeType is the landing-page data for one notice route. ShowCountdown
// puts the abolition countdown on the page for the route that is going away.
type NoticeType struct {
	Slug          string
	Section       string
	FormNo        string
	ActReference  string
	Title         string
	Strapline     string
	NoticePeriod  string
	Grounds       []Ground
	UseWhen       []string
	KeyFacts      []KeyFact
	PreviewImage  string
	PreviewAlt    string
	ShowCountdown bool
}

// NoticeHero builds the hero block for one notice landing page.
func NoticeHero(notice NoticeType) Hero {
	return Hero{
		Eyebrow:      notice.Section + " on " + notice.FormNo,
		Title:        notice.Title,
		Lede:         notice.Strapline,
		PrimaryCTA:   "Start my " + notice.Section + " notice",
		SecondaryCTA: "See how it works",
	}
}

// SamplePreview captions the completed-form preview cards. The details
// match the sample fixture notices shown in the screenshots.
type SamplePreview struct {
	LandlordName    string
	TenantName      string
	PropertyAddress string
	MonthlyRent     string
	ArrearsTotal    string
}

var samplePreview = SamplePreview{
	LandlordName:    "Tariq Mohammed",
	TenantName:      "Sonia Shezadi",
	PropertyAddress: "35 Woodhall Park Avenue, Pudsey, LS28 7HF",
	MonthlyRent:     "£1,500.00",
	ArrearsTotal:    "£3,000.00",
}

// Sample returns the fixture data behind the notice previews.
func Sample() SamplePreview {
	return samplePreview
}

// PreviewCaption describes the sample fixture under a preview card.
func PreviewCaption() string {
	return "Completed for a sample tenancy at " + samplePreview.PropertyAddress +
		". Your notice is filled from your answers."
}

var noticeTypes = []NoticeType{
	{
		Slug:         "section-8",
		Section:      "Section 8",
		FormNo:       "Form 3",
		ActReference: "Housing Act 1988 section 8 (as amended)",
		Title:        "Section 8 notice for rent arrears",
		Strapline:    "The fault-based route. Two weeks' notice when the tenant owes two months' rent or more.",
		NoticePeriod: "2 weeks",
		Grounds: []Ground{
			{
				Number:    8,
				Name:      "Serious rent arrears",
				Summary:   "At both the date of service and the date of the hearing, at least two months' rent is unpaid (eight weeks' rent where rent is paid weekly or fortnightly). The court must grant possession if this ground is made out.",
				Mandatory: true,
			},
			{
				Number:  10,
				Name:    "Some rent arrears",
				Summary: "Some rent lawfully due from the tenant is unpaid on the date proceedings for possession are begun.",
			},
			{
				Number:  11,
				Name:    "Persistent delay",
				Summary: "Whether or not any rent is in arrears when proceedings begin, the tenant has persistently delayed paying rent which has become lawfully due.",
			},
		},
		UseWhen: []string{
			"The tenant is two months or more behind with the rent",
			"You are still inside the fixed term",
			"You want the arrears on the court record",
		},
		KeyFacts: []KeyFact{
			{Label: "Prescribed form", Value: "Form 3"},
			{Label: "Notice period", Value: "2 weeks for grounds 8, 10 and 11"},
			{Label: "Grounds pleaded", Value: "8, 10 and 11 together"},
			{Label: "Valid for", Value: "12 months from service"},
		},
		PreviewImage: "/static/previews/section-8-form-3.svg",
		PreviewAlt:   "Completed Form 3 Section 8 notice, first page",
	},
	{
		Slug:         "section-21",
		Section:      "Section 21",
		FormNo:       "Form 6A",
		ActReference: "Housing Act 1988 section 21(1) and (4) (as amended)",
		Title:        "Section 21 no-fault notice",
		Strapline:    "The no-fault route. Two months' notice on Form 6A, no reason required.",
		NoticePeriod: "2 months",
		UseWhen: []string{
			"You want the property back without blaming the tenant",
			"The fixed term is ending or the tenancy is periodic",
			"Your deposit and compliance paperwork are in order",
		},
		KeyFacts: []KeyFact{
			{Label: "Prescribed form", Value: "Form 6A"},
			{Label: "Notice period", Value: "2 months"},
			{Label: "Grounds required", Value: "None"},
			{Label: "Valid for", Value: "6 months from service"},
		},
		PreviewImage:  "/static/previews/section-21-form-6a.svg",
		PreviewAlt:    "Completed Form 6A Section 21 notice, first page",
		ShowCountdown: true,
	},
}

// Notices returns the notice routes in display order.
func Notices() []NoticeType {
	result := make([]NoticeType, len(noticeTypes))
	copy(result, noticeTypes)
	return result
}

// NoticeBySlug returns the landing-page data for one notice route.
func NoticeBySlug(slug string) (NoticeType, bool) {
	slug = strings.TrimSpace(slug)
	for _, notice := range noticeTypes {
		if notice.Slug == slug {
			return notice, true
		}
	}
	return NoticeType{}, false
}
