package content

import "strings"

// Jurisdiction is the landing-page data for England or Wales. The Section 21
// abolition countdown only applies to England, so Wales leaves ShowCountdown
// unset.
type Jurisdiction struct {
	Slug          string
	Name          string
	Param         string
	Headline      string
	Summary       string
	Notes         []string
	NoticeSlugs   []string
	OffersWelsh   bool
	ShowCountdown bool
}

// JurisdictionHero builds the hero block for one jurisdiction landing page.
func JurisdictionHero(jurisdiction Jurisdiction) Hero {
	return Hero{
		Eyebrow:      "Landlords in " + jurisdiction.Name,
		Title:        jurisdiction.Headline,
		Lede:         jurisdiction.Summary,
		PrimaryCTA:   "Start my notice",
		SecondaryCTA: "See how it works",
	}
}

var jurisdictions = []Jurisdiction{
	{
		Slug:     "england",
		Name:     "England",
		Param:    JurisdictionEngland,
		Headline: "Eviction notices for properties in England",
		Summary:  "Assured shorthold tenancies in England use the Housing Act 1988 routes. Section 8 on Form 3 for fault-based possession, Section 21 on Form 6A for no-fault possession.",
		Notes: []string{
			"Form 3 and Form 6A are prescribed for properties in England only",
			"Section 8 arrears notices give two weeks, Section 21 gives two months",
			"A Section 21 notice stays usable for six months from service",
			"Many landlords serve Section 8 and Section 21 in parallel",
		},
		NoticeSlugs:   []string{"section-8", "section-21"},
		ShowCountdown: true,
	},
	{
		Slug:     "wales",
		Name:     "Wales",
		Param:    JurisdictionWales,
		Headline: "Possession notices for properties in Wales",
		Summary:  "Since 1 December 2022 tenancies in Wales are occupation contracts under the Renting Homes (Wales) Act 2016. The English Section 8 and Section 21 forms do not apply; Wales has its own notices with different periods.",
		Notes: []string{
			"The no-fault route is a section 173 notice with six months' notice",
			"Serious rent arrears has its own possession route with a one-month notice",
			"Converted tenancies keep some transitional rules, the questions handle them",
			"Mae'r daith ar gael yn Gymraeg. The whole flow is available in Welsh.",
		},
		NoticeSlugs: nil,
		OffersWelsh: true,
	},
}

// Jurisdictions returns England and Wales in display order.
func Jurisdictions() []Jurisdiction {
	result := make([]Jurisdiction, len(jurisdictions))
	copy(result, jurisdictions)
	return result
}

// JurisdictionBySlug returns the landing-page data for one jurisdiction.
func JurisdictionBySlug(slug string) (Jurisdiction, bool) {
	slug = strings.TrimSpace(slug)
	for _, jurisdiction := range jurisdictions {
		if jurisdiction.Slug == slug {
			return jurisdiction, true
		}
	}
	return Jurisdiction{}, false
}
