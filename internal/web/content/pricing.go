package content

// Plan is one pricing card. Prices are one-off, not subscriptions.
type Plan struct {
	ID        string
	Name      string
	Price     string
	Suffix    string
	Tagline   string
	Features  []string
	Highlight bool
	CTA       string
}

var plans = []Plan{
	{
		ID:      "notice",
		Name:    "Notice Only",
		Price:   "£39",
		Suffix:  "one-off",
		Tagline: "The completed form, checked and ready to serve.",
		Features: []string{
			"Completed Form 3 or Form 6A",
			"Full statutory grounds wording",
			"Compliance checks before download",
			"PDF download, reusable for 7 days",
		},
		CTA: "Start my notice",
	},
	{
		ID:      "notice-plus",
		Name:    "Notice + Proof Pack",
		Price:   "£69",
		Suffix:  "one-off",
		Tagline: "Everything in Notice Only, plus what the court asks for next.",
		Features: []string{
			"Everything in Notice Only",
			"Step-by-step service instructions",
			"Certificate of service template",
			"Rent arrears schedule template",
			"Covering letter to the tenant",
		},
		Highlight: true,
		CTA:       "Start my notice",
	},
	{
		ID:      "possession",
		Name:    "Complete Possession Pack",
		Price:   "£129",
		Suffix:  "one-off",
		Tagline: "For landlords ready to go all the way to court.",
		Features: []string{
			"Everything in Notice + Proof Pack",
			"Draft possession claim particulars",
			"Hearing preparation checklist",
			"Priority email support",
		},
		CTA: "Start my notice",
	},
}

// Plans returns the pricing cards in display order.
func Plans() []Plan {
	result := make([]Plan, len(plans))
	copy(result, plans)
	return result
}
