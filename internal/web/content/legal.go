package content

// LegalSection is one heading plus its body paragraphs on a legal page.
type LegalSection struct {
	Heading string
	Body    []string
}

// LegalPage is the catalog entry behind the terms and privacy pages.
type LegalPage struct {
	Title    string
	Updated  string
	Sections []LegalSection
}

// TermsPage returns the terms of service copy.
func TermsPage() LegalPage {
	return LegalPage{
		Title:   "Terms of service",
		Updated: "Last updated 12 January 2026",
		Sections: []LegalSection{
			{
				Heading: "What NoticeDesk is",
				Body: []string{
					"NoticeDesk prepares prescribed possession notices for residential landlords in England and Wales from the answers you give in our guided questions. We complete the current revision of the relevant form, set out the statutory grounds wording where grounds apply, and run automated checks for the compliance problems that most commonly invalidate notices.",
					"NoticeDesk is a document preparation service. It is not a law firm, its staff are not solicitors, and nothing on this site or in your documents is legal advice. If your situation is unusual or already before a court, take advice from a solicitor regulated by the Solicitors Regulation Authority.",
				},
			},
			{
				Heading: "Your responsibilities",
				Body: []string{
					"The notices we prepare are only as accurate as the answers you give. You are responsible for answering truthfully and completely, for reviewing the finished document before you serve it, and for serving it in a valid way. Our compliance checks flag common problems; they cannot certify that a notice will succeed in court.",
				},
			},
			{
				Heading: "Payment and refunds",
				Body: []string{
					"All prices are one-off fees, not subscriptions. You pay only when your notice has passed the compliance checks and is ready to download, and the download stays available for seven days after purchase.",
					"If a prepared document contains an error that we introduced, we will correct it or refund the fee. We do not refund fees because a tenant paid their arrears, left before you served the notice, or defended the claim.",
				},
			},
			{
				Heading: "Liability",
				Body: []string{
					"Our total liability to you in connection with any one purchase is limited to the fee you paid for it. We are not liable for losses that flow from inaccurate answers, invalid service of a notice, or changes in the law after your document was prepared. Nothing in these terms limits liability that cannot be limited by law.",
				},
			},
			{
				Heading: "Governing law",
				Body: []string{
					"These terms are governed by the law of England and Wales and the courts of England and Wales have exclusive jurisdiction over any dispute arising from them.",
				},
			},
		},
	}
}

// PrivacyPage returns the privacy policy copy.
func PrivacyPage() LegalPage {
	return LegalPage{
		Title:   "Privacy policy",
		Updated: "Last updated 12 January 2026",
		Sections: []LegalSection{
			{
				Heading: "What we collect",
				Body: []string{
					"When you prepare a notice we collect the answers you give about the tenancy, the property, the tenant and the arrears, because the prescribed forms require them. When you join the deadline alert list we collect your email address and, if you choose one, the country your property is in.",
				},
			},
			{
				Heading: "How we use it",
				Body: []string{
					"Tenancy answers are used only to prepare your documents and run the compliance checks. Alert-list emails are used only to send the updates you asked for, and every message includes an unsubscribe link. We do not sell personal data and we do not share it with anyone except the processors who host the service.",
				},
			},
			{
				Heading: "Cookies",
				Body: []string{
					"We set two first-party cookies. nd_session keeps you signed in while you prepare a notice. nd_lang remembers your language choice when you switch between English and Welsh. We do not set advertising or cross-site tracking cookies.",
				},
			},
			{
				Heading: "Retention",
				Body: []string{
					"Prepared documents and the answers behind them are kept while your account is active so you can re-download them, and deleted twelve months after your last sign-in. Alert-list records are kept until you unsubscribe.",
				},
			},
			{
				Heading: "Your rights",
				Body: []string{
					"Under UK GDPR you can ask for a copy of the personal data we hold about you, ask us to correct it, or ask us to delete it. Write to privacy@noticedesk.uk and we will respond within one calendar month. You can also complain to the Information Commissioner's Office.",
				},
			},
		},
	}
}
