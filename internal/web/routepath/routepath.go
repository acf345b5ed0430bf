// Package routepath centralizes web route constants and URL builders.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	StaticPrefix = "/static/"
)

const (
	Pricing    = "/pricing"
	HowItWorks = "/how-it-works"
)

const (
	NoticeSection8  = "/notices/section-8"
	NoticeSection21 = "/notices/section-21"
	noticesPrefix   = "/notices/"
)

const (
	England = "/england"
	Wales   = "/wales"
)

const (
	Guides       = "/guides"
	GuidesPrefix = "/guides/"
)

const (
	ResumePrefix = "/resume/"
)

const (
	ProofCounterPrefix = "/proof/counter/"
	DeadlineCountdown  = "/deadline/countdown"
)

const (
	Leads   = "/leads"
	Logout  = "/logout"
	Healthz = "/healthz"
)

const (
	Terms   = "/terms"
	Privacy = "/privacy"
)

func Notice(slug string) string {
	return noticesPrefix + escapeSegment(slug)
}

func Guide(slug string) string {
	return Guides + "/" + escapeSegment(slug)
}

func Resume(caseID string) string {
	return strings.TrimSuffix(ResumePrefix, "/") + "/" + escapeSegment(caseID)
}

func ProofCounter(variant string) string {
	return strings.TrimSuffix(ProofCounterPrefix, "/") + "/" + escapeSegment(variant)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
