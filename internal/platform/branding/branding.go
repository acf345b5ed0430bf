// Package branding centralizes product naming so display strings stay
// consistent across pages, emails, and logs.
package branding

// AppName is the customer-facing product name.
const AppName = "NoticeDesk"

// Domain is the canonical host the product is served from.
const Domain = "noticedesk.uk"

// Tagline is the short positioning line shown in hero sections and
// page metadata.
const Tagline = "Court-ready eviction notices for England and Wales"

// SupportEmail receives customer queries from the contact links.
const SupportEmail = "help@noticedesk.uk"
