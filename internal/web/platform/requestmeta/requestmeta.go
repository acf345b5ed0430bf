// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered. Keeping this explicit avoids trusting headers from untrusted
// clients.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// origin is a normalized scheme/host/port triple.
type origin struct {
	scheme string
	host   string
	port   string
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS
// under the provided scheme policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return requestScheme(r, policy) == "https"
}

// HasSameOriginProof reports whether Origin or Referer proves same-origin.
func HasSameOriginProof(r *http.Request) bool {
	return HasSameOriginProofWithPolicy(r, SchemePolicy{})
}

// HasSameOriginProofWithPolicy reports whether Origin or Referer proves
// same-origin under the provided scheme policy.
func HasSameOriginProofWithPolicy(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	want := requestOrigin(r, policy)
	if want.host == "" {
		return false
	}
	if header := strings.TrimSpace(r.Header.Get("Origin")); header != "" {
		return matchesOrigin(header, want)
	}
	if header := strings.TrimSpace(r.Header.Get("Referer")); header != "" {
		return matchesOrigin(header, want)
	}
	return false
}

func matchesOrigin(raw string, want origin) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	got := origin{
		scheme: strings.ToLower(strings.TrimSpace(parsed.Scheme)),
		host:   strings.ToLower(strings.TrimSpace(parsed.Hostname())),
		port:   strings.TrimSpace(parsed.Port()),
	}
	if got.scheme == "" || got.host == "" {
		return false
	}
	if want.scheme != "" && got.scheme != want.scheme {
		return false
	}
	if got.host != want.host {
		return false
	}
	if got.port == "" {
		got.port = defaultPortForScheme(got.scheme)
	}
	wantPort := want.port
	if wantPort == "" {
		wantPort = defaultPortForScheme(want.scheme)
	}
	if got.port == "" || wantPort == "" {
		return false
	}
	return got.port == wantPort
}

func requestOrigin(r *http.Request, policy SchemePolicy) origin {
	if r == nil {
		return origin{}
	}
	scheme := requestScheme(r, policy)
	host, port := splitHostPort(r.Host)
	if host == "" && r.URL != nil {
		host, port = splitHostPort(r.URL.Host)
	}
	if port == "" {
		port = defaultPortForScheme(scheme)
	}
	return origin{scheme: scheme, host: host, port: port}
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func defaultPortForScheme(scheme string) string {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func splitHostPort(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
