// Package timeouts defines shared timeout constants used across the web
// service. Centralizing these values keeps the durations discoverable and
// prevents drift between callers.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// WizardRequest caps a single call from the marketing pages to the wizard
// backend, covering case validation lookups during resume.
const WizardRequest = 3 * time.Second

// SessionRevoke caps the best-effort revoke call to the auth provider
// during logout.
const SessionRevoke = 2 * time.Second

// GuideReload debounces filesystem events before guides are re-parsed, so
// editors that write in bursts trigger one reload.
const GuideReload = 300 * time.Millisecond
