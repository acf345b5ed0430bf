// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "unavailable"
	KindUpstream     Kind = "upstream"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// KindOf extracts the kind from a typed error, KindUnknown otherwise.
func KindOf(err error) Kind {
	var appErr Error
	if err == nil || !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable, KindUpstream:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// UpstreamStatusMapping controls how upstream HTTP failures map to app errors.
type UpstreamStatusMapping struct {
	FallbackKind    Kind
	FallbackKey     string
	FallbackMessage string
}

// MapUpstreamStatus converts an upstream HTTP status into a typed Error.
// Statuses the caller handles in-band (2xx, 422) should never reach this.
func MapUpstreamStatus(statusCode int, mapping UpstreamStatusMapping) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return E(KindUnauthorized, "upstream rejected credentials")
	case http.StatusNotFound:
		return EK(KindNotFound, "error.case_not_found", "case not found")
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return EK(KindUpstream, "error.wizard_unavailable", "wizard backend unavailable")
	}
	kind := mapping.FallbackKind
	if kind == "" {
		kind = KindUnknown
	}
	message := mapping.FallbackMessage
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return EK(kind, mapping.FallbackKey, message)
}
