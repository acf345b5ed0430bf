// Package weberror turns typed application errors into HTTP responses,
// rendering branded error pages where the status warrants one.
package weberror

import (
	stderrors "errors"
	"log"
	"net/http"
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	apperrors "github.com/noticedesk/noticedesk.uk/internal/web/platform/errors"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/render"
	g "maragu.dev/gomponents"
)

// ShouldRenderPage reports whether the status deserves branded page chrome.
// Validation and auth failures keep a plain response so htmx forms can
// surface them inline.
func ShouldRenderPage(status int) bool {
	return status == http.StatusNotFound || status >= http.StatusInternalServerError
}

// PublicMessage resolves the visitor-facing title and body for an error.
// A localization key attached to the error overrides the generic status body.
// Raw error text never reaches the response.
func PublicMessage(loc i18n.Localizer, err error) (string, string) {
	errorCopy := i18n.Errors(loc)
	title := errorCopy.ServerTitle
	body := errorCopy.ServerBody
	if apperrors.HTTPStatus(err) == http.StatusNotFound {
		title = errorCopy.NotFoundTitle
		body = errorCopy.NotFoundBody
	}
	if localized := localizedKeyMessage(loc, err); localized != "" {
		body = localized
	}
	return title, body
}

// Write responds to the request with err mapped to its HTTP status.
// Page-worthy statuses get the branded error page, or only its content
// block when htmx asked for a fragment. Other statuses stay plain text.
func Write(w http.ResponseWriter, r *http.Request, loc i18n.Localizer, page components.PageConfig, err error) {
	if w == nil {
		return
	}
	status := apperrors.HTTPStatus(err)
	if !ShouldRenderPage(status) {
		http.Error(w, plainBody(loc, status, err), status)
		return
	}
	logServerError(r, status, err)

	title, body := PublicMessage(loc, err)
	var node g.Node = components.ErrorContent(title, body, i18n.Errors(loc).BackHome)
	if !httpx.IsHTMXRequest(r) {
		page.Title = i18n.PageTitle(title)
		node = components.Layout(page, node)
	}
	markup := render.String(node)
	if markup == "" {
		http.Error(w, body, status)
		return
	}
	if writeErr := httpx.WriteHTML(w, status, markup); writeErr != nil {
		log.Printf("write error page status=%d err=%v", status, writeErr)
	}
}

// plainBody resolves text for non-page statuses. Typed messages are authored
// as visitor-facing copy; anything untyped falls back to the status text.
func plainBody(loc i18n.Localizer, status int, err error) string {
	if localized := localizedKeyMessage(loc, err); localized != "" {
		return localized
	}
	var appErr apperrors.Error
	if stderrors.As(err, &appErr) && strings.TrimSpace(appErr.Message) != "" {
		return appErr.Message
	}
	return http.StatusText(status)
}

func localizedKeyMessage(loc i18n.Localizer, err error) string {
	key := apperrors.LocalizationKey(err)
	if key == "" {
		return ""
	}
	localized := i18n.T(loc, key)
	if strings.TrimSpace(localized) == "" || localized == key {
		return ""
	}
	return localized
}

func logServerError(r *http.Request, status int, err error) {
	if status < http.StatusInternalServerError {
		return
	}
	path := "-"
	requestID := "-"
	if r != nil {
		path = r.URL.Path
		if rid := strings.TrimSpace(r.Header.Get("X-Request-ID")); rid != "" {
			requestID = rid
		}
	}
	log.Printf("request failed path=%s request_id=%s status=%d err=%v", path, requestID, status, err)
}
