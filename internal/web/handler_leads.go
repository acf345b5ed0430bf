package web

import (
	"net/http"
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/flash"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	webstorage "github.com/noticedesk/noticedesk.uk/internal/web/storage"
)

// Flash keys resolved by the lead capture banner.
const (
	leadSubscribedKey    = "leads.notice_subscribed"
	leadEmailRequiredKey = "leads.error.email_required"
	leadEmailInvalidKey  = "leads.error.email_invalid"
	leadSaveFailedKey    = "leads.error.save_failed"
)

// handleLeads records a deadline-alert subscription and redirects back to
// the page the form was on. Outcomes surface as flash notices after the
// redirect, so the handler itself always answers with a redirect.
func (h *Handler) handleLeads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	returnPath := leadReturnPath(r)
	if err := r.ParseForm(); err != nil {
		flash.Write(w, r, flash.Notice{Kind: flash.KindError, Key: leadEmailInvalidKey})
		httpx.WriteRedirect(w, r, returnPath)
		return
	}

	email := strings.ToLower(strings.TrimSpace(r.PostFormValue("email")))
	switch {
	case email == "":
		flash.Write(w, r, flash.Notice{Kind: flash.KindError, Key: leadEmailRequiredKey})
	case !validEmail(email):
		flash.Write(w, r, flash.Notice{Kind: flash.KindError, Key: leadEmailInvalidKey})
	default:
		lead := webstorage.Lead{
			ID:           uuid.New().String(),
			Email:        email,
			Jurisdiction: normalizeJurisdiction(r.PostFormValue("jurisdiction")),
			CreatedAt:    nowFunc().UTC(),
		}
		if err := h.store.UpsertLead(httpx.RequestContext(r), lead); err != nil {
			h.logger.Printf("lead upsert failed email=%s err=%v", email, err)
			flash.Write(w, r, flash.Notice{Kind: flash.KindError, Key: leadSaveFailedKey})
		} else {
			flash.Write(w, r, flash.NoticeSuccess(leadSubscribedKey))
		}
	}
	httpx.WriteRedirect(w, r, returnPath)
}

// validEmail runs the display-layer shape check. Deliverability is the
// mailing provider's problem.
func validEmail(email string) bool {
	parsed, err := mail.ParseAddress(email)
	return err == nil && parsed.Address == email
}

// normalizeJurisdiction keeps only the known wizard jurisdiction values.
func normalizeJurisdiction(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch raw {
	case content.JurisdictionEngland, content.JurisdictionWales:
		return raw
	default:
		return ""
	}
}

// leadReturnPath returns the same-origin page the form was submitted from,
// falling back to the home page.
func leadReturnPath(r *http.Request) string {
	referer := strings.TrimSpace(r.Referer())
	if referer == "" {
		return routepath.Root
	}
	parsed, err := url.Parse(referer)
	if err != nil || !strings.HasPrefix(parsed.Path, "/") {
		return routepath.Root
	}
	if parsed.Host != "" && !strings.EqualFold(parsed.Host, r.Host) {
		return routepath.Root
	}
	path := parsed.Path
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	return path
}
