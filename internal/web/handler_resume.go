package web

import (
	"net/http"
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/content"
	apperrors "github.com/noticedesk/noticedesk.uk/internal/web/platform/errors"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/i18n"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
	"github.com/noticedesk/noticedesk.uk/internal/web/wizard"
	g "maragu.dev/gomponents"
)

// handleResume renders the pick-up-where-you-left-off page for one case:
// the validation issues still standing, or the ready state when nothing
// blocks generation.
func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	pc := h.pageContext(w, r)
	caseID := strings.Trim(strings.TrimPrefix(r.URL.Path, routepath.ResumePrefix), "/")
	if caseID == "" || strings.Contains(caseID, "/") {
		h.renderNotFound(w, r)
		return
	}

	rc := i18n.Resume(pc.loc)
	cfg := h.pageConfig(w, r, pc, rc.Heading, "")

	report, err := h.wizardClient.CaseValidation(httpx.RequestContext(r), caseID)
	if err != nil {
		h.renderPage(w, r, cfg,
			components.PageIntro(content.Intro{Title: rc.Heading}),
			components.ContentSection("",
				components.ResumeUnavailable(h.resumeFallbackMessage(pc, rc, err), rc, cfg.StartURL),
			),
		)
		return
	}

	continueURL := wizard.BuildFlowURL(caseID, wizard.ModeReview, wizard.CaseContext{}, "")
	issues := report.Sorted()
	if len(issues) == 0 {
		h.renderPage(w, r, cfg,
			components.PageIntro(content.Intro{Title: rc.Heading}),
			components.ContentSection("", components.ResumeReady(rc, continueURL)),
		)
		return
	}

	body := []g.Node{
		components.PageIntro(content.Intro{Title: rc.IssuesHeading, Lede: rc.IssuesIntro}),
		components.ContentSection("", components.IssueList(h.issueViews(pc, caseID, issues), rc)),
	}
	if report.Ready() {
		// Only warnings remain, so the case can still proceed.
		body = append(body, components.ContentSection("", components.ResumeReady(rc, continueURL)))
	}
	h.renderPage(w, r, cfg, body...)
}

// issueViews prepares wizard findings for display. Fix links jump back into
// the wizard at the affected question; the case itself carries its flow
// selectors, so the links only need case, mode and question.
func (h *Handler) issueViews(pc pageContext, caseID string, issues []wizard.Issue) []components.IssueView {
	views := make([]components.IssueView, 0, len(issues))
	for _, issue := range issues {
		view := components.IssueView{
			Title:    issueTitle(pc.loc, issue.Code),
			Hint:     issue.UserFixHint,
			Reason:   issue.LegalReason,
			Blocking: issue.Blocking(),
			FixLabel: pc.copy.ActionFixAnswer,
		}
		if issue.AffectedQuestionID != "" {
			view.FixURL = wizard.BuildFlowURL(caseID, wizard.ModeEdit, wizard.CaseContext{}, issue.AffectedQuestionID)
		}
		for _, alternate := range issue.AlternateQuestionIDs {
			if strings.TrimSpace(alternate) == "" {
				continue
			}
			view.Alternates = append(view.Alternates, components.Link{
				Href:  wizard.BuildFlowURL(caseID, wizard.ModeEdit, wizard.CaseContext{}, alternate),
				Label: humanizeID(alternate),
			})
		}
		views = append(views, view)
	}
	return views
}

// resumeFallbackMessage picks the page copy for a failed validation fetch.
func (h *Handler) resumeFallbackMessage(pc pageContext, rc i18n.ResumeCopy, err error) string {
	if apperrors.KindOf(err) == apperrors.KindNotFound {
		return rc.Expired
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if message := i18n.T(pc.loc, key); message != "" && message != key {
			return message
		}
	}
	return i18n.Errors(pc.loc).ServerBody
}

// issueTitle resolves the display title for an issue code, falling back to
// the humanized code for variants the catalog does not know.
func issueTitle(loc i18n.Localizer, code string) string {
	key := "issue." + strings.TrimSpace(code)
	if title := i18n.T(loc, key); title != "" && title != key {
		return title
	}
	return humanizeID(code)
}

// humanizeID turns a wizard identifier like tenancy_start_date into
// display text.
func humanizeID(id string) string {
	words := strings.TrimSpace(strings.NewReplacer("_", " ", "-", " ").Replace(id))
	if words == "" {
		return id
	}
	return strings.ToUpper(words[:1]) + words[1:]
}
