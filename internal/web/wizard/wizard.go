// Package wizard models the external notice wizard: the validation issue
// payloads it returns and the flow URLs that route a visitor back into it.
package wizard

import (
	"net/url"
	"sort"
	"strings"
)

// FlowPath is the wizard entry route on the apex application.
const FlowPath = "/wizard/flow"

// ModeEdit reopens a case at a specific question; ModeReview opens the final
// review step of a completed case.
const (
	ModeEdit   = "edit"
	ModeReview = "review"
)

// Severity ranks a validation issue.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityWarning  Severity = "warning"
)

// Normalized returns the severity with unknown values treated as blocking.
func (s Severity) Normalized() Severity {
	if Severity(strings.ToLower(strings.TrimSpace(string(s)))) == SeverityWarning {
		return SeverityWarning
	}
	return SeverityBlocking
}

// Issue is one validation finding for a case, as returned by the wizard
// backend.
type Issue struct {
	Code                 string   `json:"code"`
	Severity             Severity `json:"severity,omitempty"`
	Fields               []string `json:"fields,omitempty"`
	AffectedQuestionID   string   `json:"affected_question_id,omitempty"`
	AlternateQuestionIDs []string `json:"alternate_question_ids,omitempty"`
	UserFixHint          string   `json:"user_fix_hint,omitempty"`
	LegalReason          string   `json:"legal_reason,omitempty"`
}

// Blocking reports whether the issue prevents notice generation.
func (i Issue) Blocking() bool {
	return i.Severity.Normalized() == SeverityBlocking
}

// CaseContext carries the wizard flow selectors for a case.
type CaseContext struct {
	Type         string
	Jurisdiction string
	Product      string
}

// Report is a case validation snapshot from the wizard backend.
type Report struct {
	Issues []Issue `json:"issues"`
}

// Ready reports whether the case can proceed to generation.
func (r Report) Ready() bool {
	for _, issue := range r.Issues {
		if issue.Blocking() {
			return false
		}
	}
	return true
}

// Sorted returns the issues with blocking findings before warnings, keeping
// the backend's order within each group.
func (r Report) Sorted() []Issue {
	sorted := make([]Issue, len(r.Issues))
	copy(sorted, r.Issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Blocking() && !sorted[j].Blocking()
	})
	return sorted
}

// BuildFlowURL builds the wizard navigation URL for a case.
//
// The flow expects type, jurisdiction, product, case_id, mode, jump_to in
// that order; url.Values.Encode sorts keys, so the query is assembled by
// hand. Empty optionals are omitted entirely, never emitted as empty values.
func BuildFlowURL(caseID, mode string, caseCtx CaseContext, questionID string) string {
	pairs := []struct {
		key   string
		value string
	}{
		{"type", caseCtx.Type},
		{"jurisdiction", caseCtx.Jurisdiction},
		{"product", caseCtx.Product},
		{"case_id", caseID},
		{"mode", mode},
		{"jump_to", questionID},
	}

	var builder strings.Builder
	builder.WriteString(FlowPath)
	separator := "?"
	for _, pair := range pairs {
		value := strings.TrimSpace(pair.value)
		if value == "" {
			continue
		}
		builder.WriteString(separator)
		builder.WriteString(pair.key)
		builder.WriteString("=")
		builder.WriteString(url.QueryEscape(value))
		separator = "&"
	}
	return builder.String()
}
