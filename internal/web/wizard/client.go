package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/noticedesk/noticedesk.uk/internal/platform/timeouts"
	apperrors "github.com/noticedesk/noticedesk.uk/internal/web/platform/errors"
)

// maxValidationBody bounds how much of a validation response is read.
const maxValidationBody = 1 << 20

// Client calls the wizard backend's case APIs.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a wizard backend client. A nil httpClient gets a default
// with the shared wizard request timeout.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("wizard base url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.WizardRequest}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// CaseValidation fetches the validation report for a case.
//
// 200 means the case is ready; 422 carries the issues payload. Both are
// success shapes here. Other statuses map to typed app errors. No retries.
func (c *Client) CaseValidation(ctx context.Context, caseID string) (Report, error) {
	if c == nil || c.httpClient == nil {
		return Report{}, apperrors.EK(apperrors.KindUpstream, "error.wizard_unavailable", "wizard client is not configured")
	}
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return Report{}, apperrors.EK(apperrors.KindNotFound, "error.case_not_found", "case id is required")
	}

	requestURL := c.baseURL + "/api/cases/" + url.PathEscape(caseID) + "/validation"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Report{}, fmt.Errorf("build validation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, fmt.Errorf("fetch case validation: %w",
			apperrors.EK(apperrors.KindUpstream, "error.wizard_unavailable", err.Error()))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnprocessableEntity:
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxValidationBody))
		if err != nil {
			return Report{}, fmt.Errorf("read validation response: %w",
				apperrors.EK(apperrors.KindUpstream, "error.wizard_unexpected", err.Error()))
		}
		var report Report
		if len(body) > 0 {
			if err := json.Unmarshal(body, &report); err != nil {
				return Report{}, fmt.Errorf("decode validation response: %w",
					apperrors.EK(apperrors.KindUpstream, "error.wizard_unexpected", err.Error()))
			}
		}
		return report, nil
	default:
		return Report{}, apperrors.MapUpstreamStatus(resp.StatusCode, apperrors.UpstreamStatusMapping{
			FallbackKind:    apperrors.KindUpstream,
			FallbackKey:     "error.wizard_unexpected",
			FallbackMessage: fmt.Sprintf("wizard returned status %d", resp.StatusCode),
		})
	}
}
