package web

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/noticedesk/noticedesk.uk/internal/platform/timeouts"
	"github.com/noticedesk/noticedesk.uk/internal/web/components"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/httpx"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/requestmeta"
	"github.com/noticedesk/noticedesk.uk/internal/web/platform/sessioncookie"
	"github.com/noticedesk/noticedesk.uk/internal/web/routepath"
)

// sessionClaims is the claim set the auth provider signs into nd_session.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionVerifier validates session tokens minted by the auth provider.
// The marketing site never issues tokens; it only reads them to label the
// account area.
type SessionVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewSessionVerifier builds a verifier for the shared HS256 secret. An empty
// secret returns nil, which treats every request as anonymous.
func NewSessionVerifier(secret string) *SessionVerifier {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil
	}
	return &SessionVerifier{secret: []byte(secret), now: time.Now}
}

// Viewer verifies token and returns the signed-in viewer when valid.
func (v *SessionVerifier) Viewer(token string) (components.Viewer, bool) {
	if v == nil || len(v.secret) == 0 {
		return components.Viewer{}, false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return components.Viewer{}, false
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return v.now() }),
	)
	if err != nil || !parsed.Valid {
		return components.Viewer{}, false
	}

	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return components.Viewer{}, false
	}
	return components.Viewer{
		Email:    email,
		Name:     strings.TrimSpace(claims.Name),
		SignedIn: true,
	}, true
}

// viewerFromRequest resolves the account area state for a request. Absent,
// expired, or tampered cookies all render as anonymous.
func (h *Handler) viewerFromRequest(r *http.Request) components.Viewer {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return components.Viewer{}
	}
	viewer, ok := h.sessions.Viewer(token)
	if !ok {
		return components.Viewer{}
	}
	return viewer
}

// handleLogout clears the session cookie and sends the visitor home. The
// cookie is only cleared with same-origin proof so a cross-site link cannot
// sign visitors out.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if requestmeta.HasSameOriginProof(r) {
		if token, ok := sessioncookie.Read(r); ok {
			sessioncookie.Clear(w, r)
			h.revoke.Notify(httpx.RequestContext(r), token)
		}
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

// revokeNotifier tells the auth provider to drop a session after logout.
type revokeNotifier struct {
	endpoint   string
	httpClient *http.Client
}

func newRevokeNotifier(endpoint string, httpClient *http.Client) *revokeNotifier {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeouts.SessionRevoke}
	}
	return &revokeNotifier{endpoint: endpoint, httpClient: httpClient}
}

// Notify posts the revoked token. Failures are logged and swallowed; the
// cookie is already cleared so the visitor is signed out either way.
func (n *revokeNotifier) Notify(ctx context.Context, token string) {
	if n == nil || strings.TrimSpace(token) == "" {
		return
	}
	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("build session revoke request err=%v", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		log.Printf("session revoke failed err=%v", err)
		return
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("session revoke rejected status=%d", resp.StatusCode)
	}
}
