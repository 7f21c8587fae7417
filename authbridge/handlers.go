package authbridge

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wpbridge/wpbridge/session"
)

type contextKey string

const sessionContextKey contextKey = "wpbridge.session"

// loginRequest is the JSON body accepted by the login handler as an
// alternative to form encoding.
type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RedirectTo string `json:"redirect_to"`
}

// Routes registers the bridge's HTTP surface on the mux.
func (b *Bridge) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /auth/login", b.LoginHandler)
	mux.HandleFunc("POST /auth/logout", b.LogoutHandler)
	mux.HandleFunc("GET /auth/me", b.MeHandler)
}

// LoginHandler authenticates the posted credentials and issues the session
// cookie. Form posts are answered with a redirect to the sanitized target,
// JSON posts with the resolved user.
func (b *Bridge) LoginHandler(w http.ResponseWriter, r *http.Request) {
	username, password, redirectTo, isJSON := readCredentials(r)

	sess, err := b.Login(r.Context(), username, password)
	if err != nil {
		b.logger.Debug().Err(err).Msg("Login request rejected")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	b.setSessionCookie(w, r, sess)

	if isJSON {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"user_id":    sess.UserID,
			"username":   sess.Username,
			"expires_at": sess.ExpiresAt,
		})
		return
	}

	http.Redirect(w, r, SanitizeRedirect(redirectTo), http.StatusSeeOther)
}

// LogoutHandler deletes the caller's session and clears the cookie.
func (b *Bridge) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(b.cookie.Name); err == nil {
		b.Logout(cookie.Value)
	}
	b.ClearSessionCookie(w, r)

	redirectTo := r.FormValue("redirect_to")
	http.Redirect(w, r, SanitizeRedirect(redirectTo), http.StatusSeeOther)
}

// MeHandler resolves the caller's session and proxies the upstream
// current-user lookup with the stored cookies.
func (b *Bridge) MeHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := b.SessionFromRequest(r)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := b.wp.GetCurrentUserWithCookies(r.Context(), sess.Cookies)
	if err != nil {
		// Upstream no longer accepts the cookies; the local session is stale.
		b.Logout(sess.ID)
		b.ClearSessionCookie(w, r)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// SessionFromRequest resolves the session the request's cookie refers to.
func (b *Bridge) SessionFromRequest(r *http.Request) (*session.Session, bool) {
	cookie, err := r.Cookie(b.cookie.Name)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return b.store.Get(cookie.Value)
}

// Middleware attaches the caller's session, when present, to the request
// context for downstream handlers.
func (b *Bridge) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := b.SessionFromRequest(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext returns the session Middleware attached to the context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey).(*session.Session)
	return sess, ok
}

// setSessionCookie issues the HTTP-only session cookie with max-age equal to
// the session TTL.
func (b *Bridge) setSessionCookie(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     b.cookie.Name,
		Value:    sess.ID,
		Path:     b.cookie.Path,
		MaxAge:   int(sess.TTL().Seconds()),
		HttpOnly: true,
		Secure:   b.cookieSecure(r),
		SameSite: b.cookie.SameSite,
	})
}

// ClearSessionCookie expires the session cookie on the caller's response.
func (b *Bridge) ClearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     b.cookie.Name,
		Value:    "",
		Path:     b.cookie.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   b.cookieSecure(r),
		SameSite: b.cookie.SameSite,
	})
}

// cookieSecure marks the cookie secure when configured or when the request
// arrived over HTTPS, directly or behind a terminating proxy.
func (b *Bridge) cookieSecure(r *http.Request) bool {
	if b.cookie.Secure {
		return true
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// readCredentials pulls the credentials and redirect target from either a
// JSON body or form encoding.
func readCredentials(r *http.Request) (username, password, redirectTo string, isJSON bool) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", "", "", true
		}
		return req.Username, req.Password, req.RedirectTo, true
	}

	if err := r.ParseForm(); err != nil {
		return "", "", "", false
	}
	return r.PostFormValue("username"), r.PostFormValue("password"), r.PostFormValue("redirect_to"), false
}
