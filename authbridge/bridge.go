package authbridge

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wpbridge/wpbridge/session"
	"github.com/wpbridge/wpbridge/wordpress"
)

const (
	// loggedInCookiePrefix marks the cookie WordPress issues once credentials
	// are accepted. The name suffix is a site-specific hash, so only the
	// prefix can be matched.
	loggedInCookiePrefix = "wordpress_logged_in_"

	loginPath = "/wp-login.php"
)

// CookieConfig controls the local session cookie the bridge issues.
type CookieConfig struct {
	Name     string
	Path     string
	SameSite http.SameSite
	Secure   bool
	TTL      time.Duration
}

// Bridge authenticates against the upstream login form and tracks the
// resulting sessions in an injected store.
type Bridge struct {
	wp         *wordpress.Client
	store      session.Store
	cookie     CookieConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewBridge creates an auth bridge over the given WordPress client and
// session store.
func NewBridge(wp *wordpress.Client, store session.Store, cookie CookieConfig, logger zerolog.Logger) (*Bridge, error) {
	if wp == nil {
		return nil, fmt.Errorf("wordpress client is required")
	}
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if cookie.Name == "" {
		cookie.Name = "wpbridge_session"
	}
	if cookie.Path == "" {
		cookie.Path = "/"
	}
	if cookie.SameSite == 0 {
		cookie.SameSite = http.SameSiteLaxMode
	}
	if cookie.TTL <= 0 {
		cookie.TTL = 24 * time.Hour
	}

	return &Bridge{
		wp:     wp,
		store:  store,
		cookie: cookie,
		httpClient: &http.Client{
			Timeout: wordpress.DefaultTimeout,
			// The login form answers with a redirect on success; following it
			// would drop the Set-Cookie values we need to harvest.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}, nil
}

// Login performs the form-based login handshake against the upstream origin
// and mints a local session on success. Any failure surfaces as
// ErrUnauthorized and leaves no session state behind.
func (b *Bridge) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, ErrUnauthorized
	}

	cookies, err := b.loginHandshake(ctx, username, password)
	if err != nil {
		b.logger.Debug().Err(err).Str("username", username).Msg("Login handshake failed")
		return nil, ErrUnauthorized
	}

	user, err := b.wp.GetCurrentUserWithCookies(ctx, cookies)
	if err != nil {
		b.logger.Debug().Err(err).Str("username", username).Msg("Cookie verification failed")
		return nil, ErrUnauthorized
	}

	sess := session.New(user.ID, username, cookies, b.cookie.TTL)
	if err := b.store.Save(sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	b.logger.Info().Int("user_id", user.ID).Str("username", username).Msg("Login succeeded")
	return sess, nil
}

// loginHandshake runs the three upstream requests and returns the merged
// cookie header.
func (b *Bridge) loginHandshake(ctx context.Context, username, password string) (string, error) {
	loginURL := b.wp.BaseURL() + loginPath

	// Step 1: fetch the login form with no credentials to pick up the test
	// cookie the form handler insists on.
	formCookies, err := b.fetchLoginForm(ctx, loginURL)
	if err != nil {
		return "", err
	}

	// Step 2: post the credentials with the harvested cookies attached.
	authCookies, err := b.postCredentials(ctx, loginURL, username, password, formCookies)
	if err != nil {
		return "", err
	}

	// Step 3: merge both cookie sets, later values winning on name collision.
	merged := mergeCookies(formCookies, authCookies)

	// Step 4: without the logged-in marker the credentials were rejected,
	// regardless of what status the form handler answered with.
	if !hasLoggedInCookie(merged) {
		return "", fmt.Errorf("no logged-in cookie issued")
	}

	return cookieHeader(merged), nil
}

func (b *Bridge) fetchLoginForm(ctx context.Context, loginURL string) ([]*http.Cookie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loginURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch login form: %w", err)
	}
	defer resp.Body.Close()

	return resp.Cookies(), nil
}

func (b *Bridge) postCredentials(ctx context.Context, loginURL, username, password string, cookies []*http.Cookie) ([]*http.Cookie, error) {
	form := url.Values{}
	form.Set("log", username)
	form.Set("pwd", password)
	form.Set("testcookie", "1")
	form.Set("rememberme", "forever")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to post credentials: %w", err)
	}
	defer resp.Body.Close()

	return resp.Cookies(), nil
}

// mergeCookies combines cookie sets in order, later values replacing earlier
// ones with the same name while keeping first-seen position.
func mergeCookies(sets ...[]*http.Cookie) []*http.Cookie {
	index := make(map[string]int)
	var merged []*http.Cookie

	for _, set := range sets {
		for _, c := range set {
			if i, ok := index[c.Name]; ok {
				merged[i] = c
				continue
			}
			index[c.Name] = len(merged)
			merged = append(merged, c)
		}
	}

	return merged
}

func hasLoggedInCookie(cookies []*http.Cookie) bool {
	for _, c := range cookies {
		if strings.HasPrefix(c.Name, loggedInCookiePrefix) && c.Value != "" {
			return true
		}
	}
	return false
}

// cookieHeader renders cookies into a single Cookie header value.
func cookieHeader(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

// Logout deletes the session for id. No upstream invalidation call is made;
// the upstream cookies simply age out on the origin's side.
func (b *Bridge) Logout(id string) {
	if id == "" {
		return
	}
	b.store.Delete(id)
	b.logger.Debug().Str("session_id", id).Msg("Session deleted")
}

// Lookup returns the session for id, absent when unknown or expired.
func (b *Bridge) Lookup(id string) (*session.Session, bool) {
	if id == "" {
		return nil, false
	}
	return b.store.Get(id)
}
