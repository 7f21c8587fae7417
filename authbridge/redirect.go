package authbridge

import (
	"strings"
)

// blockedRedirectPaths are the routes a post-login redirect may never point
// back at.
var blockedRedirectPaths = []string{
	"/login",
	"/logout",
	"/auth/login",
	"/auth/logout",
}

// SanitizeRedirect validates a caller-supplied post-login redirect target.
// Only same-origin absolute paths that do not point back at the auth routes
// pass through; everything else is forced to the site root. This guards the
// login action's return-path parameter against open-redirect abuse.
func SanitizeRedirect(raw string) string {
	if raw == "" {
		return "/"
	}

	// Must be an absolute path. "//host" is scheme-relative and would leave
	// the origin, as would anything with a scheme.
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/"
	}
	if strings.Contains(raw, "\\") {
		return "/"
	}

	path := raw
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		path = "/"
	}

	for _, blocked := range blockedRedirectPaths {
		if path == blocked {
			return "/"
		}
	}

	return raw
}
