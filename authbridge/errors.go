package authbridge

import "errors"

// Common errors returned by the auth bridge.
var (
	// ErrUnauthorized is returned for bad credentials or a rejected handshake.
	ErrUnauthorized = errors.New("unauthorized: login failed")

	// ErrNoSession is returned when a request carries no valid session cookie.
	ErrNoSession = errors.New("no active session")
)
