// Package common defines shared constants and sentinel errors used across
// the authorizer components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Initialization errors. Both are fatal at startup scope: the process
	// must refuse to serve rather than treat a broken user list as an
	// empty one.
	ErrConfigNotSet  = errors.New("valid users configuration not set")
	ErrConfigInvalid = errors.New("valid users configuration invalid")

	// Request-format errors (protocol misuse by the caller, not a failed
	// login attempt).
	ErrMalformedRequest = errors.New("malformed request")
)
