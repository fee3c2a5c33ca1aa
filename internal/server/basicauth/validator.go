// Package basicauth validates HTTP Basic-Authentication tokens against
// the configured user registry.
package basicauth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/dmitrijs2005/authorizer/internal/server/registry"
)

// SchemePrefix is the literal an inbound token must start with. The
// comparison is case-sensitive.
const SchemePrefix = "Basic "

// Verdict is the binary result of validating one token. Principal is the
// matched username and is empty exactly when Active is false.
type Verdict struct {
	Active    bool
	Principal string
}

var inactive = Verdict{}

// credentials parses a raw token into its username and password parts.
// The payload after the scheme prefix must be standard base64 with
// padding, and the decoded bytes must contain a colon; the split happens
// on the first colon only, so passwords may themselves contain colons.
func credentials(token string) (username, password string, ok bool) {
	encoded, found := strings.CutPrefix(token, SchemePrefix)
	if !found || encoded == "" {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}

	username, password, found = strings.Cut(string(decoded), ":")
	if !found || username == "" || password == "" {
		return "", "", false
	}

	return username, password, true
}

// Validate checks one raw authorization token against reg and returns the
// verdict. Any parse, decode or lookup failure folds into the inactive
// verdict; Validate never panics on malformed input. It is a pure
// function of its two inputs and is safe for concurrent use, since the
// registry is read-only.
func Validate(token string, reg *registry.Registry) Verdict {
	username, password, ok := credentials(token)
	if !ok {
		return inactive
	}

	stored, ok := reg.Lookup(username)
	if !ok {
		return inactive
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return inactive
	}

	return Verdict{Active: true, Principal: username}
}

// Username extracts the username part of a token for diagnostics. It
// returns an empty string when the token cannot be decoded. The password
// part is never exposed.
func Username(token string) string {
	username, _, ok := credentials(token)
	if !ok {
		return ""
	}
	return username
}
