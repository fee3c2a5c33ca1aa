// Package registry holds the set of valid users that credentials are
// checked against. The set is parsed once at startup from an
// operator-supplied JSON document and never mutated afterwards, so
// lookups are safe for concurrent use without locking. A changed user
// list takes effect only through a full process restart.
package registry

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authorizer/internal/common"
)

// UserCredential is one configured username/password pair.
type UserCredential struct {
	Username string
	Password string
}

// Registry maps usernames to their configured passwords.
type Registry struct {
	users map[string]string
}

// New builds a Registry from an ordered list of credentials. If the list
// contains the same username more than once, the later entry wins.
func New(users []UserCredential) *Registry {
	m := make(map[string]string, len(users))
	for _, u := range users {
		m[u.Username] = u.Password
	}
	return &Registry{users: m}
}

// entry mirrors one object of the VALID_USERS JSON array. Pointer fields
// distinguish a missing key from an empty string; a non-string value
// fails to unmarshal.
type entry struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// Load parses raw as a JSON array of {"username","password"} objects and
// builds a Registry.
//
// It fails with common.ErrConfigNotSet when raw is empty or blank, and
// with common.ErrConfigInvalid when raw is not a JSON array of objects,
// an entry is missing a field or carries a non-string or empty value, a
// username contains ':', or the array holds no entries at all. A zero
// user list is rejected on purpose: a provider that can never
// authenticate anyone is a misconfiguration, not a valid state.
func Load(raw string) (*Registry, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, common.ErrConfigNotSet
	}

	var entries []entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrConfigInvalid, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no users configured", common.ErrConfigInvalid)
	}

	users := make([]UserCredential, 0, len(entries))
	for i, e := range entries {
		if e.Username == nil || e.Password == nil {
			return nil, fmt.Errorf("%w: entry %d is missing username or password", common.ErrConfigInvalid, i)
		}
		if *e.Username == "" || *e.Password == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty username or password", common.ErrConfigInvalid, i)
		}
		// a ':' in a username would make the token split ambiguous
		if strings.Contains(*e.Username, ":") {
			return nil, fmt.Errorf("%w: entry %d: username must not contain ':'", common.ErrConfigInvalid, i)
		}
		users = append(users, UserCredential{Username: *e.Username, Password: *e.Password})
	}

	return New(users), nil
}

// Lookup returns the configured password for username and whether the
// username is known.
func (r *Registry) Lookup(username string) (string, bool) {
	password, ok := r.users[username]
	return password, ok
}

// Len returns the number of configured users.
func (r *Registry) Len() int {
	return len(r.users)
}
