// Package identity resolves the current user. Authentication itself happens
// upstream; the gateway forwards the resolved identity in request headers,
// and their absence means "not logged in".
package identity

import "net/http"

const (
	HeaderUserID    = "X-User-Id"
	HeaderUserEmail = "X-User-Email"
	HeaderUserName  = "X-User-Name"
)

// User is the resolved identity of the caller.
type User struct {
	ID    string
	Email string
	Name  string
}

// FromRequest returns the caller's identity, or ok=false when the request
// carries none.
func FromRequest(r *http.Request) (User, bool) {
	id := r.Header.Get(HeaderUserID)
	if id == "" {
		return User{}, false
	}
	return User{
		ID:    id,
		Email: r.Header.Get(HeaderUserEmail),
		Name:  r.Header.Get(HeaderUserName),
	}, true
}
