// Package session owns the client-side authentication state: the
// persisted credential, the live session and its subscribers, the
// request authorizer and the route guard.
package session

import "golang.org/x/oauth2"

// Session is the authenticated identity plus its bearer token. A session
// is never mutated in place; transitions replace it wholesale.
type Session struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Token    oauth2.Token `json:"token"`
}

// BearerToken returns the opaque credential attached to authorized calls.
func (s *Session) BearerToken() string {
	return s.Token.AccessToken
}
