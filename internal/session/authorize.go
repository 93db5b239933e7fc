package session

import "net/http"

// Authorizer decorates outgoing requests with the current bearer token.
// It performs no I/O and never fails: when anonymous the request passes
// through untouched and the backend rejects unauthorized calls.
type Authorizer struct {
	sessions *Manager
}

// NewAuthorizer creates an authorizer reading from the given manager.
func NewAuthorizer(sessions *Manager) *Authorizer {
	return &Authorizer{sessions: sessions}
}

// Decorate returns the request to send. When a session is live the
// result is a clone carrying the Authorization header; the input request
// is never mutated.
func (a *Authorizer) Decorate(req *http.Request) *http.Request {
	sess := a.sessions.Current()
	if sess == nil {
		return req
	}
	clone := req.Clone(req.Context())
	sess.Token.SetAuthHeader(clone)
	return clone
}

// Transport composes the authorizer into an HTTP client pipeline ahead
// of dispatch.
type Transport struct {
	Auth *Authorizer

	// Base is the wrapped round tripper. Defaults to http.DefaultTransport.
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(t.Auth.Decorate(req))
}
