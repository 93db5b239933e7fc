package session_test

import (
	"context"
	"net/http"
	"testing"

	"ttrack/internal/session"
	"ttrack/internal/testutil"
)

func TestAuthorizer_AnonymousPassThrough(t *testing.T) {
	mgr, _ := newManager(t)
	mgr.Initialize()
	auth := session.NewAuthorizer(mgr)

	req, _ := http.NewRequest(http.MethodGet, "http://backend/api/tasks", nil)
	got := auth.Decorate(req)

	if got != req {
		t.Error("anonymous decoration should return the request unchanged")
	}
	if got.Header.Get("Authorization") != "" {
		t.Error("anonymous request must not carry an authorization header")
	}
}

func TestAuthorizer_AuthenticatedAddsBearer(t *testing.T) {
	mgr, _ := newManager(t)
	mgr.Initialize()
	svc := testutil.NewFakeService()
	if err := mgr.Login(context.Background(), svc, "demo", "demo123"); err != nil {
		t.Fatal(err)
	}

	auth := session.NewAuthorizer(mgr)
	req, _ := http.NewRequest(http.MethodGet, "http://backend/api/tasks", nil)
	req.Header.Set("Accept", "application/json")

	got := auth.Decorate(req)

	if got == req {
		t.Fatal("decoration must produce a copy")
	}
	if want := "Bearer fake-token-demo"; got.Header.Get("Authorization") != want {
		t.Errorf("expected %q, got %q", want, got.Header.Get("Authorization"))
	}
	if len(got.Header.Values("Authorization")) != 1 {
		t.Error("expected exactly one authorization header")
	}

	// All other fields survive untouched and the original is unchanged.
	if got.Method != req.Method || got.URL.String() != req.URL.String() {
		t.Error("decoration must not alter method or URL")
	}
	if got.Header.Get("Accept") != "application/json" {
		t.Error("existing headers must be preserved")
	}
	if req.Header.Get("Authorization") != "" {
		t.Error("original request must not be mutated")
	}
}

func TestTransport_RoundTripUsesDecoratedRequest(t *testing.T) {
	mgr, _ := newManager(t)
	mgr.Initialize()
	svc := testutil.NewFakeService()
	if err := mgr.Login(context.Background(), svc, "demo", "demo123"); err != nil {
		t.Fatal(err)
	}

	var seen string
	rt := &session.Transport{
		Auth: session.NewAuthorizer(mgr),
		Base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			seen = r.Header.Get("Authorization")
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		}),
	}

	req, _ := http.NewRequest(http.MethodGet, "http://backend/api/tasks", nil)
	resp, err := rt.RoundTrip(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if seen != "Bearer fake-token-demo" {
		t.Errorf("base transport saw %q", seen)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
