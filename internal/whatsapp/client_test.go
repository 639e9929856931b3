package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"whocallsme_backend/platform/apperr"
	"whocallsme_backend/platform/config"
	"whocallsme_backend/platform/logger"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&config.Config{RapidAPIHost: "registry.example", RapidAPIKey: "secret"}, logger.New("development"))
	c.baseURL = srv.URL
	return c
}

func TestLookup_SendsAuthHeaders(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-host"); got != "registry.example" {
			t.Errorf("expected host header, got %q", got)
		}
		if got := r.Header.Get("x-rapidapi-key"); got != "secret" {
			t.Errorf("expected key header, got %q", got)
		}
		if got := r.URL.Query().Get("phone"); got != "351912345678" {
			t.Errorf("expected phone param, got %q", got)
		}
		_, _ = w.Write([]byte(`{"registered":true,"url":"https://wa.me/351912345678"}`))
	}))

	result, err := c.Lookup(context.Background(), "351912345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Registered == nil || !*result.Registered {
		t.Fatalf("expected registered=true, got %v", result.Registered)
	}
	if result.URL != "https://wa.me/351912345678" {
		t.Fatalf("unexpected url %q", result.URL)
	}
}

func TestLookup_AbsentRegisteredFieldStaysNil(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"url":""}`))
	}))

	result, err := c.Lookup(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Registered != nil {
		t.Fatalf("expected nil registered, got %v", *result.Registered)
	}
}

func TestLookup_UpstreamFailureIsHardError(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"bad status": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		},
		"malformed body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`nope`))
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, handler)
			_, err := c.Lookup(context.Background(), "123")
			if err == nil {
				t.Fatal("expected an error")
			}
			domainErr, ok := err.(*apperr.Error)
			if !ok {
				t.Fatalf("expected *apperr.Error, got %T", err)
			}
			if domainErr.Kind != apperr.KindUnavailable {
				t.Fatalf("expected KindUnavailable, got %v", domainErr.Kind)
			}
		})
	}
}

func TestNewClient_NilWithoutKey(t *testing.T) {
	c := NewClient(&config.Config{RapidAPIHost: "registry.example"}, logger.New("development"))
	if c != nil {
		t.Fatal("expected nil client without an API key")
	}

	_, err := c.Lookup(context.Background(), "123")
	if err == nil {
		t.Fatal("expected error from nil client lookup")
	}
}
