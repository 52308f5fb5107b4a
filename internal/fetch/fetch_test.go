package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	c := &Client{UserAgent: "condordocs-test"}
	body, status, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != 200 {
		t.Fatalf("expected status 200, got %d", status)
	}
	if len(body) == 0 {
		t.Fatalf("expected non-empty body")
	}
}

func TestGet_SurfacesNotFoundStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := &Client{}
	_, status, err := c.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("404 should not be a Get error, got %v", err)
	}
	if status != 404 {
		t.Fatalf("expected status 404, got %d", status)
	}
}

func TestGetOK_NonSuccessIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c := &Client{}
	_, err := c.GetOK(context.Background(), srv.URL+"/missing.html")
	if err == nil {
		t.Fatalf("expected error for 404")
	}
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if se.Status != 404 {
		t.Fatalf("expected status 404 in error, got %d", se.Status)
	}
}

func TestGet_RejectsNonHTTPScheme(t *testing.T) {
	c := &Client{}
	if _, _, err := c.Get(context.Background(), "ftp://example.org/manual"); err == nil {
		t.Fatalf("expected error for non-http scheme")
	}
}

func TestGet_SendsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c := &Client{UserAgent: "condordocs/1.0"}
	if _, _, err := c.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "condordocs/1.0" {
		t.Fatalf("expected custom user agent, got %q", got)
	}
}
