package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"confdesk/config"
	"confdesk/core/rbac"
	"confdesk/core/utils"
)

func gateFor(t *testing.T, secret string) *rbac.Gate {
	t.Helper()
	policy, err := rbac.NewPolicy(rbac.DefaultRoles())
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	return rbac.NewGate(secret, policy)
}

func TestRequireAdminDeniesWrongSecret(t *testing.T) {
	s := &Server{gate: gateFor(t, "s3cret"), logger: utils.NewLoggerTo(nil)}
	handler := s.requireAdmin(rbac.PermAuditExport)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/conferences/1/audit/export", nil)
	req.Header.Set(adminPasswordHeader, "guess")
	rr := httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got %d", rr.Code)
	}
}

func TestRequireAdminUnconfiguredIsServerError(t *testing.T) {
	s := &Server{gate: gateFor(t, ""), logger: utils.NewLoggerTo(nil)}
	handler := s.requireAdmin(rbac.PermAuditExport)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/conferences/1/audit/export", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestRequireAdminPassesMatchingSecret(t *testing.T) {
	s := &Server{gate: gateFor(t, "s3cret"), logger: utils.NewLoggerTo(nil)}
	handler := s.requireAdmin(rbac.PermAuditExport)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	req := httptest.NewRequest(http.MethodGet, "/conferences/1/audit/export", nil)
	req.Header.Set(adminPasswordHeader, "s3cret")
	rr := httptest.NewRecorder()
	handler(rr, req)
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected wrapped handler to run, got %d", rr.Code)
	}
}

func TestRequestIDKeepsInboundValue(t *testing.T) {
	s := &Server{}
	var seen string
	h := s.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestID(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "abc-123" || rr.Header().Get(requestIDHeader) != "abc-123" {
		t.Fatalf("unexpected request id %q / %q", seen, rr.Header().Get(requestIDHeader))
	}
}

func TestRequestIDMintsUUID(t *testing.T) {
	s := &Server{}
	h := s.requestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if got := rr.Header().Get(requestIDHeader); len(got) != 36 {
		t.Fatalf("expected uuid, got %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := &Server{cfg: &config.AppConfig{CORS: config.CORSConfig{AllowedOrigins: []string{"https://admin.example.org"}}}}
	called := false
	h := s.corsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
	req := httptest.NewRequest(http.MethodOptions, "/conferences", nil)
	req.Header.Set("Origin", "https://admin.example.org")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent || called {
		t.Fatalf("expected preflight short-circuit, got %d called=%v", rr.Code, called)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://admin.example.org" {
		t.Fatalf("missing allow-origin header")
	}

	req = httptest.NewRequest(http.MethodGet, "/conferences", nil)
	req.Header.Set("Origin", "https://other.example.org")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if !called || rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("foreign origin must pass through without CORS headers")
	}
}
