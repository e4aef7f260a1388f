package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrpay/internal/domain/authz"
)

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	handler := RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var last int
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last)
	}
}

func TestRateLimitKeysByActor(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(userID string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		ctx := WithActor(req.Context(), authz.Actor{ID: userID, Role: authz.RoleEmployee, TenantID: "default"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		return rec.Code
	}

	if code := send("u-1"); code != http.StatusOK {
		t.Fatalf("first actor status = %d", code)
	}
	if code := send("u-1"); code != http.StatusTooManyRequests {
		t.Fatalf("repeat actor status = %d, want 429", code)
	}
	if code := send("u-2"); code != http.StatusOK {
		t.Fatalf("distinct actor status = %d, want 200", code)
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.3:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.3")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Fatalf("clientIP = %q", got)
	}
}
