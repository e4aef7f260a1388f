package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrpay/internal/domain/auth"
	"hrpay/internal/domain/authz"
)

const testSecret = "test-secret"

func actorProbe(t *testing.T, got *authz.Actor) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor, ok := GetActor(r.Context()); ok {
			*got = actor
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthAttachesActor(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{
		UserID:   "u-1",
		TenantID: "acme",
		Role:     "HR Manager",
	}, time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var got authz.Actor
	handler := Auth(testSecret)(actorProbe(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.ID != "u-1" {
		t.Fatalf("actor id = %q", got.ID)
	}
	if got.Role != authz.RoleHRManager {
		t.Fatalf("role = %q, want normalized %q", got.Role, authz.RoleHRManager)
	}
	if got.TenantID != "acme" {
		t.Fatalf("tenant = %q", got.TenantID)
	}
}

func TestAuthDefaultsMissingTenant(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "u-2", Role: "employee"}, time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	var got authz.Actor
	handler := Auth(testSecret)(actorProbe(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.TenantID != authz.DefaultTenant {
		t.Fatalf("tenant = %q, want %q", got.TenantID, authz.DefaultTenant)
	}
}

func TestAuthIgnoresBadToken(t *testing.T) {
	var got authz.Actor
	handler := Auth(testSecret)(actorProbe(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.ID != "" {
		t.Fatalf("actor should be absent, got %+v", got)
	}
}

func TestRequireAuthRejectsAnonymous(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}
