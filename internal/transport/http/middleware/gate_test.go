package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrpay/internal/domain/authz"
)

func gateRequest(role string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/payroll/runs/r-1", nil)
	if role != "" {
		ctx := WithActor(req.Context(), authz.Actor{ID: "u-1", Role: role, TenantID: "default"})
		req = req.WithContext(ctx)
	}
	return req
}

func TestRequireActionDeniesBeforeHandler(t *testing.T) {
	ran := false
	handler := RequireAction(authz.ResourcePayrollRun, authz.ActionDelete)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { ran = true }),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, gateRequest(authz.RoleEmployee))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if ran {
		t.Fatal("handler must not run on denial")
	}
}

func TestRequireActionAllows(t *testing.T) {
	ran := false
	handler := RequireAction(authz.ResourcePayrollRun, authz.ActionDelete)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { ran = true }),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, gateRequest(authz.RoleSuperAdmin))

	if !ran {
		t.Fatalf("handler should run, status = %d", rec.Code)
	}
}

func TestRequireActionAnonymous(t *testing.T) {
	handler := RequireAction(authz.ResourceEmployee, authz.ActionRead)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, gateRequest(""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	handler := RequireRoles(authz.RoleSuperAdmin, authz.RoleAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, gateRequest(authz.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("admin status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, gateRequest(authz.RoleEmployee))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("employee status = %d", rec.Code)
	}
}
