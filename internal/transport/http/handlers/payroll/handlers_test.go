package payrollhandler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrpay/internal/domain/authz"
	"hrpay/internal/transport/http/middleware"
)

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPatch, "/payroll/runs/r-1/status", strings.NewReader(`{"status":"archived"}`))
	ctx := middleware.WithActor(req.Context(), authz.Actor{ID: "u-1", Role: authz.RoleSuperAdmin, TenantID: "default"})
	rec := httptest.NewRecorder()

	h.handleTransitionRun(rec, req.WithContext(ctx))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTransitionRejectsMalformedPayload(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPatch, "/payroll/runs/r-1/status", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.handleTransitionRun(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
