package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/employee"
	"hrpay/internal/domain/payroll"
)

func TestFailErrorStatusMapping(t *testing.T) {
	cases := map[string]struct {
		err    error
		status int
		code   string
	}{
		"permission denied": {authz.ErrPermissionDenied, http.StatusForbidden, "forbidden"},
		"unknown role":      {authz.ErrUnknownRole, http.StatusForbidden, "forbidden"},
		"run not found":     {payroll.ErrRunNotFound, http.StatusNotFound, "not_found"},
		"employee missing":  {employee.ErrEmployeeNotFound, http.StatusNotFound, "not_found"},
		"stale transition":  {payroll.ErrConflict, http.StatusConflict, "conflict"},
		"skipped stage":     {payroll.ErrInvalidTransition, http.StatusUnprocessableEntity, "invalid_state"},
		"locked run":        {payroll.ErrRunLocked, http.StatusUnprocessableEntity, "invalid_state"},
		"unexpected":        {errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FailError(rec, tc.err, "req-1")

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			var env Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if env.Success {
				t.Fatal("expected success=false")
			}
			if env.Error == nil || env.Error.Code != tc.code {
				t.Fatalf("error code = %+v, want %s", env.Error, tc.code)
			}
			if env.RequestID != "req-1" {
				t.Fatalf("requestId = %q", env.RequestID)
			}
		})
	}
}

func TestPermissionDeniedNeverLeaksExistence(t *testing.T) {
	rec := httptest.NewRecorder()
	FailError(rec, authz.ErrPermissionDenied, "")
	if rec.Code == http.StatusNotFound {
		t.Fatal("denial must not map to 404")
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Message != "insufficient permissions" {
		t.Fatalf("message = %q", env.Error.Message)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "abc"}, "req-2")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Error != nil {
		t.Fatalf("envelope = %+v", env)
	}
}
