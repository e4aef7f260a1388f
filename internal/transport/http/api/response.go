package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/employee"
	"hrpay/internal/domain/leave"
	"hrpay/internal/domain/org"
	"hrpay/internal/domain/payroll"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// FailError translates domain errors to HTTP responses. Denials always map
// to 403 and never to 404, so a caller without permission cannot probe for
// resource existence.
func FailError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, authz.ErrPermissionDenied),
		errors.Is(err, authz.ErrUnknownRole),
		errors.Is(err, authz.ErrUnknownResource):
		Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, payroll.ErrRunNotFound),
		errors.Is(err, payroll.ErrComponentNotFound),
		errors.Is(err, payroll.ErrPayslipNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrOnboardingNotFound),
		errors.Is(err, employee.ErrResignationNotFound),
		errors.Is(err, employee.ErrTerminationNotFound),
		errors.Is(err, org.ErrDepartmentNotFound),
		errors.Is(err, org.ErrDesignationNotFound),
		errors.Is(err, org.ErrReportingManagerNotFound),
		errors.Is(err, org.ErrShiftNotFound),
		errors.Is(err, org.ErrHolidayNotFound),
		errors.Is(err, leave.ErrRequestNotFound):
		Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, payroll.ErrConflict):
		Fail(w, http.StatusConflict, "conflict", err.Error(), requestID)
	case errors.Is(err, payroll.ErrInvalidTransition),
		errors.Is(err, payroll.ErrRunLocked),
		errors.Is(err, payroll.ErrRunNotApproved),
		errors.Is(err, payroll.ErrEmployeeSets):
		Fail(w, http.StatusUnprocessableEntity, "invalid_state", err.Error(), requestID)
	default:
		slog.Error("internal error", "err", err, "requestId", requestID)
		Fail(w, http.StatusInternalServerError, "internal_error", "internal server error", requestID)
	}
}
