package employeehandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/employee"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

func (h *Handler) RegisterExitRoutes(r chi.Router) {
	r.Route("/resignations", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceResignation, authz.ActionRead)).Get("/", h.handleListResignations)
		r.With(middleware.RequireAction(authz.ResourceResignation, authz.ActionCreate)).Post("/", h.handleCreateResignation)
		r.With(middleware.RequireAction(authz.ResourceResignation, authz.ActionRead)).Get("/{resignationID}", h.handleGetResignation)
		r.With(middleware.RequireAction(authz.ResourceResignation, authz.ActionUpdate)).Put("/{resignationID}", h.handleUpdateResignation)
		r.With(middleware.RequireAction(authz.ResourceResignation, authz.ActionUpdateStatus)).Patch("/{resignationID}/status", h.handleResignationStatus)
		r.With(middleware.RequireAction(authz.ResourceResignation, authz.ActionDelete)).Delete("/{resignationID}", h.handleDeleteResignation)
	})
	r.Route("/terminations", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceTermination, authz.ActionRead)).Get("/", h.handleListTerminations)
		r.With(middleware.RequireAction(authz.ResourceTermination, authz.ActionCreate)).Post("/", h.handleCreateTermination)
		r.With(middleware.RequireAction(authz.ResourceTermination, authz.ActionRead)).Get("/{terminationID}", h.handleGetTermination)
		r.With(middleware.RequireAction(authz.ResourceTermination, authz.ActionUpdate)).Put("/{terminationID}", h.handleUpdateTermination)
		r.With(middleware.RequireAction(authz.ResourceTermination, authz.ActionUpdateStatus)).Patch("/{terminationID}/status", h.handleTerminationStatus)
		r.With(middleware.RequireAction(authz.ResourceTermination, authz.ActionDelete)).Delete("/{terminationID}", h.handleDeleteTermination)
	})
}

type statusPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleListResignations(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	filter := h.Scope.TenantFilter(actor, authz.ResourceResignation)
	records, err := h.Store.ListResignations(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleCreateResignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload employee.Resignation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	if payload.NoticeDate.IsZero() {
		v.Add("noticeDate", "notice date is required")
	}
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateResignation(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "resignation.create", "resignation", id, nil, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetResignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	filter := h.Scope.TenantFilter(actor, authz.ResourceResignation)
	rec, err := h.Store.GetResignation(r.Context(), filter, chi.URLParam(r, "resignationID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleUpdateResignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	resignationID := chi.URLParam(r, "resignationID")

	var payload employee.Resignation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = resignationID

	filter := h.Scope.TenantFilter(actor, authz.ResourceResignation)
	if err := h.Store.UpdateResignation(r.Context(), filter, payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "resignation.update", "resignation", resignationID, nil, payload)
	api.Success(w, map[string]string{"id": resignationID}, reqID)
}

func (h *Handler) handleResignationStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	resignationID := chi.URLParam(r, "resignationID")

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, []string{"pending", "accepted", "withdrawn", "completed"}, "status is not recognised")
	if v.Reject(w, reqID) {
		return
	}

	filter := h.Scope.TenantFilter(actor, authz.ResourceResignation)
	if err := h.Store.UpdateResignationStatus(r.Context(), filter, resignationID, payload.Status); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "resignation.status", "resignation", resignationID, nil, payload)
	api.Success(w, map[string]string{"id": resignationID, "status": payload.Status}, reqID)
}

func (h *Handler) handleDeleteResignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	resignationID := chi.URLParam(r, "resignationID")

	filter := h.Scope.TenantFilter(actor, authz.ResourceResignation)
	if err := h.Store.DeleteResignation(r.Context(), filter, resignationID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "resignation.delete", "resignation", resignationID, nil, nil)
	api.Success(w, map[string]string{"id": resignationID}, reqID)
}

func (h *Handler) handleListTerminations(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	filter := h.Scope.TenantFilter(actor, authz.ResourceTermination)
	records, err := h.Store.ListTerminations(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleCreateTermination(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload employee.Termination
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	if payload.TerminationDate.IsZero() {
		v.Add("terminationDate", "termination date is required")
	}
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateTermination(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "termination.create", "termination", id, nil, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetTermination(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	filter := h.Scope.TenantFilter(actor, authz.ResourceTermination)
	rec, err := h.Store.GetTermination(r.Context(), filter, chi.URLParam(r, "terminationID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleUpdateTermination(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	terminationID := chi.URLParam(r, "terminationID")

	var payload employee.Termination
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = terminationID

	filter := h.Scope.TenantFilter(actor, authz.ResourceTermination)
	if err := h.Store.UpdateTermination(r.Context(), filter, payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "termination.update", "termination", terminationID, nil, payload)
	api.Success(w, map[string]string{"id": terminationID}, reqID)
}

func (h *Handler) handleTerminationStatus(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	terminationID := chi.URLParam(r, "terminationID")

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("status", payload.Status, "status is required")
	v.Enum("status", payload.Status, []string{"pending", "in_progress", "completed", "cancelled"}, "status is not recognised")
	if v.Reject(w, reqID) {
		return
	}

	filter := h.Scope.TenantFilter(actor, authz.ResourceTermination)
	if err := h.Store.UpdateTerminationStatus(r.Context(), filter, terminationID, payload.Status); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "termination.status", "termination", terminationID, nil, payload)
	api.Success(w, map[string]string{"id": terminationID, "status": payload.Status}, reqID)
}

func (h *Handler) handleDeleteTermination(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	terminationID := chi.URLParam(r, "terminationID")

	filter := h.Scope.TenantFilter(actor, authz.ResourceTermination)
	if err := h.Store.DeleteTermination(r.Context(), filter, terminationID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "termination.delete", "termination", terminationID, nil, nil)
	api.Success(w, map[string]string{"id": terminationID}, reqID)
}
