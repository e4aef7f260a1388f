package leavehandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/leave"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Store *leave.Store
	Audit *audit.Service
}

func NewHandler(store *leave.Store, auditSvc *audit.Service) *Handler {
	return &Handler{Store: store, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave/requests", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceLeave, authz.ActionRead)).Get("/", h.handleList)
		r.With(middleware.RequireAction(authz.ResourceLeave, authz.ActionCreate)).Post("/", h.handleCreate)
		r.With(middleware.RequireAction(authz.ResourceLeave, authz.ActionRead)).Get("/{requestID}", h.handleGet)
		r.With(middleware.RequireAction(authz.ResourceLeave, authz.ActionUpdateStatus)).Patch("/{requestID}/status", h.handleDecide)
		r.With(middleware.RequireAction(authz.ResourceLeave, authz.ActionDelete)).Delete("/{requestID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	employeeID := r.URL.Query().Get("employeeId")
	status := r.URL.Query().Get("status")

	requests, err := h.Store.List(r.Context(), authz.TenantOf(actor), employeeID, status, page.Limit, page.Offset)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, requests, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload leave.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("leaveType", payload.LeaveType, "leave type is required")
	if payload.StartDate.IsZero() {
		v.Add("startDate", "start date is required")
	}
	if payload.EndDate.IsZero() {
		v.Add("endDate", "end date is required")
	}
	v.DateOrder("startDate", payload.StartDate, "endDate", payload.EndDate)
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.Create(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "leave.request.create", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	request, err := h.Store.Get(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "requestID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, request, reqID)
}

type decidePayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	requestID := chi.URLParam(r, "requestID")

	var payload decidePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	if !leave.ValidStatus(payload.Status) || payload.Status == leave.StatusPending {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status must be approved or rejected", reqID)
		return
	}

	if err := h.Store.Decide(r.Context(), authz.TenantOf(actor), requestID, payload.Status, actor.ID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "leave.request."+payload.Status, requestID, payload)
	api.Success(w, map[string]string{"id": requestID, "status": payload.Status}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	requestID := chi.URLParam(r, "requestID")

	if err := h.Store.Delete(r.Context(), authz.TenantOf(actor), requestID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "leave.request.delete", requestID, nil)
	api.Success(w, map[string]string{"id": requestID}, reqID)
}

func (h *Handler) audit(r *http.Request, actor authz.Actor, action, entityID string, after any) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Audit.Record(r.Context(), authz.TenantOf(actor), actor.ID, action, "leave_request", entityID, reqID, shared.ClientIP(r), nil, after); err != nil {
		slog.Warn("audit record failed", "action", action, "err", err)
	}
}
