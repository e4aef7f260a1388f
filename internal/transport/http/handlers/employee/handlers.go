package employeehandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/employee"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Store *employee.Store
	Audit *audit.Service
	Scope authz.Scope
}

func NewHandler(store *employee.Store, auditSvc *audit.Service, scope authz.Scope) *Handler {
	return &Handler{Store: store, Audit: auditSvc, Scope: scope}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceEmployee, authz.ActionRead)).Get("/", h.handleList)
		r.With(middleware.RequireAction(authz.ResourceEmployee, authz.ActionCreate)).Post("/", h.handleCreate)
		r.With(middleware.RequireAction(authz.ResourceEmployee, authz.ActionRead)).Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequireAction(authz.ResourceEmployee, authz.ActionUpdate)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequireAction(authz.ResourceEmployee, authz.ActionDelete)).Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	employees, err := h.Store.ListEmployees(r.Context(), authz.TenantOf(actor), page.Limit, page.Offset)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, employees, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("firstName", payload.FirstName, "first name is required")
	v.Required("lastName", payload.LastName, "last name is required")
	v.Required("email", payload.Email, "email is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "employee.create", "employee", id, nil, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	emp, err := h.Store.GetEmployee(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, emp, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = employeeID

	before, err := h.Store.GetEmployee(r.Context(), authz.TenantOf(actor), employeeID)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Store.UpdateEmployee(r.Context(), authz.TenantOf(actor), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "employee.update", "employee", employeeID, before, payload)
	api.Success(w, map[string]string{"id": employeeID}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	if err := h.Store.DeleteEmployee(r.Context(), authz.TenantOf(actor), employeeID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "employee.delete", "employee", employeeID, nil, nil)
	api.Success(w, map[string]string{"id": employeeID}, reqID)
}

func (h *Handler) audit(r *http.Request, actor authz.Actor, action, entityType, entityID string, before, after any) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Audit.Record(r.Context(), authz.TenantOf(actor), actor.ID, action, entityType, entityID, reqID, shared.ClientIP(r), before, after); err != nil {
		slog.Warn("audit record failed", "action", action, "err", err)
	}
}
