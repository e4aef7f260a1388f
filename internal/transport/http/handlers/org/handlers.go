package orghandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/org"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Store *org.Store
	Audit *audit.Service
	Scope authz.Scope
}

func NewHandler(store *org.Store, auditSvc *audit.Service, scope authz.Scope) *Handler {
	return &Handler{Store: store, Audit: auditSvc, Scope: scope}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceDepartment, authz.ActionRead)).Get("/", h.handleListDepartments)
		r.With(middleware.RequireAction(authz.ResourceDepartment, authz.ActionCreate)).Post("/", h.handleCreateDepartment)
		r.With(middleware.RequireAction(authz.ResourceDepartment, authz.ActionRead)).Get("/{departmentID}", h.handleGetDepartment)
		r.With(middleware.RequireAction(authz.ResourceDepartment, authz.ActionUpdate)).Put("/{departmentID}", h.handleUpdateDepartment)
		r.With(middleware.RequireAction(authz.ResourceDepartment, authz.ActionDelete)).Delete("/{departmentID}", h.handleDeleteDepartment)
	})
	r.Route("/designations", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceDesignation, authz.ActionRead)).Get("/", h.handleListDesignations)
		r.With(middleware.RequireAction(authz.ResourceDesignation, authz.ActionCreate)).Post("/", h.handleCreateDesignation)
		r.With(middleware.RequireAction(authz.ResourceDesignation, authz.ActionRead)).Get("/{designationID}", h.handleGetDesignation)
		r.With(middleware.RequireAction(authz.ResourceDesignation, authz.ActionUpdate)).Put("/{designationID}", h.handleUpdateDesignation)
		r.With(middleware.RequireAction(authz.ResourceDesignation, authz.ActionDelete)).Delete("/{designationID}", h.handleDeleteDesignation)
	})
	r.Route("/reporting-managers", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceReportingManager, authz.ActionRead)).Get("/", h.handleListReportingManagers)
		r.With(middleware.RequireAction(authz.ResourceReportingManager, authz.ActionCreate)).Post("/", h.handleCreateReportingManager)
		r.With(middleware.RequireAction(authz.ResourceReportingManager, authz.ActionRead)).Get("/{recordID}", h.handleGetReportingManager)
		r.With(middleware.RequireAction(authz.ResourceReportingManager, authz.ActionUpdate)).Put("/{recordID}", h.handleUpdateReportingManager)
		r.With(middleware.RequireAction(authz.ResourceReportingManager, authz.ActionDelete)).Delete("/{recordID}", h.handleDeleteReportingManager)
	})
	r.Route("/shifts", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceShift, authz.ActionRead)).Get("/", h.handleListShifts)
		r.With(middleware.RequireAction(authz.ResourceShift, authz.ActionCreate)).Post("/", h.handleCreateShift)
		r.With(middleware.RequireAction(authz.ResourceShift, authz.ActionRead)).Get("/{shiftID}", h.handleGetShift)
		r.With(middleware.RequireAction(authz.ResourceShift, authz.ActionUpdate)).Put("/{shiftID}", h.handleUpdateShift)
		r.With(middleware.RequireAction(authz.ResourceShift, authz.ActionDelete)).Delete("/{shiftID}", h.handleDeleteShift)
	})
	r.Route("/holidays", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceHoliday, authz.ActionRead)).Get("/", h.handleListHolidays)
		r.With(middleware.RequireAction(authz.ResourceHoliday, authz.ActionCreate)).Post("/", h.handleCreateHoliday)
		r.With(middleware.RequireAction(authz.ResourceHoliday, authz.ActionRead)).Get("/{holidayID}", h.handleGetHoliday)
		r.With(middleware.RequireAction(authz.ResourceHoliday, authz.ActionUpdate)).Put("/{holidayID}", h.handleUpdateHoliday)
		r.With(middleware.RequireAction(authz.ResourceHoliday, authz.ActionDelete)).Delete("/{holidayID}", h.handleDeleteHoliday)
	})
}

func (h *Handler) audit(r *http.Request, actor authz.Actor, action, entityType, entityID string, after any) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Audit.Record(r.Context(), authz.TenantOf(actor), actor.ID, action, entityType, entityID, reqID, shared.ClientIP(r), nil, after); err != nil {
		slog.Warn("audit record failed", "action", action, "err", err)
	}
}

func (h *Handler) handleListDepartments(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	out, err := h.Store.ListDepartments(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDepartment))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload org.Department
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateDepartment(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "department.create", "department", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	dep, err := h.Store.GetDepartment(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDepartment), chi.URLParam(r, "departmentID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, dep, reqID)
}

func (h *Handler) handleUpdateDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	departmentID := chi.URLParam(r, "departmentID")

	var payload org.Department
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = departmentID

	if err := h.Store.UpdateDepartment(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDepartment), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "department.update", "department", departmentID, payload)
	api.Success(w, map[string]string{"id": departmentID}, reqID)
}

func (h *Handler) handleDeleteDepartment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	departmentID := chi.URLParam(r, "departmentID")

	if err := h.Store.DeleteDepartment(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDepartment), departmentID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "department.delete", "department", departmentID, nil)
	api.Success(w, map[string]string{"id": departmentID}, reqID)
}

func (h *Handler) handleListDesignations(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	out, err := h.Store.ListDesignations(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDesignation))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateDesignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload org.Designation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("title", payload.Title, "title is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateDesignation(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "designation.create", "designation", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetDesignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	des, err := h.Store.GetDesignation(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDesignation), chi.URLParam(r, "designationID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, des, reqID)
}

func (h *Handler) handleUpdateDesignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	designationID := chi.URLParam(r, "designationID")

	var payload org.Designation
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = designationID

	if err := h.Store.UpdateDesignation(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDesignation), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "designation.update", "designation", designationID, payload)
	api.Success(w, map[string]string{"id": designationID}, reqID)
}

func (h *Handler) handleDeleteDesignation(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	designationID := chi.URLParam(r, "designationID")

	if err := h.Store.DeleteDesignation(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceDesignation), designationID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "designation.delete", "designation", designationID, nil)
	api.Success(w, map[string]string{"id": designationID}, reqID)
}

func (h *Handler) handleListReportingManagers(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	out, err := h.Store.ListReportingManagers(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceReportingManager))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateReportingManager(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload org.ReportingManager
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("employeeId", payload.EmployeeID, "employee id is required")
	v.Required("managerId", payload.ManagerID, "manager id is required")
	if payload.EmployeeID != "" && payload.EmployeeID == payload.ManagerID {
		v.Add("managerId", "employee cannot report to themselves")
	}
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateReportingManager(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "reporting_manager.create", "reporting_manager", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetReportingManager(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	rm, err := h.Store.GetReportingManager(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceReportingManager), chi.URLParam(r, "recordID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, rm, reqID)
}

func (h *Handler) handleUpdateReportingManager(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	recordID := chi.URLParam(r, "recordID")

	var payload org.ReportingManager
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = recordID

	if err := h.Store.UpdateReportingManager(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceReportingManager), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "reporting_manager.update", "reporting_manager", recordID, payload)
	api.Success(w, map[string]string{"id": recordID}, reqID)
}

func (h *Handler) handleDeleteReportingManager(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	recordID := chi.URLParam(r, "recordID")

	if err := h.Store.DeleteReportingManager(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceReportingManager), recordID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "reporting_manager.delete", "reporting_manager", recordID, nil)
	api.Success(w, map[string]string{"id": recordID}, reqID)
}

func (h *Handler) handleListShifts(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	out, err := h.Store.ListShifts(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceShift))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload org.Shift
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Required("startTime", payload.StartTime, "start time is required")
	v.Required("endTime", payload.EndTime, "end time is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateShift(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "shift.create", "shift", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	sh, err := h.Store.GetShift(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceShift), chi.URLParam(r, "shiftID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, sh, reqID)
}

func (h *Handler) handleUpdateShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	shiftID := chi.URLParam(r, "shiftID")

	var payload org.Shift
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = shiftID

	if err := h.Store.UpdateShift(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceShift), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "shift.update", "shift", shiftID, payload)
	api.Success(w, map[string]string{"id": shiftID}, reqID)
}

func (h *Handler) handleDeleteShift(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	shiftID := chi.URLParam(r, "shiftID")

	if err := h.Store.DeleteShift(r.Context(), h.Scope.TenantFilter(actor, authz.ResourceShift), shiftID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "shift.delete", "shift", shiftID, nil)
	api.Success(w, map[string]string{"id": shiftID}, reqID)
}
