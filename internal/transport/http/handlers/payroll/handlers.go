package payrollhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/audit"
	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/payroll"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Audit   *audit.Service
}

func NewHandler(service *payroll.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll/runs", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionRead)).Get("/", h.handleListRuns)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionCreate)).Post("/", h.handleCreateRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionRead)).Get("/{runID}", h.handleGetRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdate)).Put("/{runID}", h.handleUpdateRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionDelete)).Delete("/{runID}", h.handleDeleteRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdateStatus)).Post("/{runID}/process", h.handleProcessRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdateStatus)).Post("/{runID}/approve", h.handleApproveRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdateStatus)).Post("/{runID}/lock", h.handleLockRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdateStatus)).Patch("/{runID}/status", h.handleTransitionRun)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionRead)).Get("/{runID}/warnings", h.handleRunWarnings)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdate)).Post("/{runID}/bank-advice", h.handleBankAdvice)
		r.With(middleware.RequireAction(authz.ResourcePayrollRun, authz.ActionUpdate)).Post("/{runID}/payment-file", h.handlePaymentFile)
		r.With(middleware.RequireAction(authz.ResourcePayslip, authz.ActionRead)).Get("/{runID}/payslips", h.handleRunPayslips)
		r.With(middleware.RequireAction(authz.ResourceCompliance, authz.ActionRead)).Get("/{runID}/compliance", h.handleRunCompliance)
	})
	r.Route("/payroll/components", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceSalaryComponent, authz.ActionRead)).Get("/", h.handleListComponents)
		r.With(middleware.RequireAction(authz.ResourceSalaryComponent, authz.ActionCreate)).Post("/", h.handleCreateComponent)
		r.With(middleware.RequireAction(authz.ResourceSalaryComponent, authz.ActionRead)).Get("/{componentID}", h.handleGetComponent)
		r.With(middleware.RequireAction(authz.ResourceSalaryComponent, authz.ActionUpdate)).Put("/{componentID}", h.handleUpdateComponent)
		r.With(middleware.RequireAction(authz.ResourceSalaryComponent, authz.ActionDelete)).Delete("/{componentID}", h.handleDeleteComponent)
	})
	r.Route("/payroll/payslips", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourcePayslip, authz.ActionRead)).Get("/{payslipID}", h.handleGetPayslip)
		r.With(middleware.RequireAction(authz.ResourcePayslip, authz.ActionRead)).Get("/{payslipID}/download", h.handleDownloadPayslip)
	})
}

func (h *Handler) audit(r *http.Request, actor authz.Actor, action, entityType, entityID string, after any) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Audit.Record(r.Context(), authz.TenantOf(actor), actor.ID, action, entityType, entityID, reqID, shared.ClientIP(r), nil, after); err != nil {
		slog.Warn("audit record failed", "action", action, "err", err)
	}
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	runs, err := h.Service.Store().ListRuns(r.Context(), authz.TenantOf(actor), page.Limit, page.Offset)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	total, err := h.Service.Store().CountRuns(r.Context(), authz.TenantOf(actor))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, map[string]any{"runs": runs, "total": total}, reqID)
}

func (h *Handler) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload payroll.Run
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("payrollPeriod", payload.PayrollPeriod, "payroll period is required")
	v.Enum("payrollType", payload.PayrollType, []string{payroll.TypeRegular, payroll.TypeOffCycle}, "payroll type is not recognised")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Service.Store().CreateRun(r.Context(), authz.TenantOf(actor), &payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.run.create", "payroll_run", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	run, err := h.Service.Store().GetRun(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "runID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, run, reqID)
}

func (h *Handler) handleUpdateRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	runID := chi.URLParam(r, "runID")

	var payload payroll.Run
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = runID

	if err := h.Service.Store().UpdateRunDetails(r.Context(), authz.TenantOf(actor), &payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.run.update", "payroll_run", runID, payload)
	api.Success(w, map[string]string{"id": runID}, reqID)
}

func (h *Handler) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	runID := chi.URLParam(r, "runID")

	if err := h.Service.Store().DeleteRun(r.Context(), authz.TenantOf(actor), runID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.run.delete", "payroll_run", runID, nil)
	api.Success(w, map[string]string{"id": runID}, reqID)
}

func (h *Handler) handleProcessRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	runID := chi.URLParam(r, "runID")

	run, err := h.Service.ProcessRun(r.Context(), authz.TenantOf(actor), runID, actor.ID, time.Now())
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.run.process", "payroll_run", runID, run)
	api.Success(w, run, reqID)
}

func (h *Handler) handleApproveRun(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, payroll.StatusApproved, "payroll.run.approve")
}

func (h *Handler) handleLockRun(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, payroll.StatusLocked, "payroll.run.lock")
}

type transitionPayload struct {
	Status string `json:"status"`
}

func (h *Handler) handleTransitionRun(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload transitionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	valid := false
	for _, status := range payroll.Statuses {
		if payload.Status == status {
			valid = true
			break
		}
	}
	if !valid {
		api.Fail(w, http.StatusBadRequest, "invalid_status", "status is not recognised", reqID)
		return
	}
	h.transition(w, r, payload.Status, "payroll.run.status")
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, target, action string) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	runID := chi.URLParam(r, "runID")

	run, err := h.Service.Store().TransitionRun(r.Context(), authz.TenantOf(actor), runID, target, actor.ID, time.Now())
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, action, "payroll_run", runID, map[string]string{"status": target})
	api.Success(w, run, reqID)
}

func (h *Handler) handleRunWarnings(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	warnings, err := h.Service.RunWarnings(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "runID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, warnings, reqID)
}

func (h *Handler) handleBankAdvice(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	runID := chi.URLParam(r, "runID")

	rows, err := h.Service.BankAdviceRows(r.Context(), authz.TenantOf(actor), runID)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Service.Store().MarkRunBankAdvice(r.Context(), authz.TenantOf(actor), runID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.run.bank_advice", "payroll_run", runID, nil)
	api.Success(w, map[string]any{"rows": rows, "bankAdviceGenerated": true}, reqID)
}

func (h *Handler) handlePaymentFile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	runID := chi.URLParam(r, "runID")

	rows, err := h.Service.BankAdviceRows(r.Context(), authz.TenantOf(actor), runID)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	if err := h.Service.Store().MarkRunPaymentFile(r.Context(), authz.TenantOf(actor), runID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.run.payment_file", "payroll_run", runID, nil)
	api.Success(w, map[string]any{"rows": rows, "paymentFileGenerated": true}, reqID)
}

func (h *Handler) handleRunPayslips(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	slips, err := h.Service.Store().ListPayslips(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "runID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, slips, reqID)
}

func (h *Handler) handleRunCompliance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	records, err := h.Service.Store().ListComplianceRecords(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "runID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleGetPayslip(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	slip, err := h.Service.Store().GetPayslip(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "payslipID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, slip, reqID)
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	payslipID := chi.URLParam(r, "payslipID")

	path, err := h.Service.GeneratePayslipPDF(r.Context(), authz.TenantOf(actor), payslipID)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.payslip.download", "payslip", payslipID, nil)
	api.Success(w, map[string]string{"fileUrl": path}, reqID)
}

func (h *Handler) handleListComponents(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	components, err := h.Service.Store().ListComponents(r.Context(), authz.TenantOf(actor))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, components, reqID)
}

func (h *Handler) handleCreateComponent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload payroll.Component
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	v.Enum("componentType", payload.ComponentType, []string{payroll.ComponentEarning, payroll.ComponentDeduction}, "component type is not recognised")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Service.Store().CreateComponent(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.component.create", "salary_component", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetComponent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	component, err := h.Service.Store().GetComponent(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "componentID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, component, reqID)
}

func (h *Handler) handleUpdateComponent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	componentID := chi.URLParam(r, "componentID")

	var payload payroll.Component
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = componentID

	if err := h.Service.Store().UpdateComponent(r.Context(), authz.TenantOf(actor), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.component.update", "salary_component", componentID, payload)
	api.Success(w, map[string]string{"id": componentID}, reqID)
}

func (h *Handler) handleDeleteComponent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	componentID := chi.URLParam(r, "componentID")

	if err := h.Service.Store().DeleteComponent(r.Context(), authz.TenantOf(actor), componentID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "payroll.component.delete", "salary_component", componentID, nil)
	api.Success(w, map[string]string{"id": componentID}, reqID)
}
