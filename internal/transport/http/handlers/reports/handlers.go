package reportshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/reports"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
)

type Handler struct {
	Service *reports.Service
	Scope   authz.Scope
}

func NewHandler(service *reports.Service, scope authz.Scope) *Handler {
	return &Handler{Service: service, Scope: scope}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.With(middleware.RequireRoles(
			authz.RoleSuperAdmin,
			authz.RoleAdmin,
			authz.RoleHRManager,
			authz.RoleFinanceManager,
			authz.RoleManager,
		)).Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	exitFilter := h.Scope.TenantFilter(actor, authz.ResourceResignation)
	summary, err := h.Service.Summary(r.Context(), authz.TenantOf(actor), exitFilter)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, summary, reqID)
}
