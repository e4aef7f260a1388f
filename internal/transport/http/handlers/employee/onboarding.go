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

func (h *Handler) RegisterOnboardingRoutes(r chi.Router) {
	r.Route("/onboarding", func(r chi.Router) {
		r.With(middleware.RequireAction(authz.ResourceOnboarding, authz.ActionRead)).Get("/", h.handleListOnboarding)
		r.With(middleware.RequireAction(authz.ResourceOnboarding, authz.ActionCreate)).Post("/", h.handleCreateOnboarding)
		r.With(middleware.RequireAction(authz.ResourceOnboarding, authz.ActionRead)).Get("/{onboardingID}", h.handleGetOnboarding)
		r.With(middleware.RequireAction(authz.ResourceOnboarding, authz.ActionUpdate)).Put("/{onboardingID}", h.handleUpdateOnboarding)
		r.With(middleware.RequireAction(authz.ResourceOnboarding, authz.ActionDelete)).Delete("/{onboardingID}", h.handleDeleteOnboarding)
	})
}

func (h *Handler) handleListOnboarding(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	page := shared.ParsePagination(r, 50, 200)
	filter := h.Scope.TenantFilter(actor, authz.ResourceOnboarding)
	records, err := h.Store.ListOnboarding(r.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, records, reqID)
}

func (h *Handler) handleCreateOnboarding(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload employee.Onboarding
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("candidateName", payload.CandidateName, "candidate name is required")
	v.Required("candidateEmail", payload.CandidateEmail, "candidate email is required")
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateOnboarding(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "onboarding.create", "onboarding", id, nil, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	filter := h.Scope.TenantFilter(actor, authz.ResourceOnboarding)
	rec, err := h.Store.GetOnboarding(r.Context(), filter, chi.URLParam(r, "onboardingID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, rec, reqID)
}

func (h *Handler) handleUpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	onboardingID := chi.URLParam(r, "onboardingID")

	var payload employee.Onboarding
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = onboardingID
	if payload.Status == "" {
		payload.Status = "pending"
	}

	filter := h.Scope.TenantFilter(actor, authz.ResourceOnboarding)
	if err := h.Store.UpdateOnboarding(r.Context(), filter, payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "onboarding.update", "onboarding", onboardingID, nil, payload)
	api.Success(w, map[string]string{"id": onboardingID}, reqID)
}

func (h *Handler) handleDeleteOnboarding(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	onboardingID := chi.URLParam(r, "onboardingID")

	filter := h.Scope.TenantFilter(actor, authz.ResourceOnboarding)
	if err := h.Store.DeleteOnboarding(r.Context(), filter, onboardingID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "onboarding.delete", "onboarding", onboardingID, nil, nil)
	api.Success(w, map[string]string{"id": onboardingID}, reqID)
}
