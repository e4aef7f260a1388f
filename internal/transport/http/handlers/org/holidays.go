package orghandler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrpay/internal/domain/authz"
	"hrpay/internal/domain/org"
	"hrpay/internal/transport/http/api"
	"hrpay/internal/transport/http/middleware"
	"hrpay/internal/transport/http/shared"
)

func (h *Handler) handleListHolidays(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			year = v
		}
	}

	out, err := h.Store.ListHolidays(r.Context(), authz.TenantOf(actor), year)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleCreateHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	var payload org.Holiday
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("name", payload.Name, "name is required")
	if payload.Date.IsZero() {
		v.Add("date", "holiday date is required")
	}
	if v.Reject(w, reqID) {
		return
	}

	id, err := h.Store.CreateHoliday(r.Context(), authz.TenantOf(actor), payload)
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "holiday.create", "holiday", id, payload)
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleGetHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())

	holiday, err := h.Store.GetHoliday(r.Context(), authz.TenantOf(actor), chi.URLParam(r, "holidayID"))
	if err != nil {
		api.FailError(w, err, reqID)
		return
	}
	api.Success(w, holiday, reqID)
}

func (h *Handler) handleUpdateHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	holidayID := chi.URLParam(r, "holidayID")

	var payload org.Holiday
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	payload.ID = holidayID

	if err := h.Store.UpdateHoliday(r.Context(), authz.TenantOf(actor), payload); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "holiday.update", "holiday", holidayID, payload)
	api.Success(w, map[string]string{"id": holidayID}, reqID)
}

func (h *Handler) handleDeleteHoliday(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	actor, _ := middleware.GetActor(r.Context())
	holidayID := chi.URLParam(r, "holidayID")

	if err := h.Store.DeleteHoliday(r.Context(), authz.TenantOf(actor), holidayID); err != nil {
		api.FailError(w, err, reqID)
		return
	}
	h.audit(r, actor, "holiday.delete", "holiday", holidayID, nil)
	api.Success(w, map[string]string{"id": holidayID}, reqID)
}
