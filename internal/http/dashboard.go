package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleDashboardGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "dashboard_get"

	d, err := h.Dashboards.Get(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dashboardResponse{Dashboard: d})
}

func (h *Handler) handleDashboardRefresh(w http.ResponseWriter, r *http.Request) {
	const handlerName = "dashboard_refresh"

	d, err := h.Dashboards.Refresh(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dashboardResponse{Dashboard: d})
}
