package web

import "net/http"

func (h *Handler) StatsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.statsService.Overview(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) PopularCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.statsService.PopularCourses(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(courses))
}

func (h *Handler) RoundsByMonth(w http.ResponseWriter, r *http.Request) {
	months, err := h.statsService.RoundsByMonth(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, months)
}

func (h *Handler) TierBreakdown(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.statsService.TierBreakdown(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(tiers))
}

func (h *Handler) TopMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.statsService.TopMembers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(members))
}
