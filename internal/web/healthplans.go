package web

import (
	"net/http"

	"parpass-api/internal/models"
)

func (h *Handler) ListHealthPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.healthPlanService.GetActivePlans(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(plans))
}

func (h *Handler) CreateHealthPlan(w http.ResponseWriter, r *http.Request) {
	var req createHealthPlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan := &models.HealthPlan{
		Name:       req.Name,
		PlanTierID: req.PlanTierID,
		IsActive:   true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if err := h.healthPlanService.CreateHealthPlan(r.Context(), plan); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (h *Handler) ListPlanTiers(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.healthPlanService.GetTiers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(tiers))
}
