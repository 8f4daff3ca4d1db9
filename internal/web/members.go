package web

import (
	"net/http"

	"parpass-api/internal/models"
)

type usageResponse struct {
	RoundsUsed int `json:"rounds_used"`
}

func (h *Handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	member := &models.Member{
		HealthPlanID: req.HealthPlanID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
	}
	if err := h.memberService.CreateMember(r.Context(), member); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *Handler) GetMemberByCode(w http.ResponseWriter, r *http.Request) {
	member, err := h.memberService.GetByCode(r.Context(), urlParam(r, "code"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *Handler) GetMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}

	member, err := h.memberService.GetByID(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// GetUsage does not check that the member exists; an unknown id has used
// no rounds.
func (h *Handler) GetUsage(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}

	used, err := h.checkInService.RoundsUsed(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, usageResponse{RoundsUsed: used})
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}

	history, err := h.checkInService.GetHistory(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(history))
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}

	recommendations, err := h.recommendationService.Recommend(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(recommendations))
}

func (h *Handler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}

	courses, err := h.favoriteService.GetFavorites(r.Context(), memberID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(courses))
}

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}

	var req addFavoriteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	favorite, err := h.favoriteService.AddFavorite(r.Context(), memberID, req.CourseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if favorite == nil {
		writeJSON(w, http.StatusCreated, messageResponse{Message: msgAlreadyFavored})
		return
	}
	writeJSON(w, http.StatusCreated, favorite)
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathID(w, r, "id", msgInvalidMember)
	if !ok {
		return
	}
	courseID, ok := pathID(w, r, "courseId", msgInvalidCourse)
	if !ok {
		return
	}

	if err := h.favoriteService.RemoveFavorite(r.Context(), memberID, courseID); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msgFavRemoved})
}
