package web

import (
	"net/http"

	"github.com/google/uuid"
)

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if !decode(w, r, &req) {
		return
	}

	result, err := h.checkInService.CheckIn(r.Context(), lookupID(req.MemberID), lookupID(req.CourseID), req.holesPlayed())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// lookupID maps a malformed id to the nil UUID, which matches no row, so a
// bad id is reported as not found at its usual place in the rule order.
func lookupID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil.String()
	}
	return parsed.String()
}
