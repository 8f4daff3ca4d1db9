package web

import (
	"net/http"

	"parpass-api/internal/models"
)

const includeRatings = "ratings"

// ListCourses lists active courses, optionally filtered by ?tier= and
// extended with rating aggregates by ?include=ratings.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	tier := r.URL.Query().Get("tier")

	if r.URL.Query().Get("include") == includeRatings {
		courses, err := h.courseService.ListCoursesWithRatings(r.Context(), tier)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, nonNil(courses))
		return
	}

	courses, err := h.courseService.ListCourses(r.Context(), tier)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(courses))
}

func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	course := &models.Course{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Holes:        req.Holes,
		TierRequired: req.TierRequired,
		Phone:        req.Phone,
	}
	if err := h.courseService.CreateCourse(r.Context(), course); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, course)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "id", msgInvalidCourse)
	if !ok {
		return
	}

	course, err := h.courseService.GetCourse(r.Context(), courseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *Handler) GetCourseReviews(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "id", msgInvalidCourse)
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetCourseReviews(r.Context(), courseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(reviews))
}

func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "id", msgInvalidCourse)
	if !ok {
		return
	}

	var req submitReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review := &models.Review{
		MemberID: req.MemberID,
		CourseID: courseID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := h.reviewService.SubmitReview(r.Context(), review); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) GetCourseRating(w http.ResponseWriter, r *http.Request) {
	courseID, ok := pathID(w, r, "id", msgInvalidCourse)
	if !ok {
		return
	}

	rating, err := h.reviewService.GetCourseRating(r.Context(), courseID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
