package web

import (
	"net/http"
	"testing"

	"parpass-api/internal/models"
	"parpass-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCourses_TierFilter(t *testing.T) {
	ts := newTestServer()
	ts.courses.courses = []models.Course{{ID: courseID, Name: "Hyde Park", TierRequired: models.TierCore}}

	rr := ts.do(t, http.MethodGet, "/api/courses?tier=core", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "core", ts.courses.requestedTier)
	assert.Contains(t, rr.Body.String(), `"name":"Hyde Park"`)
	assert.NotContains(t, rr.Body.String(), "average_rating")
}

func TestListCourses_WithRatings(t *testing.T) {
	ts := newTestServer()
	ts.courses.withRatings = []models.CourseWithRating{
		{Course: models.Course{ID: courseID, Name: "Hyde Park"}, AverageRating: 4.5, ReviewCount: 2},
	}

	rr := ts.do(t, http.MethodGet, "/api/courses?include=ratings", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"average_rating":4.5`)
	assert.Contains(t, rr.Body.String(), `"review_count":2`)
}

func TestCreateCourse(t *testing.T) {
	ts := newTestServer()

	rr := ts.do(t, http.MethodPost, "/api/courses", map[string]any{
		"name":    "Hyde Park",
		"address": "6439 Hyde Grove Ave",
		"city":    "Jacksonville",
		"state":   "FL",
		"zip":     "32210",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, courseID, decodeBody(t, rr)["id"])
	assert.Equal(t, "Hyde Park", ts.courses.created.Name)
}

func TestCreateCourse_RejectsUnknownTier(t *testing.T) {
	ts := newTestServer()

	rr := ts.do(t, http.MethodPost, "/api/courses", map[string]any{
		"name":          "Hyde Park",
		"address":       "6439 Hyde Grove Ave",
		"city":          "Jacksonville",
		"state":         "FL",
		"zip":           "32210",
		"tier_required": "platinum",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "tier_required must be one of: core premium", decodeBody(t, rr)["error"])
}

func TestGetCourse_NotFound(t *testing.T) {
	ts := newTestServer()
	ts.courses.err = service.ErrCourseNotFound

	rr := ts.do(t, http.MethodGet, "/api/courses/"+courseID, nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Course not found"}`, rr.Body.String())
}

func TestSubmitReview(t *testing.T) {
	ts := newTestServer()

	rr := ts.do(t, http.MethodPost, "/api/courses/"+courseID+"/reviews", map[string]any{
		"member_id": memberID,
		"rating":    5,
		"comment":   "Fast greens",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	require.NotNil(t, ts.reviews.submitted)
	assert.Equal(t, courseID, ts.reviews.submitted.CourseID)
	assert.Equal(t, 5, ts.reviews.submitted.Rating)
	assert.Equal(t, "Fast greens", *ts.reviews.submitted.Comment)
}

func TestSubmitReview_Refusals(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrInvalidRating, http.StatusBadRequest},
		{service.ErrReviewNotAllowed, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			ts := newTestServer()
			ts.reviews.err = tt.err

			rr := ts.do(t, http.MethodPost, "/api/courses/"+courseID+"/reviews", map[string]any{
				"member_id": memberID,
				"rating":    7,
			})

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.err.Error(), decodeBody(t, rr)["error"])
		})
	}
}

func TestGetCourseRating(t *testing.T) {
	ts := newTestServer()
	ts.reviews.rating = &models.CourseRating{AverageRating: 4.3, ReviewCount: 3}

	rr := ts.do(t, http.MethodGet, "/api/courses/"+courseID+"/rating", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"average_rating":4.3,"review_count":3}`, rr.Body.String())
}

func TestHealthPlans(t *testing.T) {
	ts := newTestServer()

	rr := ts.do(t, http.MethodPost, "/api/health-plans", map[string]any{
		"name":         "Blue Shield Gold",
		"plan_tier_id": planID,
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, ts.healthPlans.created.IsActive)

	rr = ts.do(t, http.MethodPost, "/api/health-plans", map[string]any{
		"name":         "Legacy Silver",
		"plan_tier_id": planID,
		"is_active":    false,
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.False(t, ts.healthPlans.created.IsActive)
}

func TestRoundsByMonth(t *testing.T) {
	ts := newTestServer()
	ts.stats.months = []models.MonthlyRounds{{Month: "2026-09", Rounds: 0}, {Month: "2026-10", Rounds: 4}}

	rr := ts.do(t, http.MethodGet, "/api/stats/rounds-by-month", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"month":"2026-09","rounds":0},{"month":"2026-10","rounds":4}]`, rr.Body.String())
}
