package course_service

import (
	"context"
	"testing"

	"parpass-api/internal/models"
	"parpass-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCourseRepo struct {
	created *models.Course
	courses map[string]*models.Course
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	course.ID = "course-new"
	f.created = course
	return nil
}
func (f *fakeCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return f.courses[id], nil
}
func (f *fakeCourseRepo) GetActive(ctx context.Context, tier string) ([]models.Course, error) {
	return []models.Course{}, nil
}
func (f *fakeCourseRepo) GetActiveWithRatings(ctx context.Context, tier string) ([]models.CourseWithRating, error) {
	return []models.CourseWithRating{}, nil
}
func (f *fakeCourseRepo) GetCandidates(ctx context.Context, coreOnly bool) ([]models.CourseCandidate, error) {
	return nil, nil
}

func TestCreateCourse_Defaults(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := NewCourseService(repo)

	course := &models.Course{Name: "Windsor Parke"}
	require.NoError(t, svc.CreateCourse(context.Background(), course))

	assert.Equal(t, 18, repo.created.Holes)
	assert.Equal(t, models.TierCore, repo.created.TierRequired)
}

func TestCreateCourse_KeepsExplicitValues(t *testing.T) {
	repo := &fakeCourseRepo{}
	svc := NewCourseService(repo)

	course := &models.Course{Name: "Dunes", Holes: 9, TierRequired: models.TierPremium}
	require.NoError(t, svc.CreateCourse(context.Background(), course))

	assert.Equal(t, 9, repo.created.Holes)
	assert.Equal(t, models.TierPremium, repo.created.TierRequired)
}

func TestGetCourse(t *testing.T) {
	repo := &fakeCourseRepo{courses: map[string]*models.Course{"c1": {ID: "c1", Name: "Hyde Park"}}}
	svc := NewCourseService(repo)

	course, err := svc.GetCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Hyde Park", course.Name)

	_, err = svc.GetCourse(context.Background(), "missing")
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}
