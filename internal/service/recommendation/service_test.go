package recommendation_service

import (
	"context"
	"errors"
	"testing"

	"parpass-api/internal/models"
	"parpass-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemberRepo struct {
	member *models.MemberWithTier
}

func (f *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error { return nil }
func (f *fakeMemberRepo) Count(ctx context.Context) (int, error) { return 0, nil }
func (f *fakeMemberRepo) GetByCode(ctx context.Context, code string) (*models.MemberWithTier, error) {
	return nil, nil
}
func (f *fakeMemberRepo) GetWithTier(ctx context.Context, id string) (*models.MemberWithTier, error) {
	return f.member, nil
}

type fakeCourseRepo struct {
	candidates []models.CourseCandidate
	coreOnly   *bool
	err        error
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error { return nil }
func (f *fakeCourseRepo) GetByID(ctx context.Context, id string) (*models.Course, error) {
	return nil, nil
}
func (f *fakeCourseRepo) GetActive(ctx context.Context, tier string) ([]models.Course, error) {
	return nil, nil
}
func (f *fakeCourseRepo) GetActiveWithRatings(ctx context.Context, tier string) ([]models.CourseWithRating, error) {
	return nil, nil
}
func (f *fakeCourseRepo) GetCandidates(ctx context.Context, coreOnly bool) ([]models.CourseCandidate, error) {
	f.coreOnly = &coreOnly
	if f.err != nil {
		return nil, f.err
	}
	var out []models.CourseCandidate
	for _, c := range f.candidates {
		if coreOnly && c.TierRequired != models.TierCore {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeCheckInRepo struct {
	playedIDs    []string
	playedCities []string
}

func (f *fakeCheckInRepo) Create(ctx context.Context, checkIn *models.CheckIn) error { return nil }
func (f *fakeCheckInRepo) CountThisMonth(ctx context.Context, memberID string) (int, error) {
	return 0, nil
}
func (f *fakeCheckInRepo) CountForCourse(ctx context.Context, memberID, courseID string) (int, error) {
	return 0, nil
}
func (f *fakeCheckInRepo) GetHistory(ctx context.Context, memberID string, limit int) ([]models.CheckInWithCourse, error) {
	return nil, nil
}
func (f *fakeCheckInRepo) GetPlayedCourseIDs(ctx context.Context, memberID string) ([]string, error) {
	return f.playedIDs, nil
}
func (f *fakeCheckInRepo) GetPlayedCities(ctx context.Context, memberID string) ([]string, error) {
	return f.playedCities, nil
}

func member(tier string) *models.MemberWithTier {
	return &models.MemberWithTier{Member: models.Member{ID: "m1", Status: models.MemberStatusActive}, Tier: tier, MonthlyRounds: 4}
}

func TestRecommend_MemberNotFound(t *testing.T) {
	svc := NewRecommendationService(&fakeMemberRepo{}, &fakeCourseRepo{}, &fakeCheckInRepo{})

	_, err := svc.Recommend(context.Background(), "ghost")

	assert.ErrorIs(t, err, service.ErrMemberNotFound)
}

func TestRecommend_CoreMemberSeesCoreCoursesOnly(t *testing.T) {
	courses := &fakeCourseRepo{candidates: []models.CourseCandidate{
		candidate("core-1", "Jacksonville", models.TierCore, 1, 1),
		candidate("prem-1", "Ponte Vedra", models.TierPremium, 9, 9),
	}}
	svc := NewRecommendationService(&fakeMemberRepo{member: member(models.TierCore)}, courses, &fakeCheckInRepo{})

	got, err := svc.Recommend(context.Background(), "m1")

	require.NoError(t, err)
	require.NotNil(t, courses.coreOnly)
	assert.True(t, *courses.coreOnly)
	require.Len(t, got, 1)
	assert.Equal(t, "core-1", got[0].ID)
	assert.Equal(t, "Recommended for you", got[0].Reason)
}

func TestRecommend_PremiumMemberNeverGetsPlayedCourses(t *testing.T) {
	courses := &fakeCourseRepo{candidates: []models.CourseCandidate{
		candidate("core-1", "Jacksonville", models.TierCore, 4, 2),
		candidate("prem-1", "Ponte Vedra", models.TierPremium, 9, 9),
		candidate("prem-2", "Amelia Island", models.TierPremium, 0, 0),
	}}
	checkIns := &fakeCheckInRepo{playedIDs: []string{"prem-1"}, playedCities: []string{"Ponte Vedra"}}
	svc := NewRecommendationService(&fakeMemberRepo{member: member(models.TierPremium)}, courses, checkIns)

	got, err := svc.Recommend(context.Background(), "m1")

	require.NoError(t, err)
	assert.False(t, *courses.coreOnly)
	require.Len(t, got, 2)
	assert.Equal(t, "core-1", got[0].ID)
	assert.Equal(t, "prem-2", got[1].ID)
	assert.Equal(t, "Premium course", got[1].Reason)
}

func TestRecommend_StoreError(t *testing.T) {
	courses := &fakeCourseRepo{err: errors.New("database error")}
	svc := NewRecommendationService(&fakeMemberRepo{member: member(models.TierCore)}, courses, &fakeCheckInRepo{})

	_, err := svc.Recommend(context.Background(), "m1")

	require.Error(t, err)
	assert.Zero(t, service.KindOf(err))
}
