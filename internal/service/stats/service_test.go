package stats_service

import (
	"context"
	"testing"

	"parpass-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	months []models.MonthlyRounds
	limits []int
}

func (f *fakeStatsRepo) GetOverview(ctx context.Context) (*models.StatsOverview, error) {
	return &models.StatsOverview{ActiveMembers: 3}, nil
}
func (f *fakeStatsRepo) GetPopularCourses(ctx context.Context, limit int) ([]models.PopularCourse, error) {
	f.limits = append(f.limits, limit)
	return []models.PopularCourse{}, nil
}
func (f *fakeStatsRepo) GetRoundsByMonth(ctx context.Context, months int) ([]models.MonthlyRounds, error) {
	f.limits = append(f.limits, months)
	return f.months, nil
}
func (f *fakeStatsRepo) GetTierBreakdown(ctx context.Context) ([]models.TierBreakdown, error) {
	return []models.TierBreakdown{}, nil
}
func (f *fakeStatsRepo) GetTopMembers(ctx context.Context, limit int) ([]models.TopMember, error) {
	f.limits = append(f.limits, limit)
	return []models.TopMember{}, nil
}

func TestRoundsByMonth_AsksForSixMonths(t *testing.T) {
	repo := &fakeStatsRepo{months: []models.MonthlyRounds{
		{Month: "2026-05", Rounds: 0},
		{Month: "2026-10", Rounds: 2},
	}}

	months, err := NewStatsService(repo).RoundsByMonth(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{6}, repo.limits)
	assert.Equal(t, repo.months, months)
}

func TestOverview(t *testing.T) {
	overview, err := NewStatsService(&fakeStatsRepo{}).Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, overview.ActiveMembers)
}

func TestRankingsAreLimitedToTen(t *testing.T) {
	repo := &fakeStatsRepo{}
	svc := NewStatsService(repo)

	_, err := svc.PopularCourses(context.Background())
	require.NoError(t, err)
	_, err = svc.TopMembers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{10, 10}, repo.limits)
}
