package stats_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
)

const (
	popularCoursesLimit = 10
	topMembersLimit     = 10
	trailingMonths      = 6
)

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) service.StatsService {
	return &statsService{
		statsRepo: statsRepo,
	}
}

func (s *statsService) Overview(ctx context.Context) (*models.StatsOverview, error) {
	return s.statsRepo.GetOverview(ctx)
}

func (s *statsService) PopularCourses(ctx context.Context) ([]models.PopularCourse, error) {
	return s.statsRepo.GetPopularCourses(ctx, popularCoursesLimit)
}

// RoundsByMonth covers the current month and the five before it, oldest
// first, with empty months reported as zero.
func (s *statsService) RoundsByMonth(ctx context.Context) ([]models.MonthlyRounds, error) {
	return s.statsRepo.GetRoundsByMonth(ctx, trailingMonths)
}

func (s *statsService) TierBreakdown(ctx context.Context) ([]models.TierBreakdown, error) {
	return s.statsRepo.GetTierBreakdown(ctx)
}

func (s *statsService) TopMembers(ctx context.Context) ([]models.TopMember, error) {
	return s.statsRepo.GetTopMembers(ctx, topMembersLimit)
}
