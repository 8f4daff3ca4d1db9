package recommendation_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
)

const maxRecommendations = 5

type recommendationService struct {
	memberRepo  repository.MemberRepository
	courseRepo  repository.CourseRepository
	checkInRepo repository.CheckInRepository
}

func NewRecommendationService(
	memberRepo repository.MemberRepository,
	courseRepo repository.CourseRepository,
	checkInRepo repository.CheckInRepository,
) service.RecommendationService {
	return &recommendationService{
		memberRepo:  memberRepo,
		courseRepo:  courseRepo,
		checkInRepo: checkInRepo,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, memberID string) ([]models.Recommendation, error) {
	member, err := s.memberRepo.GetWithTier(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, service.ErrMemberNotFound
	}

	playedIDs, err := s.checkInRepo.GetPlayedCourseIDs(ctx, memberID)
	if err != nil {
		return nil, err
	}

	playedCities, err := s.checkInRepo.GetPlayedCities(ctx, memberID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.courseRepo.GetCandidates(ctx, !member.IsPremium())
	if err != nil {
		return nil, err
	}

	return Rank(candidates, playedIDs, playedCities, maxRecommendations), nil
}
