package healthplan_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
)

type healthPlanService struct {
	healthPlanRepo repository.HealthPlanRepository
}

func NewHealthPlanService(healthPlanRepo repository.HealthPlanRepository) service.HealthPlanService {
	return &healthPlanService{
		healthPlanRepo: healthPlanRepo,
	}
}

func (s *healthPlanService) CreateHealthPlan(ctx context.Context, plan *models.HealthPlan) error {
	return s.healthPlanRepo.Create(ctx, plan)
}

func (s *healthPlanService) GetActivePlans(ctx context.Context) ([]models.HealthPlanWithTier, error) {
	return s.healthPlanRepo.GetActiveWithTier(ctx)
}

func (s *healthPlanService) GetTiers(ctx context.Context) ([]models.PlanTier, error) {
	return s.healthPlanRepo.GetTiers(ctx)
}
