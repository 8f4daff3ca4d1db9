package healthplan

import (
	"context"
	"fmt"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	database "parpass-api/pkg"

	"github.com/jmoiron/sqlx"
)

type healthPlanRepository struct {
	db *sqlx.DB
}

func NewHealthPlanRepository(db *sqlx.DB) repository.HealthPlanRepository {
	return &healthPlanRepository{db: db}
}

func (r *healthPlanRepository) Create(ctx context.Context, plan *models.HealthPlan) error {
	query := `
		INSERT INTO health_plans (name, plan_tier_id, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx, query, plan.Name, plan.PlanTierID, plan.IsActive).
		Scan(&plan.ID, &plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert health plan: %w", err)
	}
	return nil
}

func (r *healthPlanRepository) GetActiveWithTier(ctx context.Context) ([]models.HealthPlanWithTier, error) {
	query := `
		SELECT
			hp.id, hp.name, hp.plan_tier_id, hp.is_active, hp.created_at,
			pt.name AS tier_name,
			pt.monthly_rounds
		FROM health_plans hp
		JOIN plan_tiers pt ON hp.plan_tier_id = pt.id
		WHERE hp.is_active = true
		ORDER BY hp.name
	`

	plans := []models.HealthPlanWithTier{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &plans, query); err != nil {
		return nil, fmt.Errorf("list health plans: %w", err)
	}
	return plans, nil
}

func (r *healthPlanRepository) GetTiers(ctx context.Context) ([]models.PlanTier, error) {
	query := `SELECT id, name, monthly_rounds FROM plan_tiers ORDER BY monthly_rounds, name`

	tiers := []models.PlanTier{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &tiers, query); err != nil {
		return nil, fmt.Errorf("list plan tiers: %w", err)
	}
	return tiers, nil
}
