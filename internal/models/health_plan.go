package models

import "time"

const (
	TierCore    = "core"
	TierPremium = "premium"
)

type PlanTier struct {
	ID            string `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	MonthlyRounds int    `db:"monthly_rounds" json:"monthly_rounds"`
}

type HealthPlan struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	PlanTierID string    `db:"plan_tier_id" json:"plan_tier_id"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type HealthPlanWithTier struct {
	HealthPlan
	TierName      string `db:"tier_name" json:"tier_name"`
	MonthlyRounds int    `db:"monthly_rounds" json:"monthly_rounds"`
}
