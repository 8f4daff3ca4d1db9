package models

import "time"

const (
	MemberStatusActive    = "active"
	MemberStatusInactive  = "inactive"
	MemberStatusSuspended = "suspended"
)

type Member struct {
	ID           string    `db:"id" json:"id"`
	HealthPlanID string    `db:"health_plan_id" json:"health_plan_id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	ParpassCode  string    `db:"parpass_code" json:"parpass_code"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// MemberWithTier is a member joined through health_plans to plan_tiers.
type MemberWithTier struct {
	Member
	HealthPlanName string `db:"health_plan_name" json:"health_plan_name"`
	Tier           string `db:"tier" json:"tier"`
	MonthlyRounds  int    `db:"monthly_rounds" json:"monthly_rounds"`
}

func (m *MemberWithTier) IsActive() bool {
	return m.Status == MemberStatusActive
}

func (m *MemberWithTier) IsPremium() bool {
	return m.Tier == TierPremium
}

// CREATE TABLE members (
//     id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//     health_plan_id UUID NOT NULL REFERENCES health_plans(id),
//     first_name VARCHAR(100) NOT NULL,
//     last_name VARCHAR(100) NOT NULL,
//     email VARCHAR(255) NOT NULL,
//     parpass_code VARCHAR(20) NOT NULL UNIQUE,
//     status VARCHAR(20) NOT NULL DEFAULT 'active',
//     created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
// );
