package member

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	database "parpass-api/pkg"

	"github.com/jmoiron/sqlx"
)

const selectMemberWithTier = `
	SELECT
		m.id, m.health_plan_id, m.first_name, m.last_name, m.email,
		m.parpass_code, m.status, m.created_at,
		hp.name AS health_plan_name,
		pt.name AS tier,
		pt.monthly_rounds
	FROM members m
	JOIN health_plans hp ON m.health_plan_id = hp.id
	JOIN plan_tiers pt ON hp.plan_tier_id = pt.id
`

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (health_plan_id, first_name, last_name, email, parpass_code, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := database.Conn(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		member.HealthPlanID,
		member.FirstName,
		member.LastName,
		member.Email,
		member.ParpassCode,
		member.Status,
	).Scan(&member.ID, &member.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *memberRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := database.Conn(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM members`); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return count, nil
}

func (r *memberRepository) GetWithTier(ctx context.Context, id string) (*models.MemberWithTier, error) {
	return r.getOne(ctx, selectMemberWithTier+`WHERE m.id = $1`, id)
}

func (r *memberRepository) GetByCode(ctx context.Context, code string) (*models.MemberWithTier, error) {
	return r.getOne(ctx, selectMemberWithTier+`WHERE m.parpass_code = $1`, code)
}

func (r *memberRepository) getOne(ctx context.Context, query string, arg string) (*models.MemberWithTier, error) {
	var member models.MemberWithTier
	err := database.Conn(ctx, r.db).GetContext(ctx, &member, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get member: %w", err)
	}
	return &member, nil
}
