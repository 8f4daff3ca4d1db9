package stats

import (
	"context"
	"fmt"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	database "parpass-api/pkg"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetOverview(ctx context.Context) (*models.StatsOverview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM members WHERE status = 'active') AS active_members,
			(SELECT COUNT(*) FROM golf_courses WHERE is_active = true) AS active_courses,
			(SELECT COUNT(*) FROM golf_utilization) AS total_rounds,
			(SELECT COUNT(*) FROM golf_utilization WHERE checked_in_at >= DATE_TRUNC('month', NOW())) AS rounds_this_month
	`

	var overview models.StatsOverview
	if err := database.Conn(ctx, r.db).GetContext(ctx, &overview, query); err != nil {
		return nil, fmt.Errorf("get overview: %w", err)
	}
	return &overview, nil
}

func (r *statsRepository) GetPopularCourses(ctx context.Context, limit int) ([]models.PopularCourse, error) {
	query := `
		SELECT
			gc.id, gc.name, gc.city, gc.tier_required,
			COUNT(gu.id) AS total_rounds,
			COUNT(DISTINCT gu.member_id) AS unique_players
		FROM golf_courses gc
		JOIN golf_utilization gu ON gu.course_id = gc.id
		GROUP BY gc.id
		ORDER BY total_rounds DESC, gc.name
		LIMIT $1
	`

	courses := []models.PopularCourse{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &courses, query, limit); err != nil {
		return nil, fmt.Errorf("get popular courses: %w", err)
	}
	return courses, nil
}

func (r *statsRepository) GetRoundsByMonth(ctx context.Context, months int) ([]models.MonthlyRounds, error) {
	query := `
		SELECT
			TO_CHAR(m.month_start, 'YYYY-MM') AS month,
			COUNT(gu.id) AS rounds
		FROM generate_series(
			DATE_TRUNC('month', NOW()) - ($1::int - 1) * INTERVAL '1 month',
			DATE_TRUNC('month', NOW()),
			INTERVAL '1 month'
		) AS m(month_start)
		LEFT JOIN golf_utilization gu
			ON gu.checked_in_at >= m.month_start
			AND gu.checked_in_at < m.month_start + INTERVAL '1 month'
		GROUP BY m.month_start
		ORDER BY m.month_start
	`

	rows := []models.MonthlyRounds{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &rows, query, months); err != nil {
		return nil, fmt.Errorf("get rounds by month: %w", err)
	}
	return rows, nil
}

func (r *statsRepository) GetTierBreakdown(ctx context.Context) ([]models.TierBreakdown, error) {
	query := `
		SELECT
			pt.name AS tier,
			COUNT(DISTINCT m.id) AS members,
			COUNT(gu.id) AS rounds
		FROM plan_tiers pt
		LEFT JOIN health_plans hp ON hp.plan_tier_id = pt.id
		LEFT JOIN members m ON m.health_plan_id = hp.id AND m.status = 'active'
		LEFT JOIN golf_utilization gu ON gu.member_id = m.id
		GROUP BY pt.name
		ORDER BY pt.name
	`

	tiers := []models.TierBreakdown{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &tiers, query); err != nil {
		return nil, fmt.Errorf("get tier breakdown: %w", err)
	}
	return tiers, nil
}

func (r *statsRepository) GetTopMembers(ctx context.Context, limit int) ([]models.TopMember, error) {
	query := `
		SELECT
			m.id, m.first_name, m.last_name, m.parpass_code,
			pt.name AS tier,
			COUNT(gu.id) AS total_rounds
		FROM members m
		JOIN health_plans hp ON m.health_plan_id = hp.id
		JOIN plan_tiers pt ON hp.plan_tier_id = pt.id
		JOIN golf_utilization gu ON gu.member_id = m.id
		WHERE m.status = 'active'
		GROUP BY m.id, pt.name
		ORDER BY total_rounds DESC, m.last_name, m.first_name
		LIMIT $1
	`

	members := []models.TopMember{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &members, query, limit); err != nil {
		return nil, fmt.Errorf("get top members: %w", err)
	}
	return members, nil
}
