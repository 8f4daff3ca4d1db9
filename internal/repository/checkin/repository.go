package checkin

import (
	"context"
	"fmt"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	database "parpass-api/pkg"

	"github.com/jmoiron/sqlx"
)

// checkInRepository reads and appends to the golf_utilization ledger.
// Rows are never updated or deleted.
type checkInRepository struct {
	db *sqlx.DB
}

func NewCheckInRepository(db *sqlx.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *models.CheckIn) error {
	query := `
		INSERT INTO golf_utilization (member_id, course_id, holes_played)
		VALUES ($1, $2, $3)
		RETURNING id, checked_in_at
	`
	err := database.Conn(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		checkIn.MemberID,
		checkIn.CourseID,
		checkIn.HolesPlayed,
	).Scan(&checkIn.ID, &checkIn.CheckedInAt)
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	return nil
}

// CountThisMonth counts the member's rounds since the start of the
// database's current month. There is no upper bound.
func (r *checkInRepository) CountThisMonth(ctx context.Context, memberID string) (int, error) {
	query := `
		SELECT COUNT(*) AS rounds_used
		FROM golf_utilization
		WHERE member_id = $1
		AND checked_in_at >= DATE_TRUNC('month', NOW())
	`

	var count int
	if err := database.Conn(ctx, r.db).GetContext(ctx, &count, query, memberID); err != nil {
		return 0, fmt.Errorf("count rounds: %w", err)
	}
	return count, nil
}

func (r *checkInRepository) CountForCourse(ctx context.Context, memberID, courseID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM golf_utilization
		WHERE member_id = $1 AND course_id = $2
	`

	var count int
	if err := database.Conn(ctx, r.db).GetContext(ctx, &count, query, memberID, courseID); err != nil {
		return 0, fmt.Errorf("count course rounds: %w", err)
	}
	return count, nil
}

func (r *checkInRepository) GetHistory(ctx context.Context, memberID string, limit int) ([]models.CheckInWithCourse, error) {
	query := `
		SELECT
			gu.id, gu.member_id, gu.course_id, gu.holes_played, gu.checked_in_at,
			gc.name AS course_name,
			gc.city,
			gc.state,
			gc.tier_required
		FROM golf_utilization gu
		JOIN golf_courses gc ON gu.course_id = gc.id
		WHERE gu.member_id = $1
		ORDER BY gu.checked_in_at DESC
		LIMIT $2
	`

	history := []models.CheckInWithCourse{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &history, query, memberID, limit); err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return history, nil
}

func (r *checkInRepository) GetPlayedCourseIDs(ctx context.Context, memberID string) ([]string, error) {
	query := `SELECT DISTINCT course_id FROM golf_utilization WHERE member_id = $1`

	var ids []string
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &ids, query, memberID); err != nil {
		return nil, fmt.Errorf("get played courses: %w", err)
	}
	return ids, nil
}

func (r *checkInRepository) GetPlayedCities(ctx context.Context, memberID string) ([]string, error) {
	query := `
		SELECT DISTINCT gc.city
		FROM golf_utilization gu
		JOIN golf_courses gc ON gu.course_id = gc.id
		WHERE gu.member_id = $1
	`

	var cities []string
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &cities, query, memberID); err != nil {
		return nil, fmt.Errorf("get played cities: %w", err)
	}
	return cities, nil
}
