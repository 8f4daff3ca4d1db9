package course

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

const courseColumns = `gc.id, gc.name, gc.address, gc.city, gc.state, gc.zip, gc.latitude, gc.longitude,
		gc.holes, gc.tier_required, gc.phone, gc.is_active, gc.created_at`

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) repository.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO golf_courses
		(name, address, city, state, zip, latitude, longitude, holes, tier_required, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, is_active, created_at
	`
	err := database.Conn(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		course.Name,
		course.Address,
		course.City,
		course.State,
		course.Zip,
		course.Latitude,
		course.Longitude,
		course.Holes,
		course.TierRequired,
		course.Phone,
	).Scan(&course.ID, &course.IsActive, &course.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM golf_courses gc WHERE gc.id = $1`

	var course models.Course
	if err := database.Conn(ctx, r.db).GetContext(ctx, &course, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return &course, nil
}

func (r *courseRepository) GetActive(ctx context.Context, tier string) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM golf_courses gc WHERE gc.is_active = true`
	var args []interface{}

	if tier != "" {
		query += ` AND gc.tier_required = $1`
		args = append(args, tier)
	}
	query += ` ORDER BY gc.name`

	courses := []models.Course{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *courseRepository) GetActiveWithRatings(ctx context.Context, tier string) ([]models.CourseWithRating, error) {
	query := `
		SELECT ` + courseColumns + `,
			COALESCE(ROUND(AVG(r.rating)::numeric, 1), 0)::float8 AS average_rating,
			COUNT(r.id) AS review_count
		FROM golf_courses gc
		LEFT JOIN reviews r ON r.course_id = gc.id
		WHERE gc.is_active = true`
	var args []interface{}

	if tier != "" {
		query += ` AND gc.tier_required = $1`
		args = append(args, tier)
	}
	query += `
		GROUP BY gc.id
		ORDER BY gc.name`

	courses := []models.CourseWithRating{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses with ratings: %w", err)
	}
	return courses, nil
}

func (r *courseRepository) GetCandidates(ctx context.Context, coreOnly bool) ([]models.CourseCandidate, error) {
	query := `
		SELECT ` + courseColumns + `,
			COUNT(gu.id) AS total_plays,
			COUNT(DISTINCT gu.member_id) AS unique_players
		FROM golf_courses gc
		LEFT JOIN golf_utilization gu ON gu.course_id = gc.id
		WHERE gc.is_active = true`
	var args []interface{}

	if coreOnly {
		query += ` AND gc.tier_required = $1`
		args = append(args, models.TierCore)
	}
	query += `
		GROUP BY gc.id
		ORDER BY gc.name`

	candidates := []models.CourseCandidate{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &candidates, query, args...); err != nil {
		return nil, fmt.Errorf("list course candidates: %w", err)
	}
	return candidates, nil
}
