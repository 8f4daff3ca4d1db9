package review

import (
	"context"
	"fmt"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	database "parpass-api/pkg"

	"github.com/jmoiron/sqlx"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Upsert keeps a single review per (member, course); a resubmission replaces
// rating, comment and timestamp.
func (r *reviewRepository) Upsert(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (member_id, course_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (member_id, course_id)
		DO UPDATE SET
			rating = EXCLUDED.rating,
			comment = EXCLUDED.comment,
			created_at = CURRENT_TIMESTAMP
		RETURNING id, created_at
	`
	err := database.Conn(ctx, r.db).QueryRowxContext(
		ctx,
		query,
		review.MemberID,
		review.CourseID,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert review: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByCourse(ctx context.Context, courseID string) ([]models.ReviewWithMember, error) {
	query := `
		SELECT
			r.id, r.member_id, r.course_id, r.rating, r.comment, r.created_at,
			m.first_name AS member_first_name
		FROM reviews r
		JOIN members m ON r.member_id = m.id
		WHERE r.course_id = $1
		ORDER BY r.created_at DESC
	`

	reviews := []models.ReviewWithMember{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &reviews, query, courseID); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) GetCourseRating(ctx context.Context, courseID string) (*models.CourseRating, error) {
	query := `
		SELECT
			COALESCE(ROUND(AVG(rating)::numeric, 1), 0)::float8 AS average_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE course_id = $1
	`

	var rating models.CourseRating
	if err := database.Conn(ctx, r.db).GetContext(ctx, &rating, query, courseID); err != nil {
		return nil, fmt.Errorf("get course rating: %w", err)
	}
	return &rating, nil
}
