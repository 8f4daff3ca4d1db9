package favorite

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

type favoriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteRepository(db *sqlx.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, memberID, courseID string) (*models.Favorite, error) {
	query := `
		INSERT INTO favorites (member_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (member_id, course_id) DO NOTHING
		RETURNING member_id, course_id, created_at
	`

	var favorite models.Favorite
	err := database.Conn(ctx, r.db).GetContext(ctx, &favorite, query, memberID, courseID)
	if err != nil {
		// DO NOTHING returns no row for an existing pair
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("insert favorite: %w", err)
	}
	return &favorite, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, memberID, courseID string) error {
	query := `DELETE FROM favorites WHERE member_id = $1 AND course_id = $2`
	if _, err := database.Conn(ctx, r.db).ExecContext(ctx, query, memberID, courseID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) GetCourses(ctx context.Context, memberID string) ([]models.Course, error) {
	query := `
		SELECT gc.id, gc.name, gc.address, gc.city, gc.state, gc.zip, gc.latitude, gc.longitude,
			gc.holes, gc.tier_required, gc.phone, gc.is_active, gc.created_at
		FROM favorites f
		JOIN golf_courses gc ON f.course_id = gc.id
		WHERE f.member_id = $1
		ORDER BY gc.name
	`

	courses := []models.Course{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &courses, query, memberID); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return courses, nil
}
