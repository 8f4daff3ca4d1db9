package review

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"parpass-api/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestUpsert(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()
	comment := "Fast greens"

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (member_id, course_id)")).
		WithArgs("member-123", "course-456", 5, "Fast greens").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("review-1", now))

	review := &models.Review{MemberID: "member-123", CourseID: "course-456", Rating: 5, Comment: &comment}
	require.NoError(t, NewReviewRepository(db).Upsert(context.Background(), review))

	assert.Equal(t, "review-1", review.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_Error(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO reviews").WillReturnError(errors.New("check constraint"))

	err := NewReviewRepository(db).Upsert(context.Background(), &models.Review{MemberID: "m", CourseID: "c", Rating: 3})
	assert.Error(t, err)
}

func TestGetByCourse(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery("JOIN members m ON r.member_id = m.id").
		WithArgs("course-456").
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "course_id", "rating", "comment", "created_at", "member_first_name"}).
			AddRow("review-1", "member-123", "course-456", 4, nil, now, "John"))

	reviews, err := NewReviewRepository(db).GetByCourse(context.Background(), "course-456")

	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "John", reviews[0].MemberFirstName)
	assert.Nil(t, reviews[0].Comment)
}

func TestGetCourseRating(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("AVG\\(rating\\)").
		WithArgs("course-456").
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "review_count"}).AddRow(4.3, 3))

	rating, err := NewReviewRepository(db).GetCourseRating(context.Background(), "course-456")

	require.NoError(t, err)
	assert.Equal(t, 4.3, rating.AverageRating)
	assert.Equal(t, 3, rating.ReviewCount)
}
