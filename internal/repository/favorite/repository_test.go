package favorite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

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

func TestCreate_Inserted(t *testing.T) {
	db, mock := setupMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (member_id, course_id) DO NOTHING")).
		WithArgs("member-123", "course-456").
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "course_id", "created_at"}).AddRow("member-123", "course-456", now))

	favorite, err := NewFavoriteRepository(db).Create(context.Background(), "member-123", "course-456")

	require.NoError(t, err)
	require.NotNil(t, favorite)
	assert.Equal(t, "course-456", favorite.CourseID)
}

func TestCreate_AlreadyExists(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs("member-123", "course-456").
		WillReturnRows(sqlmock.NewRows([]string{"member_id", "course_id", "created_at"}))

	favorite, err := NewFavoriteRepository(db).Create(context.Background(), "member-123", "course-456")

	require.NoError(t, err)
	assert.Nil(t, favorite)
}

func TestCreate_Error(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("INSERT INTO favorites").WillReturnError(errors.New("fk violation"))

	_, err := NewFavoriteRepository(db).Create(context.Background(), "member-123", "course-456")
	assert.Error(t, err)
}

func TestDelete_NoRowIsNotAnError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorites WHERE member_id = $1 AND course_id = $2")).
		WithArgs("member-123", "course-999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, NewFavoriteRepository(db).Delete(context.Background(), "member-123", "course-999"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourses(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery("FROM favorites f").
		WithArgs("member-123").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "address", "city", "state", "zip", "latitude", "longitude",
			"holes", "tier_required", "phone", "is_active", "created_at",
		}).AddRow("course-1", "Course A", "1 Fairway Dr", "Jacksonville", "FL", "32202", nil, nil, 18, "core", "904-555-0100", true, time.Now()))

	courses, err := NewFavoriteRepository(db).GetCourses(context.Background(), "member-123")

	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.NotNil(t, courses[0].Phone)
	assert.Equal(t, "904-555-0100", *courses[0].Phone)
}
