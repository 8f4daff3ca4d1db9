package service

import (
	"context"

	"parpass-api/internal/models"
)

type CheckInService interface {
	// CheckIn authorizes and records one round of holesPlayed holes. A
	// holesPlayed below 1 is refused once the member and course have passed.
	CheckIn(ctx context.Context, memberID, courseID string, holesPlayed int) (*models.CheckInResult, error)
	// RoundsUsed counts the member's rounds in the database's current
	// calendar month.
	RoundsUsed(ctx context.Context, memberID string) (int, error)
	GetHistory(ctx context.Context, memberID string) ([]models.CheckInWithCourse, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, memberID string) ([]models.Recommendation, error)
}

type MemberService interface {
	CreateMember(ctx context.Context, member *models.Member) error
	GetByCode(ctx context.Context, code string) (*models.MemberWithTier, error)
	GetByID(ctx context.Context, id string) (*models.MemberWithTier, error)
}

type HealthPlanService interface {
	CreateHealthPlan(ctx context.Context, plan *models.HealthPlan) error
	GetActivePlans(ctx context.Context) ([]models.HealthPlanWithTier, error)
	GetTiers(ctx context.Context) ([]models.PlanTier, error)
}

type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) error
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	ListCourses(ctx context.Context, tier string) ([]models.Course, error)
	ListCoursesWithRatings(ctx context.Context, tier string) ([]models.CourseWithRating, error)
}

type FavoriteService interface {
	// AddFavorite returns (nil, nil) when the course is already a favorite.
	AddFavorite(ctx context.Context, memberID, courseID string) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, memberID, courseID string) error
	GetFavorites(ctx context.Context, memberID string) ([]models.Course, error)
}

type ReviewService interface {
	SubmitReview(ctx context.Context, review *models.Review) error
	GetCourseReviews(ctx context.Context, courseID string) ([]models.ReviewWithMember, error)
	GetCourseRating(ctx context.Context, courseID string) (*models.CourseRating, error)
}

type StatsService interface {
	Overview(ctx context.Context) (*models.StatsOverview, error)
	PopularCourses(ctx context.Context) ([]models.PopularCourse, error)
	RoundsByMonth(ctx context.Context) ([]models.MonthlyRounds, error)
	TierBreakdown(ctx context.Context) ([]models.TierBreakdown, error)
	TopMembers(ctx context.Context) ([]models.TopMember, error)
}

// CheckInNotifier is told about every committed check-in.
type CheckInNotifier interface {
	NotifyCheckIn(ctx context.Context, member *models.MemberWithTier, course *models.Course, result *models.CheckInResult) error
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
