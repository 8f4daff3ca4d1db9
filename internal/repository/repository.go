package repository

import (
	"context"

	"parpass-api/internal/models"
)

// Lookups return (nil, nil) when no row matches. Month boundaries are taken
// from the database clock.

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	Count(ctx context.Context) (int, error)
	GetWithTier(ctx context.Context, id string) (*models.MemberWithTier, error)
	GetByCode(ctx context.Context, code string) (*models.MemberWithTier, error)
}

type HealthPlanRepository interface {
	Create(ctx context.Context, plan *models.HealthPlan) error
	GetActiveWithTier(ctx context.Context) ([]models.HealthPlanWithTier, error)
	GetTiers(ctx context.Context) ([]models.PlanTier, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	GetActive(ctx context.Context, tier string) ([]models.Course, error)
	GetActiveWithRatings(ctx context.Context, tier string) ([]models.CourseWithRating, error)
	// GetCandidates returns active courses with network-wide play
	// aggregates, optionally limited to core courses.
	GetCandidates(ctx context.Context, coreOnly bool) ([]models.CourseCandidate, error)
}

type CheckInRepository interface {
	Create(ctx context.Context, checkIn *models.CheckIn) error
	CountThisMonth(ctx context.Context, memberID string) (int, error)
	CountForCourse(ctx context.Context, memberID, courseID string) (int, error)
	GetHistory(ctx context.Context, memberID string, limit int) ([]models.CheckInWithCourse, error)
	GetPlayedCourseIDs(ctx context.Context, memberID string) ([]string, error)
	GetPlayedCities(ctx context.Context, memberID string) ([]string, error)
}

type FavoriteRepository interface {
	// Create returns (nil, nil) when the pair already exists.
	Create(ctx context.Context, memberID, courseID string) (*models.Favorite, error)
	Delete(ctx context.Context, memberID, courseID string) error
	GetCourses(ctx context.Context, memberID string) ([]models.Course, error)
}

type ReviewRepository interface {
	Upsert(ctx context.Context, review *models.Review) error
	GetByCourse(ctx context.Context, courseID string) ([]models.ReviewWithMember, error)
	GetCourseRating(ctx context.Context, courseID string) (*models.CourseRating, error)
}

type StatsRepository interface {
	GetOverview(ctx context.Context) (*models.StatsOverview, error)
	GetPopularCourses(ctx context.Context, limit int) ([]models.PopularCourse, error)
	// GetRoundsByMonth returns the current month and the months-1 before it,
	// oldest first, including months without rounds.
	GetRoundsByMonth(ctx context.Context, months int) ([]models.MonthlyRounds, error)
	GetTierBreakdown(ctx context.Context) ([]models.TierBreakdown, error)
	GetTopMembers(ctx context.Context, limit int) ([]models.TopMember, error)
}
