package review_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
)

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	checkInRepo repository.CheckInRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, checkInRepo repository.CheckInRepository) service.ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		checkInRepo: checkInRepo,
	}
}

// SubmitReview validates the rating, requires at least one round at the
// course, then creates or replaces the member's review.
func (s *reviewService) SubmitReview(ctx context.Context, review *models.Review) error {
	if review.Rating < models.MinRating || review.Rating > models.MaxRating {
		return service.ErrInvalidRating
	}

	rounds, err := s.checkInRepo.CountForCourse(ctx, review.MemberID, review.CourseID)
	if err != nil {
		return err
	}
	if rounds == 0 {
		return service.ErrReviewNotAllowed
	}

	return s.reviewRepo.Upsert(ctx, review)
}

func (s *reviewService) GetCourseReviews(ctx context.Context, courseID string) ([]models.ReviewWithMember, error) {
	return s.reviewRepo.GetByCourse(ctx, courseID)
}

func (s *reviewService) GetCourseRating(ctx context.Context, courseID string) (*models.CourseRating, error) {
	return s.reviewRepo.GetCourseRating(ctx, courseID)
}
