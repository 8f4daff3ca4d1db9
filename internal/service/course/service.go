package course_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
)

const defaultHoles = 18

type courseService struct {
	courseRepo repository.CourseRepository
}

func NewCourseService(courseRepo repository.CourseRepository) service.CourseService {
	return &courseService{
		courseRepo: courseRepo,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if course.Holes == 0 {
		course.Holes = defaultHoles
	}
	if course.TierRequired == "" {
		course.TierRequired = models.TierCore
	}
	return s.courseRepo.Create(ctx, course)
}

func (s *courseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, service.ErrCourseNotFound
	}
	return course, nil
}

func (s *courseService) ListCourses(ctx context.Context, tier string) ([]models.Course, error) {
	return s.courseRepo.GetActive(ctx, tier)
}

func (s *courseService) ListCoursesWithRatings(ctx context.Context, tier string) ([]models.CourseWithRating, error) {
	return s.courseRepo.GetActiveWithRatings(ctx, tier)
}
