package favorite_service

import (
	"context"

	"parpass-api/internal/models"
	"parpass-api/internal/repository"
	"parpass-api/internal/service"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository) service.FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, memberID, courseID string) (*models.Favorite, error) {
	return s.favoriteRepo.Create(ctx, memberID, courseID)
}

// RemoveFavorite succeeds whether or not the favorite existed.
func (s *favoriteService) RemoveFavorite(ctx context.Context, memberID, courseID string) error {
	return s.favoriteRepo.Delete(ctx, memberID, courseID)
}

func (s *favoriteService) GetFavorites(ctx context.Context, memberID string) ([]models.Course, error) {
	return s.favoriteRepo.GetCourses(ctx, memberID)
}
