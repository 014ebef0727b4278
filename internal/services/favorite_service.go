package services

import (
	"context"
	"errors"
	"time"

	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/pkg/apperrors"
)

type FavoriteService interface {
	Add(ctx context.Context, userID, jobID uint) (*models.Favorite, error)
	List(ctx context.Context, userID uint) ([]models.Favorite, error)
	IsFavorite(ctx context.Context, userID, jobID uint) (bool, error)
	Remove(ctx context.Context, userID, jobID uint) error
	RemoveByID(ctx context.Context, userID, favoriteID uint) error
}

type favoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	jobRepo      repositories.JobRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, jobRepo repositories.JobRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, jobRepo: jobRepo}
}

func (s *favoriteService) Add(ctx context.Context, userID, jobID uint) (*models.Favorite, error) {
	if _, err := s.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "favorites", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.favoriteRepo.ExistsForUserAndJob(userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(nil, "favorites", "Job is already in favorites")
	}

	favorite := &models.Favorite{
		UserID:  userID,
		JobID:   jobID,
		SavedAt: time.Now(),
	}
	if err := s.favoriteRepo.Create(favorite); err != nil {
		if errors.Is(err, repositories.ErrFavoriteExists) {
			return nil, apperrors.ErrAlreadyExists(err, "favorites", "Job is already in favorites")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "job added to favorites", "job_id", jobID)
	return favorite, nil
}

func (s *favoriteService) List(ctx context.Context, userID uint) ([]models.Favorite, error) {
	favorites, err := s.favoriteRepo.FindByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return favorites, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID, jobID uint) (bool, error) {
	exists, err := s.favoriteRepo.ExistsForUserAndJob(userID, jobID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return exists, nil
}

func (s *favoriteService) Remove(ctx context.Context, userID, jobID uint) error {
	if err := s.favoriteRepo.Delete(userID, jobID); err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err, "favorites", "Job is not in favorites")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "job removed from favorites", "job_id", jobID)
	return nil
}

func (s *favoriteService) RemoveByID(ctx context.Context, userID, favoriteID uint) error {
	if err := s.favoriteRepo.DeleteByID(userID, favoriteID); err != nil {
		if errors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err, "favorites", "Favorite not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "favorite removed", "favorite_id", favoriteID)
	return nil
}
