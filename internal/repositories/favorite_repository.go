package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFavoriteExists   = errors.New("job is already in favorites")
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	FindByUser(userID uint) ([]models.Favorite, error)
	ExistsForUserAndJob(userID, jobID uint) (bool, error)
	Delete(userID, jobID uint) error
	DeleteByID(userID, favoriteID uint) error
}

type FavoriteRepositoryImpl struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &FavoriteRepositoryImpl{db: db}
}

func (r *FavoriteRepositoryImpl) Create(favorite *models.Favorite) error {
	err := r.db.Create(favorite).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrFavoriteExists
	}
	return err
}

func (r *FavoriteRepositoryImpl) FindByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (r *FavoriteRepositoryImpl) ExistsForUserAndJob(userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *FavoriteRepositoryImpl) Delete(userID, jobID uint) error {
	result := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) DeleteByID(userID, favoriteID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", favoriteID, userID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
