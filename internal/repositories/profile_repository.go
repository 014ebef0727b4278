package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")
)

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByUserID(userID uint) (*models.Profile, error)
	UpdateFields(userID uint, fields map[string]interface{}) error
	Delete(userID uint) error
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	var existing models.Profile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	}

	err := r.db.Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrProfileAlreadyExists
	}
	return err
}

func (r *ProfileRepositoryImpl) FindByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateFields(userID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) Delete(userID uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Profile{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
