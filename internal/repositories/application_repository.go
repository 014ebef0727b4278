package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists for this job")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id uint) (*models.Application, error)
	ExistsForUserAndJob(userID, jobID uint) (bool, error)
	FindByJob(jobID uint, page, pageSize int) ([]models.Application, int64, error)
	FindByUser(userID uint) ([]models.Application, error)
	UpdateStatus(id uint, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	// The composite unique index on (user_id, job_id) catches the race the
	// pre-insert existence check cannot.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrApplicationExists
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ExistsForUserAndJob(userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) FindByJob(jobID uint, page, pageSize int) ([]models.Application, int64, error) {
	query := r.db.Where("job_id = ?", jobID)

	var total int64
	if err := query.Model(&models.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []models.Application
	err := query.Preload("User").Preload("User.Profile").
		Order("applied_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&applications).Error

	return applications, total, err
}

func (r *ApplicationRepositoryImpl) FindByUser(userID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Company").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uint, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
