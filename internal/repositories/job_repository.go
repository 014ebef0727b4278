package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter is a conjunctive filter built from the query string. Location and
// Search match case-insensitively; Search covers title and description.
type JobFilter struct {
	Location string `form:"location"`
	JobType  string `form:"job_type"`
	WorkMode string `form:"work_mode"`
	Search   string `form:"search"`
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uint) (*models.Job, error)
	FindAll(filter JobFilter) ([]models.Job, error)
	FindByCompany(companyID uint) ([]models.Job, error)
	UpdateFields(jobID uint, fields map[string]interface{}) error
	Delete(jobID uint) error
	CountByCompany(companyID uint) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Company").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindAll returns all matching jobs newest-first. This endpoint is
// deliberately unpaginated, unlike the per-job application listing.
func (r *JobRepositoryImpl) FindAll(filter JobFilter) ([]models.Job, error) {
	query := r.db.Preload("Company")

	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}
	if filter.WorkMode != "" {
		query = query.Where("work_mode = ?", filter.WorkMode)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByCompany(companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("company_id = ?", companyID).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateFields(jobID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.Model(&models.Job{}).Where("id = ?", jobID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(jobID uint) error {
	result := r.db.Delete(&models.Job{}, jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) CountByCompany(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("company_id = ?", companyID).Count(&count).Error
	return count, err
}
