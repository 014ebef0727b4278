package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

var (
	ErrCompanyNotFound      = errors.New("company not found")
	ErrCompanyAlreadyExists = errors.New("company already exists for this user")
	ErrStaffLinkNotFound    = errors.New("staff link not found")
	ErrStaffLinkExists      = errors.New("user is already linked to this company")
)

type CompanyRepository interface {
	Create(company *models.Company) error
	FindByID(id uint) (*models.Company, error)
	FindByUserID(userID uint) (*models.Company, error)
	FindByStaffUserID(userID uint) (*models.Company, error)
	FindAll(limit, offset int) ([]models.Company, int64, error)
	UpdateFields(companyID uint, fields map[string]interface{}) error
	DeleteCascade(companyID uint) error

	// Staff roster (company_admin links)
	CreateStaffLink(link *models.CompanyAdmin) error
	FindStaffLink(companyID, userID uint) (*models.CompanyAdmin, error)
	FindStaff(companyID uint) ([]models.CompanyAdmin, error)
	DeleteStaffLink(companyID, userID uint) error

	// Dashboard aggregates
	CountApplicants(companyID uint) (int64, error)
}

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Create(company *models.Company) error {
	// One company per owning user.
	var existing models.Company
	if err := r.db.Where("user_id = ?", company.UserID).First(&existing).Error; err == nil {
		return ErrCompanyAlreadyExists
	}

	err := r.db.Create(company).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCompanyAlreadyExists
	}
	return err
}

func (r *CompanyRepositoryImpl) FindByID(id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindByUserID(userID uint) (*models.Company, error) {
	var company models.Company
	err := r.db.First(&company, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByStaffUserID resolves the company a staff member belongs to through the
// company_admins link table.
func (r *CompanyRepositoryImpl) FindByStaffUserID(userID uint) (*models.Company, error) {
	var company models.Company
	err := r.db.Joins("JOIN company_admins ON company_admins.company_id = companies.id").
		Where("company_admins.user_id = ?", userID).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) FindAll(limit, offset int) ([]models.Company, int64, error) {
	var companies []models.Company
	var total int64

	if err := r.db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&companies).Error
	return companies, total, err
}

func (r *CompanyRepositoryImpl) UpdateFields(companyID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.Model(&models.Company{}).Where("id = ?", companyID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

// DeleteCascade removes the company and everything hanging off it in one
// transaction: staff links, applications for its jobs, the jobs, then the
// company row. Any failure rolls the whole delete back.
func (r *CompanyRepositoryImpl) DeleteCascade(companyID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var company models.Company
		if err := tx.First(&company, "id = ?", companyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCompanyNotFound
			}
			return err
		}

		if err := tx.Where("company_id = ?", companyID).Delete(&models.CompanyAdmin{}).Error; err != nil {
			return err
		}

		var jobIDs []uint
		if err := tx.Model(&models.Job{}).Where("company_id = ?", companyID).
			Pluck("id", &jobIDs).Error; err != nil {
			return err
		}

		if len(jobIDs) > 0 {
			if err := tx.Where("job_id IN ?", jobIDs).Delete(&models.Application{}).Error; err != nil {
				return err
			}
			if err := tx.Where("job_id IN ?", jobIDs).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("company_id = ?", companyID).Delete(&models.Job{}).Error; err != nil {
			return err
		}

		return tx.Delete(&company).Error
	})
}

func (r *CompanyRepositoryImpl) CreateStaffLink(link *models.CompanyAdmin) error {
	var existing models.CompanyAdmin
	if err := r.db.Where("company_id = ? AND user_id = ?", link.CompanyID, link.UserID).
		First(&existing).Error; err == nil {
		return ErrStaffLinkExists
	}

	err := r.db.Create(link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrStaffLinkExists
	}
	return err
}

func (r *CompanyRepositoryImpl) FindStaffLink(companyID, userID uint) (*models.CompanyAdmin, error) {
	var link models.CompanyAdmin
	err := r.db.Where("company_id = ? AND user_id = ?", companyID, userID).First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *CompanyRepositoryImpl) FindStaff(companyID uint) ([]models.CompanyAdmin, error) {
	var staff []models.CompanyAdmin
	err := r.db.Preload("User").Where("company_id = ?", companyID).
		Order("created_at ASC").Find(&staff).Error
	return staff, err
}

func (r *CompanyRepositoryImpl) DeleteStaffLink(companyID, userID uint) error {
	result := r.db.Where("company_id = ? AND user_id = ?", companyID, userID).
		Delete(&models.CompanyAdmin{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaffLinkNotFound
	}
	return nil
}

func (r *CompanyRepositoryImpl) CountApplicants(companyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Count(&count).Error
	return count, err
}
