package repositories

import (
	"errors"

	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

var (
	ErrSkillNotFound    = errors.New("skill not found")
	ErrSkillExists      = errors.New("skill already exists for this user")
	ErrInterestNotFound = errors.New("interest not found")
	ErrInterestExists   = errors.New("interest already exists for this user")
)

type SkillRepository interface {
	CreateSkill(skill *models.Skill) error
	FindSkillsByUser(userID uint) ([]models.Skill, error)
	UpdateSkill(userID, skillID uint, fields map[string]interface{}) error
	DeleteSkill(userID, skillID uint) error

	CreateInterest(interest *models.Interest) error
	FindInterestsByUser(userID uint) ([]models.Interest, error)
	DeleteInterest(userID, interestID uint) error
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) CreateSkill(skill *models.Skill) error {
	var existing models.Skill
	if err := r.db.Where("user_id = ? AND skill_name = ?", skill.UserID, skill.SkillName).
		First(&existing).Error; err == nil {
		return ErrSkillExists
	}

	err := r.db.Create(skill).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrSkillExists
	}
	return err
}

func (r *SkillRepositoryImpl) FindSkillsByUser(userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepositoryImpl) UpdateSkill(userID, skillID uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.Model(&models.Skill{}).
		Where("id = ? AND user_id = ?", skillID, userID).
		Updates(fields)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrSkillExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) DeleteSkill(userID, skillID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", skillID, userID).Delete(&models.Skill{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSkillNotFound
	}
	return nil
}

func (r *SkillRepositoryImpl) CreateInterest(interest *models.Interest) error {
	var existing models.Interest
	if err := r.db.Where("user_id = ? AND interest_area = ?", interest.UserID, interest.InterestArea).
		First(&existing).Error; err == nil {
		return ErrInterestExists
	}

	err := r.db.Create(interest).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrInterestExists
	}
	return err
}

func (r *SkillRepositoryImpl) FindInterestsByUser(userID uint) ([]models.Interest, error) {
	var interests []models.Interest
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&interests).Error
	return interests, err
}

func (r *SkillRepositoryImpl) DeleteInterest(userID, interestID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", interestID, userID).Delete(&models.Interest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterestNotFound
	}
	return nil
}
