package services

import (
	"context"
	"errors"

	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

type SkillService interface {
	AddSkill(ctx context.Context, userID uint, req dto.CreateSkillRequest) (*models.Skill, error)
	ListSkills(ctx context.Context, userID uint) ([]models.Skill, error)
	UpdateSkill(ctx context.Context, userID, skillID uint, req dto.UpdateSkillRequest) (*models.Skill, error)
	RemoveSkill(ctx context.Context, userID, skillID uint) error

	AddInterest(ctx context.Context, userID uint, req dto.CreateInterestRequest) (*models.Interest, error)
	ListInterests(ctx context.Context, userID uint) ([]models.Interest, error)
	RemoveInterest(ctx context.Context, userID, interestID uint) error
}

type skillService struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) AddSkill(ctx context.Context, userID uint, req dto.CreateSkillRequest) (*models.Skill, error) {
	skill := &models.Skill{
		UserID:    userID,
		SkillName: req.SkillName,
		Level:     models.SkillLevel(req.Level),
	}
	if err := s.skillRepo.CreateSkill(skill); err != nil {
		if errors.Is(err, repositories.ErrSkillExists) {
			return nil, apperrors.ErrAlreadyExists(err, "skills", "Skill is already on your profile")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "skill added", "skill_id", skill.ID)
	return skill, nil
}

func (s *skillService) ListSkills(ctx context.Context, userID uint) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindSkillsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}

func (s *skillService) UpdateSkill(ctx context.Context, userID, skillID uint, req dto.UpdateSkillRequest) (*models.Skill, error) {
	fields := map[string]interface{}{}
	if req.SkillName != nil {
		fields["skill_name"] = *req.SkillName
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}

	if err := s.skillRepo.UpdateSkill(userID, skillID, fields); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSkillNotFound):
			return nil, apperrors.ErrNotFound(err, "skills", "Skill not found")
		case errors.Is(err, repositories.ErrSkillExists):
			return nil, apperrors.ErrAlreadyExists(err, "skills", "Skill is already on your profile")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	skills, err := s.skillRepo.FindSkillsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range skills {
		if skills[i].ID == skillID {
			return &skills[i], nil
		}
	}
	return nil, apperrors.ErrNotFound(nil, "skills", "Skill not found")
}

func (s *skillService) RemoveSkill(ctx context.Context, userID, skillID uint) error {
	if err := s.skillRepo.DeleteSkill(userID, skillID); err != nil {
		if errors.Is(err, repositories.ErrSkillNotFound) {
			return apperrors.ErrNotFound(err, "skills", "Skill not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "skill removed", "skill_id", skillID)
	return nil
}

func (s *skillService) AddInterest(ctx context.Context, userID uint, req dto.CreateInterestRequest) (*models.Interest, error) {
	interest := &models.Interest{
		UserID:       userID,
		InterestArea: req.InterestArea,
	}
	if err := s.skillRepo.CreateInterest(interest); err != nil {
		if errors.Is(err, repositories.ErrInterestExists) {
			return nil, apperrors.ErrAlreadyExists(err, "interests", "Interest is already on your profile")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "interest added", "interest_id", interest.ID)
	return interest, nil
}

func (s *skillService) ListInterests(ctx context.Context, userID uint) ([]models.Interest, error) {
	interests, err := s.skillRepo.FindInterestsByUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interests, nil
}

func (s *skillService) RemoveInterest(ctx context.Context, userID, interestID uint) error {
	if err := s.skillRepo.DeleteInterest(userID, interestID); err != nil {
		if errors.Is(err, repositories.ErrInterestNotFound) {
			return apperrors.ErrNotFound(err, "interests", "Interest not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "interest removed", "interest_id", interestID)
	return nil
}
