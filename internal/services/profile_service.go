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

type ProfileService interface {
	Create(ctx context.Context, userID uint, req dto.CreateProfileRequest) (*models.Profile, error)
	Get(ctx context.Context, userID uint) (*models.Profile, error)
	Update(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*models.Profile, error)
	Delete(ctx context.Context, userID uint) error
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Create(ctx context.Context, userID uint, req dto.CreateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{
		UserID:         userID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		BirthDate:      req.BirthDate,
		Bio:            req.Bio,
		Location:       req.Location,
		ProfilePicture: req.ProfilePicture,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		if errors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "profiles", "You already have a profile")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile created", "profile_id", profile.ID)
	return profile, nil
}

func (s *profileService) Get(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profiles", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *profileService) Update(ctx context.Context, userID uint, req dto.UpdateProfileRequest) (*models.Profile, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.BirthDate != nil {
		fields["birth_date"] = *req.BirthDate
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.ProfilePicture != nil {
		fields["profile_picture"] = *req.ProfilePicture
	}

	if err := s.profileRepo.UpdateFields(userID, fields); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err, "profiles", "Profile not found")
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "profile updated", "profile_id", profile.ID)
	return profile, nil
}

func (s *profileService) Delete(ctx context.Context, userID uint) error {
	if err := s.profileRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err, "profiles", "Profile not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "profile deleted")
	return nil
}
