package services

import (
	"context"
	"errors"

	"jobnest_backend/internal/auth"
	"jobnest_backend/internal/email"
	"jobnest_backend/internal/logger"
	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/internal/services/dto"
	"jobnest_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
	// LoginWithRoles behaves like Login but rejects accounts whose role is not
	// in the allow-list with a descriptive 403 instead of a generic 401.
	LoginWithRoles(ctx context.Context, req dto.LoginRequest, roles ...models.UserRole) (*dto.AuthResponse, error)
	GetMe(ctx context.Context, userID uint) (*dto.UserDTO, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	emailSender email.Sender
}

func NewAuthService(userRepo repositories.UserRepository, companyRepo repositories.CompanyRepository, sender email.Sender) AuthService {
	return &authService{userRepo: userRepo, companyRepo: companyRepo, emailSender: sender}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleUser
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "users", "A user with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role), nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Welcome mail must never fail the registration.
	go func(to string) {
		if err := s.emailSender.SendTemplate(to, "Welcome to JobNest", email.TemplateWelcome,
			email.TemplateData{"Email": to}); err != nil {
			logger.Warn("welcome email failed", "email", to, "error", err.Error())
		}
	}(user.Email)

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{Token: token, User: dto.ToUserDTO(user)}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	return s.login(ctx, req, nil)
}

func (s *authService) LoginWithRoles(ctx context.Context, req dto.LoginRequest, roles ...models.UserRole) (*dto.AuthResponse, error) {
	return s.login(ctx, req, roles)
}

func (s *authService) login(ctx context.Context, req dto.LoginRequest, allowedRoles []models.UserRole) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if len(allowedRoles) > 0 && !roleAllowed(user.Role, allowedRoles) {
		return nil, apperrors.ErrInvalidUserRole
	}

	var companyID *uint
	if user.Company != nil {
		id := user.Company.ID
		companyID = &id
	} else if company, err := s.companyRepo.FindByStaffUserID(user.ID); err == nil {
		id := company.ID
		companyID = &id
	}

	token, err := auth.GenerateToken(user.ID, user.Email, string(user.Role), companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		logger.CtxWarn(ctx, "failed to update last login", "user_id", user.ID, "error", err.Error())
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID, "role", user.Role)
	return &dto.AuthResponse{Token: token, User: dto.ToUserDTO(user)}, nil
}

func (s *authService) GetMe(ctx context.Context, userID uint) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "users", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	userDTO := dto.ToUserDTO(user)
	return &userDTO, nil
}

func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
