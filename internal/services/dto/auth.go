package dto

import (
	"time"

	"jobnest_backend/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CompanyID *uint      `json:"company_id,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

func ToUserDTO(user *models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
	if user.Company != nil {
		id := user.Company.ID
		dto.CompanyID = &id
	}
	return dto
}
