package dto

import "stagelink_backend/internal/models"

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,role"`
	Name     string  `json:"name" validate:"required,max=25"`
	City     string  `json:"city" validate:"required,max=50"`
	Avatar   *string `json:"avatarUrl,omitempty"`
	Capacity *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *models.User `json:"user"`
}
