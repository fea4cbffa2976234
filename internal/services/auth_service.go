package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagelink_backend/internal/auth"
	"stagelink_backend/internal/email"
	"stagelink_backend/internal/logger"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/internal/services/dto"
	"stagelink_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
	mailer    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenRepo repositories.RefreshTokenRepository,
	mailer email.Provider,
) *AuthService {
	return &AuthService{userRepo: userRepo, tokenRepo: tokenRepo, mailer: mailer}
}

// Register creates an account with the performer or distributor role.
// "venue" is accepted as an alias for distributor; admin accounts are
// seeded at boot, never self-registered.
func (s *AuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	role, ok := models.NormalizeRole(req.Role)
	if !ok || role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Name:         req.Name,
		City:         req.City,
		AvatarURL:    req.Avatar,
		Capacity:     req.Capacity,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Best effort: registration never fails because the mail did not go out.
	go func(to, name string) {
		if err := s.mailer.SendWelcome(to, name); err != nil {
			logger.Warn("failed to send welcome email", "email", to, "error", err)
		}
	}(user.Email, user.Name)

	return user, nil
}

func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(db, user)
}

// Refresh rotates the refresh token: the presented token is consumed and a
// new pair is issued. An expired token is deleted and rejected.
func (s *AuthService) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.tokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.tokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

// Logout revokes the refresh token. Revoking an unknown token is a no-op.
func (s *AuthService) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.tokenRepo.DeleteByToken(db, refreshToken); err != nil &&
		!errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.tokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         user,
	}, nil
}
