package services

import (
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/auth"
	"stagelink_backend/internal/authz"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/internal/services/dto"
	"stagelink_backend/pkg/apperrors"
)

const (
	defaultLatestLimit = 3
	maxLatestLimit     = 20
)

type UserService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.RefreshTokenRepository
}

func NewUserService(userRepo repositories.UserRepository, tokenRepo repositories.RefreshTokenRepository) *UserService {
	return &UserService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func (s *UserService) List(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

// Latest returns the most recently registered users of a role, newest first.
// The role accepts the same aliases as signup ("venue" means distributor).
func (s *UserService) Latest(db *gorm.DB, roleRaw string, limit int) ([]models.User, error) {
	role, ok := models.NormalizeRole(roleRaw)
	if !ok {
		return nil, apperrors.ErrInvalidUserRole
	}

	if limit <= 0 {
		limit = defaultLatestLimit
	}
	if limit > maxLatestLimit {
		limit = maxLatestLimit
	}

	users, err := s.userRepo.FindLatestByRole(db, role, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *UserService) GetByID(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// Update applies a partial profile update. Callers may only update
// themselves unless they are admins, and only admins may grant the
// admin role.
func (s *UserService) Update(db *gorm.DB, caller authz.Caller, id uint, req *dto.UpdateUserRequest) (*models.User, error) {
	if !caller.IsAdmin() && caller.ID != id {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["password_hash"] = hash
	}
	if req.Role != nil {
		role, ok := models.NormalizeRole(*req.Role)
		if !ok {
			return nil, apperrors.ErrInvalidUserRole
		}
		if role == models.UserRoleAdmin && !caller.IsAdmin() {
			return nil, apperrors.ErrInsufficientPermissions
		}
		fields["role"] = role
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.Avatar != nil {
		fields["avatar_url"] = *req.Avatar
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.Genre != nil {
		fields["genre"] = *req.Genre
	}
	if req.Slogan != nil {
		fields["slogan"] = *req.Slogan
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Musicians != nil {
		fields["musicians"] = *req.Musicians
	}

	if len(fields) == 0 {
		return user, nil
	}

	if err := s.userRepo.Update(db, user, fields); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, apperrors.ErrEmailAlreadyExists
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetByID(db, id)
}

// Delete removes an account. The last remaining admin cannot be deleted.
func (s *UserService) Delete(db *gorm.DB, caller authz.Caller, id uint) error {
	if !caller.IsAdmin() && caller.ID != id {
		return apperrors.ErrInsufficientPermissions
	}

	user, err := s.GetByID(db, id)
	if err != nil {
		return err
	}

	if user.Role == models.UserRoleAdmin {
		count, err := s.userRepo.CountByRole(db, models.UserRoleAdmin)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if count <= 1 {
			return apperrors.ErrLastAdmin
		}
	}

	// Revoke the account's sessions along with the account itself.
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.tokenRepo.DeleteByUser(tx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, id)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
