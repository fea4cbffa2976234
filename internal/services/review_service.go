package services

import (
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/authz"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/internal/services/dto"
	"stagelink_backend/pkg/apperrors"
)

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	offerRepo  repositories.OfferRepository
	userRepo   repositories.UserRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	offerRepo repositories.OfferRepository,
	userRepo repositories.UserRepository,
) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, offerRepo: offerRepo, userRepo: userRepo}
}

// Create files a review for a closed offer. Reviews are strictly bilateral:
// the distributor and the accepted performer review each other, one review
// per direction per offer. The rated user's rating aggregate is recomputed
// in the same transaction.
func (s *ReviewService) Create(db *gorm.DB, caller authz.Caller, req *dto.CreateReviewRequest) (*models.Review, error) {
	if !authz.CanActAsRater(caller, req.RaterID) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if req.RaterID == req.RatedID {
		return nil, apperrors.ErrSelfReviewNotAllowed
	}

	offer, err := s.offerRepo.FindByID(db, req.OfferID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.ErrNotFound(err, "offer", "Offer not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if offer.Status != models.OfferStatusClosed {
		return nil, apperrors.ErrInvalidState("review", "Reviews are only allowed on closed offers")
	}
	if offer.AcceptedPerformerID == nil {
		return nil, apperrors.ErrInvalidState("review", "Offer was closed without an accepted performer")
	}
	if !authz.ReviewPairAllowed(offer, req.RaterID, req.RatedID) {
		return nil, apperrors.NewForbiddenError("Only the distributor and the accepted performer can review each other")
	}

	offerID := req.OfferID
	review := &models.Review{
		RaterID: req.RaterID,
		RatedID: req.RatedID,
		OfferID: &offerID,
		Score:   req.Score,
		Comment: req.Comment,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.Create(tx, review)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "review", "Review already exists for this offer")
		}
		return nil, apperrors.InternalError(err)
	}

	return review, nil
}

// Delete removes a review and recomputes the rated user's aggregate.
// Only the author or an admin may delete.
func (s *ReviewService) Delete(db *gorm.DB, caller authz.Caller, reviewID uint) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err, "review", "Review not found")
		}
		return apperrors.InternalError(err)
	}

	if !caller.IsAdmin() && caller.ID != review.RaterID {
		return apperrors.ErrInsufficientPermissions
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.Delete(tx, review.ID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// ListForUser returns the reviews received by a user, newest first.
func (s *ReviewService) ListForUser(db *gorm.DB, userID uint) ([]models.Review, error) {
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	reviews, err := s.reviewRepo.FindByRated(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}
