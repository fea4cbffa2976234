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

type MatchService struct {
	matchRepo repositories.MatchRepository
	offerRepo repositories.OfferRepository
}

func NewMatchService(matchRepo repositories.MatchRepository, offerRepo repositories.OfferRepository) *MatchService {
	return &MatchService{matchRepo: matchRepo, offerRepo: offerRepo}
}

// Apply files or refreshes a performer's application to an open offer.
// Re-applying overwrites the rate, replaces the message only when one is
// sent, and resets the application to pending, so a rejected or withdrawn
// performer can try again.
func (s *MatchService) Apply(db *gorm.DB, caller authz.Caller, offerID uint, req *dto.ApplyRequest) (*models.Match, error) {
	if caller.Role != models.UserRolePerformer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	offer, err := s.getOffer(db, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status != models.OfferStatusOpen {
		return nil, apperrors.ErrInvalidState("match", "Offer is no longer accepting applications")
	}

	existing, err := s.matchRepo.FindByOfferAndPerformer(db, offerID, caller.ID)
	switch {
	case err == nil:
		fields := map[string]interface{}{
			"rate":   *req.Rate,
			"status": models.MatchStatusPending,
		}
		if req.Message != nil {
			fields["message"] = *req.Message
		}
		if err := s.matchRepo.Update(db, existing, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return existing, nil

	case errors.Is(err, repositories.ErrMatchNotFound):
		match := &models.Match{
			PerformerID: caller.ID,
			OfferID:     offerID,
			Status:      models.MatchStatusPending,
			Rate:        *req.Rate,
		}
		if req.Message != nil {
			match.Message = *req.Message
		}
		if err := s.matchRepo.Create(db, match); err != nil {
			if errors.Is(err, repositories.ErrMatchAlreadyExists) {
				return nil, apperrors.ErrConflict(err, "match", "Application already exists for this offer")
			}
			return nil, apperrors.InternalError(err)
		}
		return match, nil

	default:
		return nil, apperrors.InternalError(err)
	}
}

// Withdraw retracts the caller's pending application.
func (s *MatchService) Withdraw(db *gorm.DB, caller authz.Caller, offerID uint) (*models.Match, error) {
	if caller.Role != models.UserRolePerformer {
		return nil, apperrors.ErrInsufficientPermissions
	}

	match, err := s.matchRepo.FindByOfferAndPerformer(db, offerID, caller.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, apperrors.ErrNotFound(err, "match", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if match.Status != models.MatchStatusPending {
		return nil, apperrors.ErrInvalidState("match", "Only pending applications can be withdrawn")
	}

	if err := s.matchRepo.UpdateStatus(db, match.ID, models.MatchStatusWithdrawn); err != nil {
		return nil, apperrors.InternalError(err)
	}
	match.Status = models.MatchStatusWithdrawn
	return match, nil
}

// ApproveChat grants (or revokes) a performer's chat access on the offer.
// Only the offer's owner may flip the flag; it is independent of acceptance.
func (s *MatchService) ApproveChat(db *gorm.DB, caller authz.Caller, offerID uint, req *dto.ApproveChatRequest) (*models.Match, error) {
	offer, err := s.getOffer(db, offerID)
	if err != nil {
		return nil, err
	}
	if !authz.OwnsOffer(caller, offer) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	match, err := s.matchRepo.FindByOfferAndPerformer(db, offerID, req.PerformerID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, apperrors.ErrNotFound(err, "match", "Performer has not applied to this offer")
		}
		return nil, apperrors.InternalError(err)
	}

	approved := true
	if req.Approved != nil {
		approved = *req.Approved
	}

	if err := s.matchRepo.SetChatApproved(db, match.ID, approved); err != nil {
		return nil, apperrors.InternalError(err)
	}
	match.ChatApproved = approved
	return match, nil
}

// Accept picks the winning performer for an open offer. In one transaction
// the chosen application becomes accepted, the offer records the performer,
// and every other application is rejected in bulk.
func (s *MatchService) Accept(db *gorm.DB, caller authz.Caller, offerID, performerID uint) (*models.Match, error) {
	offer, err := s.getOffer(db, offerID)
	if err != nil {
		return nil, err
	}
	if !authz.OwnsOffer(caller, offer) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if offer.Status != models.OfferStatusOpen {
		return nil, apperrors.ErrInvalidState("match", "Offer is not open")
	}
	if offer.AcceptedPerformerID != nil {
		return nil, apperrors.ErrInvalidState("match", "Offer already has an accepted performer")
	}

	match, err := s.matchRepo.FindByOfferAndPerformer(db, offerID, performerID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, apperrors.ErrNotFound(err, "match", "Performer has not applied to this offer")
		}
		return nil, apperrors.InternalError(err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.matchRepo.UpdateStatus(tx, match.ID, models.MatchStatusAccepted); err != nil {
			return err
		}
		if err := s.offerRepo.SetAcceptedPerformer(tx, offerID, performerID); err != nil {
			return err
		}
		return s.matchRepo.RejectOthers(tx, offerID, performerID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	match.Status = models.MatchStatusAccepted
	return match, nil
}

// ListByOffer returns every application on the offer, visible only to the
// offer's owner.
func (s *MatchService) ListByOffer(db *gorm.DB, caller authz.Caller, offerID uint) ([]models.Match, error) {
	offer, err := s.getOffer(db, offerID)
	if err != nil {
		return nil, err
	}
	if !authz.OwnsOffer(caller, offer) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	matches, err := s.matchRepo.FindByOffer(db, offerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return matches, nil
}

func (s *MatchService) getOffer(db *gorm.DB, offerID uint) (*models.Offer, error) {
	offer, err := s.offerRepo.FindByID(db, offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.ErrNotFound(err, "offer", "Offer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}
