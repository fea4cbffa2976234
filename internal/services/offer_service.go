package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"stagelink_backend/internal/authz"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/internal/services/dto"
	"stagelink_backend/pkg/apperrors"
)

// Accepted layouts for eventDate, most specific first.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

type OfferService struct {
	offerRepo repositories.OfferRepository
	userRepo  repositories.UserRepository
}

func NewOfferService(offerRepo repositories.OfferRepository, userRepo repositories.UserRepository) *OfferService {
	return &OfferService{offerRepo: offerRepo, userRepo: userRepo}
}

// Create publishes a new open offer. Distributors create offers for
// themselves; admins may create one on behalf of any distributor via
// distributorId. When capacity is omitted it falls back to the
// distributor's venue capacity.
func (s *OfferService) Create(db *gorm.DB, caller authz.Caller, req *dto.CreateOfferRequest) (*models.Offer, error) {
	distributorID := caller.ID
	switch {
	case caller.IsAdmin():
		if req.DistributorID == nil {
			return nil, apperrors.NewValidationError("distributorId is required when creating an offer as admin")
		}
		distributorID = *req.DistributorID
	case caller.Role != models.UserRoleDistributor:
		return nil, apperrors.ErrInsufficientPermissions
	}

	distributor, err := s.userRepo.FindByID(db, distributorID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "Distributor not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if distributor.Role != models.UserRoleDistributor {
		return nil, apperrors.NewValidationError("offers can only be created for distributor accounts")
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		return nil, apperrors.NewValidationError("eventDate must be an ISO 8601 date or datetime")
	}

	capacity := 0
	switch {
	case req.Capacity != nil:
		capacity = *req.Capacity
	case distributor.Capacity != nil:
		capacity = *distributor.Capacity
	default:
		return nil, apperrors.NewValidationError("capacity is required when the distributor profile has none")
	}

	offer := &models.Offer{
		DistributorID: distributorID,
		Title:         req.Title,
		Description:   req.Description,
		City:          req.City,
		VenueName:     req.VenueName,
		Genre:         req.Genre,
		Budget:        req.Budget,
		Status:        models.OfferStatusOpen,
		EventDate:     eventDate,
		Capacity:      capacity,
	}

	if err := s.offerRepo.Create(db, offer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}

func (s *OfferService) GetByID(db *gorm.DB, id uint) (*models.Offer, error) {
	offer, err := s.offerRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return nil, apperrors.ErrNotFound(err, "offer", "Offer not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return offer, nil
}

func (s *OfferService) List(db *gorm.DB) ([]models.Offer, error) {
	offers, err := s.offerRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offers, nil
}

// ListCreated returns the offers a distributor has published, newest first.
func (s *OfferService) ListCreated(db *gorm.DB, distributorID uint) ([]models.Offer, error) {
	if _, err := s.userRepo.FindByID(db, distributorID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	offers, err := s.offerRepo.FindByDistributor(db, distributorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offers, nil
}

// ListApplied returns the offers a performer has applied to, each annotated
// with the performer's match id and status.
func (s *OfferService) ListApplied(db *gorm.DB, performerID uint) ([]repositories.AppliedOffer, error) {
	if _, err := s.userRepo.FindByID(db, performerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	offers, err := s.offerRepo.FindAppliedByPerformer(db, performerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return offers, nil
}

// Conclude finishes an open offer as closed (default) or cancelled. Closing
// an offer that has an accepted performer bumps the finalised-events counter
// on both sides.
func (s *OfferService) Conclude(db *gorm.DB, caller authz.Caller, offerID uint, req *dto.ConcludeOfferRequest) (*models.Offer, error) {
	offer, err := s.GetByID(db, offerID)
	if err != nil {
		return nil, err
	}

	if !authz.OwnsOffer(caller, offer) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if offer.Status != models.OfferStatusOpen {
		return nil, apperrors.ErrInvalidState("offer", "Only open offers can be concluded")
	}

	status := models.OfferStatusClosed
	if req != nil && req.Status != nil {
		status = models.OfferStatus(*req.Status)
	}
	if !status.IsConcluding() {
		return nil, apperrors.NewValidationError("status must be closed or cancelled")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.offerRepo.UpdateStatus(tx, offer.ID, status); err != nil {
			return err
		}
		if status == models.OfferStatusClosed && offer.AcceptedPerformerID != nil {
			return s.userRepo.IncrementEventsFinalised(tx, offer.DistributorID, *offer.AcceptedPerformerID)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	offer.Status = status
	return offer, nil
}

func parseEventDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
