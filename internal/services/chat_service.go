package services

import (
	"errors"

	"gorm.io/gorm"

	"stagelink_backend/internal/authz"
	"stagelink_backend/internal/models"
	"stagelink_backend/internal/repositories"
	"stagelink_backend/pkg/apperrors"
)

type ChatService struct {
	messageRepo repositories.MessageRepository
	matchRepo   repositories.MatchRepository
	offerRepo   repositories.OfferRepository
}

func NewChatService(
	messageRepo repositories.MessageRepository,
	matchRepo repositories.MatchRepository,
	offerRepo repositories.OfferRepository,
) *ChatService {
	return &ChatService{messageRepo: messageRepo, matchRepo: matchRepo, offerRepo: offerRepo}
}

// ListMessages returns the offer's chat history, oldest first.
func (s *ChatService) ListMessages(db *gorm.DB, caller authz.Caller, offerID uint) ([]models.Message, error) {
	if err := s.authorize(db, caller, offerID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByOffer(db, offerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

func (s *ChatService) PostMessage(db *gorm.DB, caller authz.Caller, offerID uint, body string) (*models.Message, error) {
	if err := s.authorize(db, caller, offerID); err != nil {
		return nil, err
	}

	message := &models.Message{
		OfferID:  offerID,
		AuthorID: caller.ID,
		Body:     body,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

// authorize gates chat access: the offer owner and admins always, a
// performer only once their application has chat approved or they were
// accepted for the offer.
func (s *ChatService) authorize(db *gorm.DB, caller authz.Caller, offerID uint) error {
	offer, err := s.offerRepo.FindByID(db, offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrOfferNotFound) {
			return apperrors.ErrNotFound(err, "offer", "Offer not found")
		}
		return apperrors.InternalError(err)
	}

	var match *models.Match
	if caller.Role == models.UserRolePerformer {
		match, err = s.matchRepo.FindByOfferAndPerformer(db, offerID, caller.ID)
		if err != nil && !errors.Is(err, repositories.ErrMatchNotFound) {
			return apperrors.InternalError(err)
		}
	}

	if !authz.CanAccessChat(caller, offer, match) {
		return apperrors.ErrChatNotApproved
	}
	return nil
}
