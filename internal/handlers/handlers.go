package handlers

import (
	"stagelink_backend/internal/services"
	"stagelink_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Offer  *OfferHandler
	Match  *MatchHandler
	Chat   *ChatHandler
	Review *ReviewHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:   NewAuthHandler(base, svc.Auth),
		User:   NewUserHandler(base, svc.User, svc.Offer, svc.Review),
		Offer:  NewOfferHandler(base, svc.Offer),
		Match:  NewMatchHandler(base, svc.Match),
		Chat:   NewChatHandler(base, svc.Chat),
		Review: NewReviewHandler(base, svc.Review),
	}
}
