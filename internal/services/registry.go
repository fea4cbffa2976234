package services

import (
	"stagelink_backend/internal/email"
	"stagelink_backend/internal/repositories"
)

// ServiceContainer wires every service over the shared repository set.
type ServiceContainer struct {
	Auth   *AuthService
	User   *UserService
	Offer  *OfferService
	Match  *MatchService
	Chat   *ChatService
	Review *ReviewService
}

func NewServiceContainer(mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewRefreshTokenRepository()
	offerRepo := repositories.NewOfferRepository()
	matchRepo := repositories.NewMatchRepository()
	messageRepo := repositories.NewMessageRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &ServiceContainer{
		Auth:   NewAuthService(userRepo, tokenRepo, mailer),
		User:   NewUserService(userRepo, tokenRepo),
		Offer:  NewOfferService(offerRepo, userRepo),
		Match:  NewMatchService(matchRepo, offerRepo),
		Chat:   NewChatService(messageRepo, matchRepo, offerRepo),
		Review: NewReviewService(reviewRepo, offerRepo, userRepo),
	}
}
