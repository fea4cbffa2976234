package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/handlers"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/models"
)

// SetupRoutes registers the full API surface under /api/v1. Public routes
// cover discovery (offer and user browsing); everything that mutates state
// requires authentication.
func SetupRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	api := r.Group("/api/v1")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/logout", h.Auth.Logout)
	}

	users := api.Group("/users")
	{
		users.GET("", h.User.List)
		users.GET("/latest", h.User.Latest)
		users.GET("/:id", h.User.Get)
		users.GET("/:id/reviews", h.User.ListReviews)
		users.GET("/:id/offers/created", h.User.ListCreatedOffers)

		users.PUT("/:id", middleware.AuthMiddleware(), h.User.Update)
		users.DELETE("/:id", middleware.AuthMiddleware(), h.User.Delete)
		users.GET("/:id/offers/applied", middleware.AuthMiddleware(), h.User.ListAppliedOffers)
	}

	offers := api.Group("/offers")
	{
		offers.GET("", h.Offer.List)
		offers.GET("/:id", h.Offer.Get)

		protected := offers.Group("", middleware.AuthMiddleware())
		{
			protected.POST("", middleware.RequireRoles(models.UserRoleDistributor, models.UserRoleAdmin), h.Offer.Create)
			protected.POST("/:id/conclude", h.Offer.Conclude)

			protected.POST("/:id/apply", middleware.RequireRoles(models.UserRolePerformer), h.Match.Apply)
			protected.DELETE("/:id/apply", middleware.RequireRoles(models.UserRolePerformer), h.Match.Withdraw)
			protected.GET("/:id/matches", h.Match.ListByOffer)
			protected.POST("/:id/approve-chat", h.Match.ApproveChat)
			protected.POST("/:id/accept", h.Match.Accept)

			protected.GET("/:id/messages", h.Chat.ListMessages)
			protected.POST("/:id/messages", h.Chat.PostMessage)
		}
	}

	reviews := api.Group("/reviews", middleware.AuthMiddleware())
	{
		reviews.POST("", h.Review.Create)
		reviews.DELETE("/:id", h.Review.Delete)
	}
}
