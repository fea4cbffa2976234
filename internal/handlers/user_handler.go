package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/services"
	"stagelink_backend/internal/services/dto"
	"stagelink_backend/pkg/apperrors"
)

type UserHandler struct {
	BaseHandler
	userService   *services.UserService
	offerService  *services.OfferService
	reviewService *services.ReviewService
}

func NewUserHandler(
	base BaseHandler,
	userService *services.UserService,
	offerService *services.OfferService,
	reviewService *services.ReviewService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		userService:   userService,
		offerService:  offerService,
		reviewService: reviewService,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Latest serves the landing-page carousels: newest performers or venues.
func (h *UserHandler) Latest(c *gin.Context) {
	role := c.Query("role")
	if role == "" {
		apperrors.HandleError(c, apperrors.NewValidationError("role query parameter is required"))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewValidationError("limit must be an integer"))
			return
		}
		limit = n
	}

	users, err := h.userService.Latest(h.GetDB(c), role, limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.Update(h.GetDB(c), caller, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(h.GetDB(c), caller, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListReviews returns the reviews a user has received.
func (h *UserHandler) ListReviews(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListForUser(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// ListCreatedOffers returns the offers a distributor has published.
func (h *UserHandler) ListCreatedOffers(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	offers, err := h.offerService.ListCreated(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListAppliedOffers returns the offers a performer has applied to. Visible
// only to the performer themselves and admins.
func (h *UserHandler) ListAppliedOffers(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if !caller.IsAdmin() && caller.ID != id {
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
		return
	}

	offers, err := h.offerService.ListApplied(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}
