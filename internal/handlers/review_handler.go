package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/services"
	"stagelink_backend/internal/services/dto"
)

type ReviewHandler struct {
	BaseHandler
	reviewService *services.ReviewService
}

func NewReviewHandler(base BaseHandler, reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(h.GetDB(c), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.reviewService.Delete(h.GetDB(c), caller, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
