package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/services"
	"stagelink_backend/internal/services/dto"
)

type OfferHandler struct {
	BaseHandler
	offerService *services.OfferService
}

func NewOfferHandler(base BaseHandler, offerService *services.OfferService) *OfferHandler {
	return &OfferHandler{BaseHandler: base, offerService: offerService}
}

func (h *OfferHandler) Create(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	offer, err := h.offerService.Create(h.GetDB(c), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, offer)
}

func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.offerService.List(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	offer, err := h.offerService.GetByID(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}

// Conclude finishes an offer. The body is optional; an empty body closes it.
func (h *OfferHandler) Conclude(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ConcludeOfferRequest
	if c.Request.ContentLength > 0 {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	offer, err := h.offerService.Conclude(h.GetDB(c), caller, id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, offer)
}
