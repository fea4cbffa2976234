package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/services"
	"stagelink_backend/internal/services/dto"
)

type MatchHandler struct {
	BaseHandler
	matchService *services.MatchService
}

func NewMatchHandler(base BaseHandler, matchService *services.MatchService) *MatchHandler {
	return &MatchHandler{BaseHandler: base, matchService: matchService}
}

func (h *MatchHandler) Apply(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	match, err := h.matchService.Apply(h.GetDB(c), caller, offerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, match)
}

func (h *MatchHandler) Withdraw(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	match, err := h.matchService.Withdraw(h.GetDB(c), caller, offerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) ListByOffer(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	matches, err := h.matchService.ListByOffer(h.GetDB(c), caller, offerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

func (h *MatchHandler) ApproveChat(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.ApproveChatRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	match, err := h.matchService.ApproveChat(h.GetDB(c), caller, offerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}

func (h *MatchHandler) Accept(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AcceptRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	match, err := h.matchService.Accept(h.GetDB(c), caller, offerID, req.PerformerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, match)
}
