package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stagelink_backend/internal/services"
	"stagelink_backend/internal/services/dto"
)

type ChatHandler struct {
	BaseHandler
	chatService *services.ChatService
}

func NewChatHandler(base BaseHandler, chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{BaseHandler: base, chatService: chatService}
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := h.chatService.ListMessages(h.GetDB(c), caller, offerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	caller, ok := h.RequireCaller(c)
	if !ok {
		return
	}
	offerID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	message, err := h.chatService.PostMessage(h.GetDB(c), caller, offerID, req.Body)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
