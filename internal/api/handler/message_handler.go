package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/lazybook/internal/api/middleware"
	"github.com/d60-Lab/lazybook/pkg/response"
)

// GetConversation returns the full message history with another user,
// oldest first
// @Summary Get a conversation
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param username path string true "other user"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/messages/{username} [get]
func (h *Handler) GetConversation(c *gin.Context) {
	messages, err := h.chatService.GetConversation(c.Request.Context(), middleware.UserID(c), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, messages)
}
