package handlers

import (
	"net/http"

	"haki/models"
	ai "haki/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler covers the legal information chatbot.
type AIHandler struct {
	AIService ai.AIService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(svc ai.AIService) *AIHandler {
	return &AIHandler{AIService: svc}
}

// ChatHandler handles POST /api/ai/chat.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.AIChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.AIService.Chat(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		logger.Error("AI chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat is unavailable right now"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearContextHandler handles DELETE /api/ai/context. It resets the
// caller's conversation history.
func (h *AIHandler) ClearContextHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.AIService.ClearContext(c.Request.Context(), currentUserID(c)); err != nil {
		logger.Error("AI context clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation cleared"})
}
