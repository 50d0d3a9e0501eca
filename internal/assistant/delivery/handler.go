package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dayplan-backend/internal/assistant/usecase"
)

// AssistantHandler handles productivity chat HTTP requests
type AssistantHandler struct {
	assistantUsecase usecase.AssistantUsecase
}

// NewAssistantHandler creates a new AssistantHandler
func NewAssistantHandler(assistantUsecase usecase.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{
		assistantUsecase: assistantUsecase,
	}
}

// ChatRequest is one user message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers a free-text productivity question
// POST /api/assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	userID := c.GetString("userID")

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.assistantUsecase.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
