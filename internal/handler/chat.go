package handler

import (
	"net/http"
	"strings"

	"rentassist/internal/model"
	"rentassist/internal/service"

	"github.com/gin-gonic/gin"
)

// The caller never sees internal errors raw; data-access failures map to
// this fixed bilingual message.
const technicalErrorMessage = "Maaf, terdapat masalah teknikal. / Sorry, I encountered a technical error. Please try again."

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /api/chat. The last user turn of the message list is
// the utterance under analysis.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message list is empty"})
		return
	}

	utterance := strings.TrimSpace(req.LastUserContent())
	if utterance == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No user message to analyze"})
		return
	}

	reply, err := h.chatService.Handle(c.Request.Context(), utterance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ChatResponse{
			Message: technicalErrorMessage,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{Message: reply.Message})
}
