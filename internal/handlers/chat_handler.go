package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fingraph/internal/errors"
	"fingraph/internal/services"
)

// ChatHandler exposes the conversational session.
type ChatHandler struct {
	chatService services.ChatServicer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatService services.ChatServicer) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// AskRequest represents a single user question.
type AskRequest struct {
	Question string `json:"question" binding:"required,max=2000"`
}

// Ask runs one conversation turn against the knowledge graph assistant.
// @Summary     Ask a question
// @Description Run one conversational turn; the assistant may query the knowledge graph once
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       request body AskRequest true "User question"
// @Success     200 {object} map[string]string "Assistant answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Reasoning backend failure"
// @Router      /chat/ask [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// GetMessages returns the retained conversation history.
// @Summary     Conversation history
// @Tags        chat
// @Produce     json
// @Success     200 {array} chat.Message
// @Router      /chat/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.chatService.Messages()})
}

// ClearConversation empties the session history.
// @Summary     Clear conversation
// @Tags        chat
// @Success     204 "Cleared"
// @Router      /chat/clear [post]
func (h *ChatHandler) ClearConversation(c *gin.Context) {
	h.chatService.ClearConversation()
	c.Status(http.StatusNoContent)
}
