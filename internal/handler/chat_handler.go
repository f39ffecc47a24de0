package handler

import (
	"net/http"

	"github.com/cointrack/cointrack-backend/internal/middleware"
	"github.com/cointrack/cointrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ChatHandler handles AI assistant questions
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// ChatRequest represents the chat request body
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// Chat handles POST /api/v1/chat
//
//	@Summary		Ask the assistant about your finances
//	@Description	Upstream failures return 200 with degraded=true and a fallback message.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ChatRequest	true	"Question"
//	@Success		200		{object}	service.ChatReply
//	@Failure		400		{object}	ProblemDetails
//	@Failure		429		{object}	ProblemDetails
//	@Security		BearerAuth
//	@Router			/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(&req); err != nil {
		return invalidRequest(c, err)
	}

	reply, err := h.chatService.Ask(c.Request().Context(), userID, req.Message)
	if err != nil {
		return handleServiceError(c, err, userID, "answer question")
	}

	if reply.Degraded {
		log.Warn().Str("user_id", userID).Msg("Chat answered with fallback reply")
	}

	return c.JSON(http.StatusOK, reply)
}
