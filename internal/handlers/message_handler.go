package handlers

import (
	"net/http"

	"github.com/anonto42/bluo/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MessageHandler serves direct-message previews
type MessageHandler struct {
	conversationRepository repositories.ConversationRepository
}

func NewMessageHandler(conversationRepo repositories.ConversationRepository) *MessageHandler {
	return &MessageHandler{conversationRepository: conversationRepo}
}

func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/messages/conversations", h.GetConversations)
	g.POST("/messages", h.SendMessage)
}

func (h *MessageHandler) GetConversations(c echo.Context) error {
	conversations, err := h.conversationRepository.GetConversations(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return internalError(c, err, "Failed to load conversations")
	}
	return c.JSON(http.StatusOK, conversations)
}

// SendMessage is a placeholder. Only conversation previews are stored.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	return echo.NewHTTPError(http.StatusNotImplemented, "Sending messages is not implemented yet")
}
