package controllers

import (
	"TandoorMate/services"
	"TandoorMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConversationController opens and closes conversations.
type ConversationController struct {
	SessionService *services.SessionService
}

func NewConversationController() *ConversationController {
	return &ConversationController{
		SessionService: services.NewSessionService(),
	}
}

// StartConversation creates a fresh conversation and returns its id plus the
// bearer token that identifies it on subsequent turns.
func (c *ConversationController) StartConversation(ctx *gin.Context) {
	conversationID := c.SessionService.Create()

	token, err := utils.GenerateConversationToken(conversationID)
	if err != nil {
		c.SessionService.End(conversationID)
		utils.ErrorResponse(ctx, http.StatusInternalServerError, "Failed to create conversation token")
		return
	}

	utils.SuccessResponse(ctx, http.StatusCreated, "Conversation started successfully", gin.H{
		"conversation_id": conversationID,
		"token":           token,
	})
}

// EndConversation discards the conversation state behind the bearer token.
func (c *ConversationController) EndConversation(ctx *gin.Context) {
	conversationID, exists := ctx.Get("conversationId")
	if !exists {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "Conversation ID is required")
		return
	}

	c.SessionService.End(conversationID.(string))

	utils.SuccessResponse(ctx, http.StatusOK, "Conversation ended successfully", nil)
}
