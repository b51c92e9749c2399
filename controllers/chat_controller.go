package controllers

import (
	"TandoorMate/config/database"
	"TandoorMate/services"
	"TandoorMate/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ChatController handles one dialog turn per request.
type ChatController struct {
	DialogService  *services.DialogService
	SessionService *services.SessionService
}

// NewChatController initializes ChatController with the service layer
func NewChatController() *ChatController {
	return &ChatController{
		DialogService:  services.NewDialogService(database.GetCatalog()),
		SessionService: services.NewSessionService(),
	}
}

// ChatRequest represents the request payload
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat runs one turn of the conversation resolved from the bearer token.
func (c *ChatController) Chat(ctx *gin.Context) {
	var req ChatRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(ctx, http.StatusBadRequest, "Invalid request format")
		return
	}

	conversationID, exists := ctx.Get("conversationId")
	if !exists {
		utils.ErrorResponse(ctx, http.StatusUnauthorized, "Conversation ID is required")
		return
	}

	sess, ok := c.SessionService.Get(conversationID.(string))
	if !ok {
		utils.ErrorResponse(ctx, http.StatusNotFound, "Conversation not found")
		return
	}

	reply := c.DialogService.HandleMessage(sess, req.Message)

	utils.SuccessResponse(ctx, http.StatusOK, "Reply generated successfully", gin.H{
		"reply": reply,
	})
}
