package handlers

import (
	"TandoorMate/controllers"
	"TandoorMate/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterConversationRoutes(router *gin.RouterGroup, conversationController *controllers.ConversationController) {
	conversationGroup := router.Group("/conversations")
	{
		conversationGroup.POST("", conversationController.StartConversation)
		conversationGroup.DELETE("", middleware.AuthMiddleware(), conversationController.EndConversation)
	}
}
