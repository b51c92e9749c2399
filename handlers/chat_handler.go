package handlers

import (
	"TandoorMate/controllers"
	"TandoorMate/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.RouterGroup, chatController *controllers.ChatController) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("", middleware.AuthMiddleware(), chatController.Chat)
	}
}
