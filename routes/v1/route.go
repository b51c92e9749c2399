package route

import (
	"TandoorMate/controllers"
	"TandoorMate/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	conversationController := controllers.NewConversationController()
	chatController := controllers.NewChatController()
	restaurantController := controllers.NewRestaurantController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterConversationRoutes(v1Routes, conversationController)
		handlers.RegisterChatRoutes(v1Routes, chatController)
		handlers.RegisterRestaurantRoutes(v1Routes, restaurantController)
	}
}
