package handlers

import (
	"TandoorMate/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRestaurantRoutes(router *gin.RouterGroup, restaurantController *controllers.RestaurantController) {
	restaurantGroup := router.Group("/restaurants")
	{
		restaurantGroup.GET("", restaurantController.GetRestaurants)

		restaurantGroup.GET("/:name/menu", restaurantController.GetRestaurantMenu)
	}
}
