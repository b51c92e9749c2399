package controllers

import (
	"TandoorMate/config/database"
	"TandoorMate/services"
	"TandoorMate/utils"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	CatalogService *services.CatalogService
}

func NewRestaurantController() *RestaurantController {
	return &RestaurantController{
		CatalogService: services.NewCatalogService(database.GetCatalog()),
	}
}

// GetRestaurants lists the catalog, optionally filtered by city, cuisine or
// minimum rating. Filters combine with the same case-insensitive and
// inclusive-rating semantics the dialog flows use.
func (s *RestaurantController) GetRestaurants(c *gin.Context) {
	restaurants := s.CatalogService.All()

	if city := c.Query("city"); city != "" {
		restaurants = s.CatalogService.FilterByCity(city)
	}

	if cuisine := c.Query("cuisine"); cuisine != "" {
		target := strings.ToLower(strings.TrimSpace(cuisine))
		filtered := restaurants[:0:0]
		for _, r := range restaurants {
			if strings.ToLower(r.Cuisine) == target {
				filtered = append(filtered, r)
			}
		}
		restaurants = filtered
	}

	if minRatingStr := c.Query("min_rating"); minRatingStr != "" {
		minRating, err := strconv.ParseFloat(minRatingStr, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			c.Error(utils.NewCustomError(http.StatusBadRequest, "Invalid min_rating, expected a number between 0 and 5"))
			c.Abort()
			return
		}
		filtered := restaurants[:0:0]
		for _, r := range restaurants {
			if r.Rating >= minRating {
				filtered = append(filtered, r)
			}
		}
		restaurants = filtered
	}

	utils.SuccessResponse(c, http.StatusOK, "Restaurants fetched successfully", restaurants)
}

// GetRestaurantMenu returns the menu of the named restaurant,
// case-insensitive exact match.
func (s *RestaurantController) GetRestaurantMenu(c *gin.Context) {
	name := c.Param("name")

	restaurant, found := s.CatalogService.FindByName(name)
	if !found {
		c.Error(utils.NewCustomError(http.StatusNotFound, "Restaurant not found"))
		c.Abort()
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Menu fetched successfully", gin.H{
		"restaurant": restaurant.Name,
		"menu":       restaurant.Menu,
	})
}
