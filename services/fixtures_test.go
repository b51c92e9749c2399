package services

import "TandoorMate/models"

func testCatalog() *models.Catalog {
	return models.NewCatalog([]models.Restaurant{
		{
			Name:       "Royal Tandoor",
			City:       "Mumbai",
			Cuisine:    "Indian",
			Rating:     4.7,
			PriceRange: models.PriceRange{Symbol: "$$", ApproximateCostForTwo: 1200},
			Menu: []models.MenuItem{
				{Name: "Butter Chicken", Price: 350, Description: "Creamy tomato gravy"},
				{Name: "Paneer Tikka", Price: 280, Description: "Char-grilled cottage cheese"},
				{Name: "Garlic Naan", Price: 60},
			},
		},
		{
			Name:       "Sakura House",
			City:       "Mumbai",
			Cuisine:    "Japanese",
			Rating:     4.4,
			PriceRange: models.PriceRange{Symbol: "$$$", ApproximateCostForTwo: 2500},
			Menu: []models.MenuItem{
				{Name: "Salmon Sushi", Price: 450, Description: "Eight pieces"},
				{Name: "Chicken Ramen", Price: 380},
			},
		},
		{
			Name:       "Trattoria Bella",
			City:       "Delhi",
			Cuisine:    "Italian",
			Rating:     4.5,
			PriceRange: models.PriceRange{Symbol: "$$$", ApproximateCostForTwo: 2200},
			Menu: []models.MenuItem{
				{Name: "Margherita Pizza", Price: 400, Description: "Wood-fired"},
				{Name: "Tiramisu", Price: 260},
			},
		},
		{
			Name:       "Dragon Wok",
			City:       "Bangalore",
			Cuisine:    "Chinese",
			Rating:     3.9,
			PriceRange: models.PriceRange{Symbol: "$", ApproximateCostForTwo: 800},
			Menu: []models.MenuItem{
				{Name: "Hakka Noodles", Price: 220},
				{Name: "Spring Rolls", Price: 160},
			},
		},
	})
}
