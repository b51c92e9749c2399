package services

import (
	"TandoorMate/models"
	"strings"
)

// CatalogService answers read-only lookups over the loaded catalog. Every
// lookup is case-insensitive and returns an empty slice rather than an error
// when nothing matches; filters preserve catalog order.
type CatalogService struct {
	catalog *models.Catalog
}

func NewCatalogService(catalog *models.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) All() []models.Restaurant {
	return s.catalog.Restaurants
}

func (s *CatalogService) Cities() []string {
	return s.catalog.Cities
}

func (s *CatalogService) Cuisines() []string {
	return s.catalog.Cuisines
}

// FindByName does a case-insensitive exact name match.
func (s *CatalogService) FindByName(name string) (models.Restaurant, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, r := range s.catalog.Restaurants {
		if strings.ToLower(r.Name) == target {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

// FindInCity matches name and city together, both case-insensitive.
func (s *CatalogService) FindInCity(name, city string) (models.Restaurant, bool) {
	targetName := strings.ToLower(strings.TrimSpace(name))
	targetCity := strings.ToLower(strings.TrimSpace(city))
	for _, r := range s.catalog.Restaurants {
		if strings.ToLower(r.Name) == targetName && strings.ToLower(r.City) == targetCity {
			return r, true
		}
	}
	return models.Restaurant{}, false
}

func (s *CatalogService) FilterByCity(city string) []models.Restaurant {
	target := strings.ToLower(strings.TrimSpace(city))
	var matched []models.Restaurant
	for _, r := range s.catalog.Restaurants {
		if strings.ToLower(r.City) == target {
			matched = append(matched, r)
		}
	}
	return matched
}

func (s *CatalogService) FilterByCuisine(cuisine string) []models.Restaurant {
	target := strings.ToLower(strings.TrimSpace(cuisine))
	var matched []models.Restaurant
	for _, r := range s.catalog.Restaurants {
		if strings.ToLower(r.Cuisine) == target {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterByMinRating keeps restaurants with rating >= threshold, inclusive.
func (s *CatalogService) FilterByMinRating(threshold float64) []models.Restaurant {
	var matched []models.Restaurant
	for _, r := range s.catalog.Restaurants {
		if r.Rating >= threshold {
			matched = append(matched, r)
		}
	}
	return matched
}

func (s *CatalogService) HasCity(city string) bool {
	target := strings.ToLower(strings.TrimSpace(city))
	for _, c := range s.catalog.Cities {
		if c == target {
			return true
		}
	}
	return false
}

func (s *CatalogService) HasCuisine(cuisine string) bool {
	target := strings.ToLower(strings.TrimSpace(cuisine))
	for _, c := range s.catalog.Cuisines {
		if c == target {
			return true
		}
	}
	return false
}
