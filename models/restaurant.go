package models

import "strings"

type Restaurant struct {
	Name       string     `json:"name"`
	City       string     `json:"city"`
	Cuisine    string     `json:"cuisine"`
	Rating     float64    `json:"rating"`
	PriceRange PriceRange `json:"price_range"`
	Menu       []MenuItem `json:"menu"`
}

type PriceRange struct {
	Symbol                string `json:"symbol"`
	ApproximateCostForTwo int    `json:"approximate_cost_for_two"`
}

type MenuItem struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description,omitempty"`
}

// Catalog holds every restaurant plus the derived lowercase city and cuisine
// sets. Built once at startup and never mutated afterwards.
type Catalog struct {
	Restaurants []Restaurant
	Cities      []string
	Cuisines    []string
}

func NewCatalog(restaurants []Restaurant) *Catalog {
	catalog := &Catalog{Restaurants: restaurants}

	seenCity := make(map[string]bool)
	seenCuisine := make(map[string]bool)
	for _, r := range restaurants {
		city := strings.ToLower(r.City)
		if !seenCity[city] {
			seenCity[city] = true
			catalog.Cities = append(catalog.Cities, city)
		}
		cuisine := strings.ToLower(r.Cuisine)
		if !seenCuisine[cuisine] {
			seenCuisine[cuisine] = true
			catalog.Cuisines = append(catalog.Cuisines, cuisine)
		}
	}

	return catalog
}
