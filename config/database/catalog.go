package database

import (
	"TandoorMate/config/environment"
	"TandoorMate/models"
	"encoding/json"
	"log"
	"os"
)

var catalog *models.Catalog

// InitCatalog loads the restaurant catalog from disk. The catalog is the
// only data source of the service; any failure here aborts startup.
func InitCatalog() {
	path := environment.GetCatalogPath()

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read restaurant catalog %s: %v", path, err)
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(raw, &restaurants); err != nil {
		log.Fatalf("Failed to parse restaurant catalog %s: %v", path, err)
	}
	if len(restaurants) == 0 {
		log.Fatalf("Restaurant catalog %s is empty", path)
	}

	catalog = models.NewCatalog(restaurants)
	log.Printf("Restaurant catalog loaded: %d restaurants, %d cities, %d cuisines",
		len(catalog.Restaurants), len(catalog.Cities), len(catalog.Cuisines))
}

// GetCatalog returns the catalog instance loaded at startup.
func GetCatalog() *models.Catalog {
	return catalog
}
