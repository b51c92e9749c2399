package environment

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file when present. Missing files are fine; real
// environments configure through actual environment variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetCatalogPath() string {
	return getEnv("CATALOG_PATH", "data/restaurants.json")
}

func GetTokenSecret() string {
	return getEnv("TOKEN_SECRET", "tandoormate-dev-secret")
}

func getEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}
