package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	MongoURI     string
	DBName       string
	Port         string
	Storage      string
	CORSOrigin   string
	IsProduction bool
)

// Load reads the optional .env file and fills the package variables
// with defaults suitable for local development.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	MongoURI = getEnv("MONGO_URI", "mongodb://localhost:27017")
	DBName = getEnv("DB_NAME", "pokedex")
	Port = getEnv("PORT", "8080")
	Storage = getEnv("STORAGE", "mongo")
	CORSOrigin = getEnv("CORS_ORIGIN", "*")
	IsProduction = os.Getenv("IS_PRODUCTION") == "true"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
