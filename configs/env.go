package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file if one is present. Missing files are fine in
// production where the environment is set by the host.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func EnvMongoURI() string {
	return os.Getenv("MONGOURI")
}

func EnvDBName() string {
	if name := os.Getenv("DB_NAME"); name != "" {
		return name
	}
	return "Machine-House"
}

func EnvStripeSecretKey() string {
	return os.Getenv("STRIPE_SK")
}

func EnvJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func EnvPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}
