package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret     string
	AdminUsername string
	AdminPassword string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system ENV")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	// Fixed operator credential; checked before any collection lookup.
	AdminUsername = GetEnv("ADMIN_USERNAME", "admin")
	AdminPassword = GetEnv("ADMIN_PASSWORD", "admin1234")

	// JWT_SECRET has no fallback: an empty secret disables token issuance
	// and verification instead of signing with a well-known default.
	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set! Authentication will be unavailable.")
	} else {
		log.Println("[INFO] JWT_SECRET loaded.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
