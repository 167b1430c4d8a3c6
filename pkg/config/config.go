package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	CORSAllowedOrigin   string
	FirebaseCredentials string
	FirestoreProjectID  string
	FirestoreCollection string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "7800"),
		CORSAllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "https://taiwan-weather-alert.pages.dev"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", "serviceAccountKey.json"),
		FirestoreProjectID:  getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreCollection: getEnv("FIRESTORE_COLLECTION", "fcmTokens"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
