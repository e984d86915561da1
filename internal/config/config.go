package config

import (
	"os"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port          string
	DBPath        string
	JWTSecret     string
	PartnerAPIKey string // Shared key partners exchange for a JWT
	TokenTTL      time.Duration
	RateLimit     int // Requests per IP per window
	RateWindow    time.Duration
}

// Load reads configuration from the environment with sensible defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/catalog/listings.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	partnerKey := os.Getenv("PARTNER_API_KEY")
	if partnerKey == "" {
		partnerKey = "dev-partner-key"
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		JWTSecret:     jwtSecret,
		PartnerAPIKey: partnerKey,
		TokenTTL:      24 * time.Hour,
		RateLimit:     120,
		RateWindow:    time.Minute,
	}
}
