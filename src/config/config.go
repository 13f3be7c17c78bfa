package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port         string
	Env          string // "development" or "production"
	LogLevel     string
	JWTSecret    string
	DatabasePath string

	// Steam upstream settings
	SteamAPIKey           string
	SteamCommunityBaseURL string
	SteamRequestTimeout   time.Duration
	InventoryCacheTTL     time.Duration

	AccessTokenExpiry time.Duration
}

var Cfg *AppConfig

// IsDevelopment reports whether the server runs with development-mode
// disclosure (error details included in failure envelopes).
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	jwtSecret := getEnv("JWT_SECRET", "your-very-secure-and-long-jwt-secret-key-for-hs256-minimum-32-bytes")
	if jwtSecret == "your-very-secure-and-long-jwt-secret-key-for-hs256-minimum-32-bytes" {
		log.Println("WARNING: Using default insecure JWT_SECRET. Set JWT_SECRET environment variable for production.")
	}

	steamAPIKey := getEnv("STEAM_API_KEY", "")
	if steamAPIKey == "" {
		log.Println("WARNING: STEAM_API_KEY not set. Upstream calls will be issued without a service credential.")
	}

	env := getEnv("APP_ENV", "development")
	if env != "development" && env != "production" {
		log.Printf("WARNING: Unknown APP_ENV '%s'. Falling back to 'production' disclosure rules.", env)
		env = "production"
	}

	Cfg = &AppConfig{
		Port:         getEnv("PORT", "8080"),
		Env:          env,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		JWTSecret:    jwtSecret,
		DatabasePath: getEnv("DATABASE_PATH", "./steamshare.db"),

		SteamAPIKey:           steamAPIKey,
		SteamCommunityBaseURL: getEnv("STEAM_COMMUNITY_BASE_URL", "https://steamcommunity.com"),
		SteamRequestTimeout:   getEnvAsDuration("STEAM_REQUEST_TIMEOUT", 15*time.Second),
		InventoryCacheTTL:     getEnvAsDuration("INVENTORY_CACHE_TTL", 5*time.Minute),

		AccessTokenExpiry: getEnvAsDuration("ACCESS_TOKEN_EXPIRY", 60*time.Minute),
	}

	log.Printf("Configuration loaded: Port=%s, Env=%s, LogLevel=%s, DBPath=%s, SteamBaseURL=%s",
		Cfg.Port, Cfg.Env, Cfg.LogLevel, Cfg.DatabasePath, Cfg.SteamCommunityBaseURL)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
