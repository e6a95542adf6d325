package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// POSConfigID selects which pos_config row this backend serves.
	POSConfigID int64
	// MaxRateDeviation is the manual-rate guardrail as a fraction of the
	// market rate (0.5 means a warning beyond 50% deviation).
	MaxRateDeviation float64
	// RateRefreshLimit is a ulule/limiter formatted rate, e.g. "10-M".
	RateRefreshLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("POS_CONFIG_ID", 1)
	viper.SetDefault("MAX_RATE_DEVIATION", 0.5)
	viper.SetDefault("RATE_REFRESH_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.POSConfigID = viper.GetInt64("POS_CONFIG_ID")
	if cfg.POSConfigID <= 0 {
		cfg.POSConfigID = 1
		log.Printf("Warning: Invalid value for POS_CONFIG_ID. Defaulting to %d.\n", cfg.POSConfigID)
	}

	cfg.MaxRateDeviation = viper.GetFloat64("MAX_RATE_DEVIATION")
	if cfg.MaxRateDeviation <= 0 {
		cfg.MaxRateDeviation = 0.5
		log.Printf("Warning: Invalid value for MAX_RATE_DEVIATION. Defaulting to %v.\n", cfg.MaxRateDeviation)
	}

	cfg.RateRefreshLimit = viper.GetString("RATE_REFRESH_LIMIT")
	if cfg.RateRefreshLimit == "" {
		cfg.RateRefreshLimit = "10-M"
	}

	if origins := viper.GetString("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, trimmed)
			}
		}
	}

	return cfg, nil
}
