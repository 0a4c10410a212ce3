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

	// CompanyName appears on report headers (trial balance, statements).
	CompanyName string
	// CostOfSalesPrefix selects which expense account codes count as cost
	// of goods sold on the income statement.
	CostOfSalesPrefix string

	// Rate limiting
	RateLimitPeriod string
	RateLimitCount  int64

	// AllowedOrigins restricts CORS in production; ignored otherwise.
	AllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("COMPANY_NAME", "Mi Empresa")
	viper.SetDefault("COST_OF_SALES_PREFIX", "5101")
	viper.SetDefault("RATE_LIMIT_PERIOD", "1m")
	viper.SetDefault("RATE_LIMIT_COUNT", 300)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.CompanyName = viper.GetString("COMPANY_NAME")
	cfg.CostOfSalesPrefix = viper.GetString("COST_OF_SALES_PREFIX")
	cfg.RateLimitPeriod = viper.GetString("RATE_LIMIT_PERIOD")
	cfg.RateLimitCount = viper.GetInt64("RATE_LIMIT_COUNT")

	if origins := viper.GetString("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else if cfg.IsProduction {
		log.Println("Warning: ALLOWED_ORIGINS not set in production; allowing all origins.")
	}

	return cfg, nil
}
