package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	EditorAccessCode  string

	// Synchronization controller tuning.
	DebounceDuration     time.Duration
	LoadRetryMaxAttempts int
	LoadRetryBaseDelay   time.Duration

	// Valuation: flat amount reported for the transport category until real
	// per-movement costing lands.
	TransportFlatRate decimal.Decimal

	// RateLimit uses the limiter "count-period" format, e.g. "60-M".
	RateLimit string

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
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "inbound-ops-backend")
	viper.SetDefault("EDITOR_ACCESS_CODE", "")
	viper.SetDefault("DEBOUNCE_DURATION", "1s")
	viper.SetDefault("LOAD_RETRY_MAX_ATTEMPTS", 4)
	viper.SetDefault("LOAD_RETRY_BASE_DELAY", "500ms")
	viper.SetDefault("TRANSPORT_FLAT_RATE", "450")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

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
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.EditorAccessCode = viper.GetString("EDITOR_ACCESS_CODE")
	if cfg.EditorAccessCode == "" {
		log.Println("Warning: EDITOR_ACCESS_CODE not set. Token issuance is disabled.")
	}

	debounceStr := viper.GetString("DEBOUNCE_DURATION")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil || debounce <= 0 {
		debounce = time.Second
		log.Printf("Warning: Invalid value for DEBOUNCE_DURATION ('%s'). Defaulting to %s.\n", debounceStr, debounce)
	}
	cfg.DebounceDuration = debounce

	cfg.LoadRetryMaxAttempts = viper.GetInt("LOAD_RETRY_MAX_ATTEMPTS")
	if cfg.LoadRetryMaxAttempts <= 0 {
		cfg.LoadRetryMaxAttempts = 4
	}

	baseDelayStr := viper.GetString("LOAD_RETRY_BASE_DELAY")
	baseDelay, err := time.ParseDuration(baseDelayStr)
	if err != nil || baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
		log.Printf("Warning: Invalid value for LOAD_RETRY_BASE_DELAY ('%s'). Defaulting to %s.\n", baseDelayStr, baseDelay)
	}
	cfg.LoadRetryBaseDelay = baseDelay

	flatRateStr := viper.GetString("TRANSPORT_FLAT_RATE")
	flatRate, err := decimal.NewFromString(flatRateStr)
	if err != nil || flatRate.IsNegative() {
		flatRate = decimal.NewFromInt(450)
		log.Printf("Warning: Invalid value for TRANSPORT_FLAT_RATE ('%s'). Defaulting to %s.\n", flatRateStr, flatRate)
	}
	cfg.TransportFlatRate = flatRate

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")

	return cfg, nil
}
