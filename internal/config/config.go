package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreFirestore = "firestore"
	StoreMongo     = "mongo"
	StoreMemory    = "memory"
)

// Config holds all configuration for the application.
type Config struct {
	Port              string        `mapstructure:"PORT"`
	GinMode           string        `mapstructure:"GIN_MODE"`
	ClientURLs        string        `mapstructure:"CLIENT_URLS"` // Comma separated
	AccessTokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTL          time.Duration `mapstructure:"TOKEN_TTL"`
	NodeEnv           string        `mapstructure:"NODE_ENV"`
	CookieSecure      string        `mapstructure:"COOKIE_SECURE"` // "true"/"false", empty follows NODE_ENV

	StoreDriver                      string `mapstructure:"STORE_DRIVER"`
	FirebaseProjectID                string `mapstructure:"FIREBASE_PROJECT_ID"`
	GoogleApplicationCredentials     string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
	FirebaseServiceAccountJSONBase64 string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_JSON_BASE64"`
	MongoURI                         string `mapstructure:"MONGO_URI"`
	MongoUser                        string `mapstructure:"DB_USER"`
	MongoPassword                    string `mapstructure:"DB_PASS"`
	MongoHost                        string `mapstructure:"MONGO_HOST"`
	MongoDatabase                    string `mapstructure:"MONGO_DATABASE"`

	StripeSecretKey string `mapstructure:"STRIPE_SECRET_KEY"`
	PaymentCurrency string `mapstructure:"PAYMENT_CURRENCY"`
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel     string `mapstructure:"GEMINI_MODEL"`
}

var envKeys = []string{
	"PORT", "GIN_MODE", "CLIENT_URLS", "ACCESS_TOKEN_SECRET", "TOKEN_TTL", "NODE_ENV", "COOKIE_SECURE",
	"STORE_DRIVER", "FIREBASE_PROJECT_ID", "GOOGLE_APPLICATION_CREDENTIALS", "FIREBASE_SERVICE_ACCOUNT_JSON_BASE64",
	"MONGO_URI", "DB_USER", "DB_PASS", "MONGO_HOST", "MONGO_DATABASE",
	"STRIPE_SECRET_KEY", "PAYMENT_CURRENCY", "GEMINI_API_KEY", "GEMINI_MODEL",
}

// LoadConfig loads configuration from environment variables using Viper.
// A .env file in the working directory is read first when present; real
// environment variables take precedence over it.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("CLIENT_URLS", "http://localhost:5173")
	v.SetDefault("TOKEN_TTL", "8760h")
	v.SetDefault("STORE_DRIVER", StoreFirestore)
	v.SetDefault("MONGO_DATABASE", "EduConnect")
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-001")

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without. Store and
// provider credentials are checked when those clients are opened.
func (c *Config) Validate() error {
	if c.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	switch c.StoreDriver {
	case StoreFirestore, StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("STORE_DRIVER %q is not one of firestore, mongo, memory", c.StoreDriver)
	}
	return nil
}

// AllowedOrigins splits CLIENT_URLS into the CORS allow-list.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ClientURLs, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// SecureCookies reports whether the token cookie is cleared with Secure and
// SameSite=None. COOKIE_SECURE overrides the NODE_ENV=production default.
func (c *Config) SecureCookies() bool {
	switch strings.ToLower(c.CookieSecure) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return c.NodeEnv == "production"
}
