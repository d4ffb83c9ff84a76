package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Session Config
	SessionCookieName string
	SessionTTL        time.Duration

	// External OAuth Providers
	GithubClientID     string `mapstructure:"GITHUB_CLIENT_ID"`
	GithubClientSecret string `mapstructure:"GITHUB_CLIENT_SECRET"`
	GithubRedirectURL  string `mapstructure:"GITHUB_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`

	// Rate limit applied to the credential endpoints, in ulule/limiter
	// formatted notation (e.g. "5-M" for 5 per minute).
	LoginRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SESSION_COOKIE_NAME", "session_id")
	viper.SetDefault("SESSION_TTL", "168h")
	viper.SetDefault("GITHUB_CLIENT_ID", "")
	viper.SetDefault("GITHUB_CLIENT_SECRET", "")
	viper.SetDefault("GITHUB_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	sessionTTLStr := viper.GetString("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		sessionTTL = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for SESSION_TTL ('%s'). Defaulting to %s.\n", sessionTTLStr, sessionTTL.String())
	}
	cfg.SessionTTL = sessionTTL

	cfg.GithubClientID = viper.GetString("GITHUB_CLIENT_ID")
	cfg.GithubClientSecret = viper.GetString("GITHUB_CLIENT_SECRET")
	cfg.GithubRedirectURL = viper.GetString("GITHUB_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	if cfg.GithubClientID == "" {
		log.Println("Warning: GITHUB_CLIENT_ID not set. GitHub OAuth will not function.")
	}
	if cfg.GithubClientSecret == "" {
		log.Println("Warning: GITHUB_CLIENT_SECRET not set. GitHub OAuth will not function.")
	}
	if cfg.GithubRedirectURL == "" {
		log.Println("Warning: GITHUB_REDIRECT_URL not set. GitHub OAuth will not function.")
	}

	return cfg, nil
}
