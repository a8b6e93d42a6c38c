package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the application.
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // seed default data on startup
	Address               string `env:"ADDRESS" envDefault:"8080"`                 // server port
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // MongoDB connection string
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // database name
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // allowed origins (comma separated, * = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // allow credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // max requests per window (0 = disabled)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // window length (seconds)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // toggle rate limiting

	// Traffic enrichment provider. Optional at startup: analyze requests fail
	// with a configuration error when the token is missing, the server does
	// not refuse to boot.
	ApifyToken string `env:"APIFY_TOKEN"`

	// AI research provider. Optional: email generation degrades gracefully
	// without it.
	PerplexityApiKey string `env:"PERPLEXITY_API_KEY"`

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"`
	TLSCertFile string `env:"TLS_CERT_FILE"` // certificate path (.crt or .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`  // private key path (.key)
}

// getEnvPath returns the env file path for the current environment.
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf because the logger may not be initialized yet
		fmt.Printf("Could not determine working directory: %v\n", err)
		return ""
	}

	// Walk up until a config/env directory is found
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads configuration from the environment file for GO_ENV.
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("config/env directory not found\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		fmt.Printf("Could not load env file at %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Error parsing config: %+v\n", err)
		return nil
	}

	return &cfg
}
