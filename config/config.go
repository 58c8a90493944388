package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage strategies. Exactly one is active per deployment.
const (
	StrategyLocal    = "local"    // quota-limited JSON key file
	StrategySeedFile = "seedfile" // dev-only seed artifact rewriter
)

type Config struct {
	Server  ServerConfig
	Admin   AdminConfig
	Storage StorageConfig
	Gemini  GeminiConfig
	App     AppConfig
}

type ServerConfig struct {
	Port           string
	RequestLogPath string
	PublicDir      string
}

// AdminConfig holds the shared secret for the admin gate. The default is
// deliberately well known: the gate is cosmetic and provides no
// confidentiality, since the secret is visible to anyone who can read the
// deployment.
type AdminConfig struct {
	Password string
}

type StorageConfig struct {
	Strategy   string
	DataDir    string
	Namespace  string
	QuotaBytes int64
	SeedPath   string
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
}

type AppConfig struct {
	Environment string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestLogPath: getEnv("REQUEST_LOG_PATH", "server.log"),
			PublicDir:      getEnv("PUBLIC_DIR", "public"),
		},
		Admin: AdminConfig{
			Password: getEnv("ADMIN_PASSWORD", "yazid"),
		},
		Storage: StorageConfig{
			Strategy:   getEnv("STORAGE_STRATEGY", StrategyLocal),
			DataDir:    getEnv("DATA_DIR", "data"),
			Namespace:  getEnv("STORAGE_NAMESPACE", "elyazid_portfolio_projects"),
			QuotaBytes: getEnvAsInt64("STORAGE_QUOTA_BYTES", 5*1024*1024),
			SeedPath:   getEnv("SEED_PATH", "seed/seed.json"),
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_BASE_URL", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Storage.Strategy {
	case StrategyLocal, StrategySeedFile:
	default:
		return fmt.Errorf("unknown STORAGE_STRATEGY %q", c.Storage.Strategy)
	}

	// The seed-file strategy rewrites source artifacts and has no auth of
	// its own; refuse to run it outside development.
	if c.Storage.Strategy == StrategySeedFile && c.App.Environment == "production" {
		return fmt.Errorf("STORAGE_STRATEGY=seedfile is a development-only strategy")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
