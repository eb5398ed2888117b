package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port        int    `mapstructure:"PORT"`
	Env         string `mapstructure:"APP_ENV"`
	ServiceName string `mapstructure:"SERVICE_NAME"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	LogFormat   string `mapstructure:"LOG_FORMAT"`

	// Proposal storage: dynamodb | memory
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`

	// DynamoDB (local endpoints accept any static credentials)
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	ProposalsTable     string `mapstructure:"PROPOSALS_TABLE"`

	// Catalog and pricing tables: postgres | sqlite
	CatalogDBDriver    string `mapstructure:"CATALOG_DB_DRIVER"`
	CatalogDatabaseURL string `mapstructure:"CATALOG_DATABASE_URL"`
	SeedCatalog        bool   `mapstructure:"SEED_CATALOG"`

	// Redis (optional catalog cache)
	RedisURL   string        `mapstructure:"REDIS_URL"`
	CatalogTTL time.Duration `mapstructure:"CATALOG_CACHE_TTL"`

	// Generation
	DefaultLLMModel   string        `mapstructure:"DEFAULT_LLM_MODEL"`
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"`
	GenerationRetries int           `mapstructure:"GENERATION_RETRIES"`
	OpenAIAPIKey      string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL     string        `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel       string        `mapstructure:"OPENAI_MODEL"` // upstream name override
	OllamaURL         string        `mapstructure:"OLLAMA_URL"`
	OllamaModel       string        `mapstructure:"OLLAMA_MODEL"` // upstream tag override
	OllamaStream      bool          `mapstructure:"OLLAMA_STREAM"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_NAME", "remodeling-proposals")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("STORAGE_DRIVER", "dynamodb")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("PROPOSALS_TABLE", "proposals")
	v.SetDefault("CATALOG_DB_DRIVER", "sqlite")
	v.SetDefault("CATALOG_DATABASE_URL", "file:catalog.db?cache=shared")
	v.SetDefault("SEED_CATALOG", true)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CATALOG_CACHE_TTL", 10*time.Minute)
	v.SetDefault("DEFAULT_LLM_MODEL", "mock")
	v.SetDefault("GENERATION_TIMEOUT", 90*time.Second)
	v.SetDefault("GENERATION_RETRIES", 2)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("OPENAI_MODEL", "")
	v.SetDefault("OLLAMA_URL", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "")
	v.SetDefault("OLLAMA_STREAM", false)

	// Optional .env file for local development; a missing file is fine.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.CatalogDBDriver = strings.ToLower(strings.TrimSpace(cfg.CatalogDBDriver))
	cfg.DefaultLLMModel = strings.TrimSpace(cfg.DefaultLLMModel)
	cfg.ProposalsTable = strings.TrimSpace(cfg.ProposalsTable)
	return cfg, nil
}
