package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ClientaTech Analyst specifics
	Warehouse WarehouseConfig
	Cache     CacheConfig
	Analyst   AnalystConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// WarehouseConfig points at the business database. Tables is the
// fixed list rendered by the schema introspector; generation prompts
// only ever see these tables.
type WarehouseConfig struct {
	Path   string
	Tables []string
}

// CacheConfig configures the SQL cache: a persistent SQLite file plus
// an in-process expirable hot layer.
type CacheConfig struct {
	Path       string
	HotEntries int    // max entries held in memory
	HotTTL     string // e.g. "10m"
}

// AnalystConfig tunes the response synthesizer.
type AnalystConfig struct {
	Timezone string // IANA name used to anchor relative-date phrasing
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"` // "ollama" or "openai"
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine — defaults plus env cover local runs.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("httpserver.port", 8080)
	viper.SetDefault("httpserver.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.colorenabled", true)

	viper.SetDefault("warehouse.path", "data/clientatech.db")
	viper.SetDefault("warehouse.tables", []string{"clientes", "contratos", "interacoes"})

	viper.SetDefault("cache.path", "data/cache.db")
	viper.SetDefault("cache.hotentries", 256)
	viper.SetDefault("cache.hotttl", "10m")

	viper.SetDefault("analyst.timezone", "America/Sao_Paulo")

	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.max_total_timeout", "5m")
}
