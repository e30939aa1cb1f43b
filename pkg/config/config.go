package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Engine struct {
		SeriesLength  int     `yaml:"series_length"`
		StartPrice    float64 `yaml:"start_price"`
		Drift         float64 `yaml:"drift"`
		Volatility    float64 `yaml:"volatility"`
		FloorPrice    float64 `yaml:"floor_price"`
		BuyThreshold  float64 `yaml:"buy_threshold"`
		SellThreshold float64 `yaml:"sell_threshold"`
	} `yaml:"engine"`
	AI struct {
		APIKey      string        `yaml:"api_key"`
		BaseURL     string        `yaml:"base_url"`
		Model       string        `yaml:"model"`
		Temperature float64       `yaml:"temperature"`
		MaxTokens   int           `yaml:"max_tokens"`
		Timeout     time.Duration `yaml:"timeout"`
		// Outbound call budget; over-budget requests skip the provider
		// and degrade to the fallback text.
		MaxCallsPerSec float64 `yaml:"max_calls_per_sec"`
		Burst          float64 `yaml:"burst"`
	} `yaml:"ai"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// The AI credential is a secret and is expected to arrive via GROQ_API_KEY;
// its absence is tolerated so startup never fails on a missing key.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := os.Getenv("AI_BASE_URL"); v != "" {
		c.AI.BaseURL = v
	}
	if v := os.Getenv("AI_MODEL"); v != "" {
		c.AI.Model = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}

	return c, nil
}

// applyDefaults fills zero values with the engine and provider defaults.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Engine.SeriesLength == 0 {
		c.Engine.SeriesLength = 100
	}
	if c.Engine.StartPrice == 0 {
		c.Engine.StartPrice = 100.0
	}
	if c.Engine.Drift == 0 {
		c.Engine.Drift = 0.001
	}
	if c.Engine.Volatility == 0 {
		c.Engine.Volatility = 0.02
	}
	if c.Engine.FloorPrice == 0 {
		c.Engine.FloorPrice = 1.0
	}
	if c.Engine.BuyThreshold == 0 {
		c.Engine.BuyThreshold = 1.05
	}
	if c.Engine.SellThreshold == 0 {
		c.Engine.SellThreshold = 0.95
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://api.groq.com/openai/v1"
	}
	if c.AI.Model == "" {
		c.AI.Model = "llama-3.1-8b-instant"
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.3
	}
	if c.AI.MaxTokens == 0 {
		c.AI.MaxTokens = 500
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 30 * time.Second
	}
	if c.AI.MaxCallsPerSec == 0 {
		c.AI.MaxCallsPerSec = 5
	}
	if c.AI.Burst == 0 {
		c.AI.Burst = 10
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Engine.SeriesLength < 2 {
		return fmt.Errorf("engine.series_length must be at least 2")
	}
	if c.Engine.StartPrice <= 0 {
		return fmt.Errorf("engine.start_price must be positive")
	}
	if c.Engine.FloorPrice <= 0 {
		return fmt.Errorf("engine.floor_price must be positive")
	}
	if c.Engine.BuyThreshold <= c.Engine.SellThreshold {
		return fmt.Errorf("engine.buy_threshold must be greater than engine.sell_threshold")
	}
	if c.AI.Model == "" {
		return fmt.Errorf("ai.model is required")
	}
	return nil
}
