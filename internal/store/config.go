package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Mode      string   `yaml:"mode"`
	Watchlist []string `yaml:"watchlist"`
	Search    struct {
		Provider       string `yaml:"provider"`
		MaxResults     int    `yaml:"max_results"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		APIKeyEnv      string `yaml:"api_key_env"`
	} `yaml:"search"`
	Research struct {
		CacheMinutes int  `yaml:"cache_minutes"`
		Disabled     bool `yaml:"disabled"`
	} `yaml:"research"`
	Quotes struct {
		Enabled  bool   `yaml:"enabled"`
		Exchange string `yaml:"exchange"`
	} `yaml:"quotes"`
	Schedule string `yaml:"schedule"`
}

func (c *Config) Validate() error {
	if c.Mode != "DRY_RUN" && c.Mode != "LIVE" {
		return fmt.Errorf("invalid mode '%s': must be 'DRY_RUN' or 'LIVE'", c.Mode)
	}
	switch c.Search.Provider {
	case "TAVILY", "GNEWS", "STATIC":
	default:
		return fmt.Errorf("search.provider must be 'TAVILY', 'GNEWS', or 'STATIC', got '%s'", c.Search.Provider)
	}
	if len(c.Watchlist) == 0 {
		return errors.New("watchlist cannot be empty")
	}
	if c.Search.MaxResults < 1 || c.Search.MaxResults > 3 {
		return fmt.Errorf("search.max_results must be between 1-3, got %d", c.Search.MaxResults)
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Search.Provider == "" {
		if c.Mode == "DRY_RUN" {
			c.Search.Provider = "STATIC"
		} else {
			c.Search.Provider = "TAVILY"
		}
	}
	if c.Search.MaxResults == 0 {
		c.Search.MaxResults = 3
	}
	if c.Search.TimeoutSeconds == 0 {
		c.Search.TimeoutSeconds = 30
	}
	if c.Search.APIKeyEnv == "" {
		c.Search.APIKeyEnv = "TAVILY_API_KEY"
	}
	if c.Research.CacheMinutes == 0 {
		c.Research.CacheMinutes = 60
	}
	if c.Quotes.Exchange == "" {
		c.Quotes.Exchange = "NSE"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
