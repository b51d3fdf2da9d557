package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port            int `yaml:"port"`
		ShutdownSeconds int `yaml:"shutdown_seconds"`
	} `yaml:"server"`
	News struct {
		Days                  int      `yaml:"days"`
		MaxArticles           int      `yaml:"max_articles"`
		Sources               []string `yaml:"sources"` // NEWSAPI, FINNHUB, YAHOO
		ScraperTimeoutSeconds int      `yaml:"scraper_timeout_seconds"`
	} `yaml:"news"`
	Classifier struct {
		Provider       string  `yaml:"provider"` // FINBERT, OPENAI, LEXICON
		Model          string  `yaml:"model"`
		Endpoint       string  `yaml:"endpoint"` // FinBERT inference sidecar
		LabelThreshold float64 `yaml:"label_threshold"`
		MaxTokens      int     `yaml:"max_tokens"`
	} `yaml:"classifier"`
	Cache struct {
		TTLMinutes int `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Scoring struct {
		Weights struct {
			Sentiment   float64 `yaml:"sentiment"`
			Consistency float64 `yaml:"consistency"`
			Volume      float64 `yaml:"volume"`
			Recency     float64 `yaml:"recency"`
		} `yaml:"weights"`
		Amplification float64 `yaml:"amplification"`
	} `yaml:"scoring"`
	Reports struct {
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"reports"`
}

func (c *Config) Validate() error {
	switch c.Classifier.Provider {
	case "FINBERT", "OPENAI", "LEXICON":
	default:
		return fmt.Errorf("invalid classifier provider '%s': must be 'FINBERT', 'OPENAI', or 'LEXICON'", c.Classifier.Provider)
	}
	if c.News.Days < 1 || c.News.Days > 30 {
		return fmt.Errorf("news.days must be between 1-30, got %d", c.News.Days)
	}
	if c.News.MaxArticles < 1 || c.News.MaxArticles > 100 {
		return fmt.Errorf("news.max_articles must be between 1-100, got %d", c.News.MaxArticles)
	}
	for _, src := range c.News.Sources {
		if src != "NEWSAPI" && src != "FINNHUB" && src != "YAHOO" {
			return fmt.Errorf("unknown news source '%s': must be 'NEWSAPI', 'FINNHUB', or 'YAHOO'", src)
		}
	}
	if c.Classifier.Provider == "FINBERT" && c.Classifier.Endpoint == "" {
		return fmt.Errorf("classifier.endpoint is required when provider is FINBERT")
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

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownSeconds == 0 {
		c.Server.ShutdownSeconds = 10
	}
	if c.News.Days == 0 {
		c.News.Days = 7
	}
	if c.News.MaxArticles == 0 {
		c.News.MaxArticles = 50
	}
	if len(c.News.Sources) == 0 {
		c.News.Sources = []string{"NEWSAPI", "FINNHUB", "YAHOO"}
	}
	if c.News.ScraperTimeoutSeconds == 0 {
		c.News.ScraperTimeoutSeconds = 30
	}
	if c.Classifier.Provider == "" {
		c.Classifier.Provider = "LEXICON"
	}
	if c.Classifier.LabelThreshold == 0 {
		c.Classifier.LabelThreshold = 0.3
	}
	if c.Classifier.MaxTokens == 0 {
		c.Classifier.MaxTokens = 500
	}
	if c.Cache.TTLMinutes == 0 {
		c.Cache.TTLMinutes = 60
	}
	if c.Reports.Dir == "" {
		c.Reports.Dir = "reports"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &c, nil
}
