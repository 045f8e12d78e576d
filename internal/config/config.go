package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Source struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		CSVDir  string `yaml:"csv_dir"`
	} `yaml:"source"`
	Sheets struct {
		PriceColumn string   `yaml:"price_column"`
		DateColumn  string   `yaml:"date_column"`
		Excluded    []string `yaml:"excluded"`
		PauseSec    int      `yaml:"pause_sec"`
	} `yaml:"sheets"`
	Schedule struct {
		AnalyzeCron string `yaml:"analyze_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SHEETS_BASE_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("SHEETS_API_KEY"); v != "" {
		cfg.Source.APIKey = v
	}
	if v := os.Getenv("SHEETS_CSV_DIR"); v != "" {
		cfg.Source.CSVDir = v
	}
	if v := os.Getenv("PRICE_COLUMN"); v != "" {
		cfg.Sheets.PriceColumn = v
	}
	if v := os.Getenv("DATE_COLUMN"); v != "" {
		cfg.Sheets.DateColumn = v
	}
	if v := os.Getenv("SHEET_PAUSE_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Sheets.PauseSec = n
		}
	}
	if v := os.Getenv("CRON_ANALYZE"); v != "" {
		cfg.Schedule.AnalyzeCron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.ListenAddr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Sheets.PriceColumn == "" {
		cfg.Sheets.PriceColumn = "Cours (F CFA)"
	}
	if cfg.Sheets.DateColumn == "" {
		cfg.Sheets.DateColumn = "Date"
	}
	if len(cfg.Sheets.Excluded) == 0 {
		cfg.Sheets.Excluded = []string{"UNMATCHED"}
	}
	if cfg.Sheets.PauseSec == 0 {
		cfg.Sheets.PauseSec = 2
	}
	if cfg.Schedule.AnalyzeCron == "" {
		// Weekday evenings, after the BRVM close.
		cfg.Schedule.AnalyzeCron = "0 0 19 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/boursesignal.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Source.BaseURL == "" && c.Source.CSVDir == "" {
		return fmt.Errorf("either source.base_url or source.csv_dir is required")
	}
	if c.Source.BaseURL != "" && c.Source.CSVDir != "" {
		return fmt.Errorf("source.base_url and source.csv_dir are mutually exclusive")
	}
	if c.Sheets.PriceColumn == "" {
		return fmt.Errorf("sheets.price_column is required")
	}
	if c.Sheets.PauseSec < 0 {
		return fmt.Errorf("sheets.pause_sec must not be negative")
	}
	return nil
}
