package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Feeds       []string   `yaml:"feeds"`
	Keywords    []string   `yaml:"keywords"`
	DaysBack    int        `yaml:"days_back"`
	MaxItems    int        `yaml:"max_items"`
	SMTP        SMTPConfig `yaml:"smtp"`
	EmailFrom   string     `yaml:"email_from"`
	EmailTo     []string   `yaml:"email_to"`
	WebhookURL  string     `yaml:"webhook_url"`
	ReportTitle string     `yaml:"report_title"`
	TZOffset    int        `yaml:"tz_offset"`
	OutFile     string     `yaml:"out_file"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// Load reads configuration from file (optional), applies environment
// overrides, then fills in defaults. An empty path skips the file and
// configures from environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnv overrides file values from the environment. Every key the
// original deployment set as a secret or workflow variable is honored here.
func (cfg *Config) applyEnv() {
	if v := os.Getenv("RSS_FEEDS"); v != "" {
		cfg.Feeds = splitList(v)
	}
	if v := os.Getenv("KEYWORDS"); v != "" {
		cfg.Keywords = splitList(v)
	}
	if v := os.Getenv("DAYS_BACK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.DaysBack = n
		}
	}
	if v := os.Getenv("MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxItems = n
		}
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = n
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.User = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.EmailFrom = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.EmailTo = splitList(v)
	}
	if v := os.Getenv("CHAT_WEBHOOK"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("REPORT_TITLE"); v != "" {
		cfg.ReportTitle = v
	}
	if v := os.Getenv("TZ_OFFSET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TZOffset = n
		}
	}
	if v := os.Getenv("OUT_FILE"); v != "" {
		cfg.OutFile = v
	}
}

func (cfg *Config) applyDefaults() {
	if cfg.DaysBack == 0 {
		cfg.DaysBack = 2
	}
	if cfg.MaxItems == 0 {
		cfg.MaxItems = 30
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTP.User
	}
	if cfg.ReportTitle == "" {
		cfg.ReportTitle = "Daily News Brief"
	}
	if cfg.OutFile == "" {
		cfg.OutFile = "report.html"
	}
}

// Validate checks feed URLs and the numeric windows.
func (cfg *Config) Validate() error {
	if cfg.DaysBack < 0 {
		return fmt.Errorf("days_back must be >= 0, got %d", cfg.DaysBack)
	}
	if cfg.MaxItems < 0 {
		return fmt.Errorf("max_items must be >= 0, got %d", cfg.MaxItems)
	}
	for _, u := range cfg.Feeds {
		if _, err := url.ParseRequestURI(u); err != nil {
			return fmt.Errorf("invalid feed URL %q: %w", u, err)
		}
	}
	return nil
}

// splitList splits a comma-separated value, trimming whitespace and
// dropping empty segments.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
