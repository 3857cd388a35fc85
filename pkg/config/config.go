package config

import (
	"log"
	"os"

	"DeviceDB/utils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// defaultBrands is the full catalog brand list scraped when config.yml does
// not override it.
var defaultBrands = []string{
	"samsung", "xiaomi", "oneplus", "oppo", "vivo", "iqoo", "poco", "motorola",
	"nokia", "sony", "huawei", "honor", "google", "infinix", "apple", "realme",
	"tecno", "lenovo", "asus",
}

// ScraperConfig holds general scraper settings.
type ScraperConfig struct {
	Headless          bool     `yaml:"headless"`
	Brands            []string `yaml:"brands"`
	CooldownHours     int      `yaml:"cooldown_hours"`
	NavTimeoutSeconds int      `yaml:"nav_timeout_seconds"`
	SettleMillis      int      `yaml:"settle_ms"`
	MaxLoadMoreClicks int      `yaml:"max_load_more_clicks"`
	UserAgent         string   `yaml:"user_agent"`
}

// SmartprixConfig holds settings specific to the catalog site.
type SmartprixConfig struct {
	PhoneBaseURL  string `yaml:"phone_base_url"`
	TabletBaseURL string `yaml:"tablet_base_url"`
}

// SMTPConfig holds the notification transport settings. From, To and Password
// come from the environment (EMAIL_USER / EMAIL_TO / EMAIL_PASS) so that
// credentials stay out of config.yml.
type SMTPConfig struct {
	Server   string `yaml:"server"`
	Port     int    `yaml:"port"`
	From     string `yaml:"-"`
	To       string `yaml:"-"`
	Password string `yaml:"-"`
}

// ServerConfig holds query API settings.
type ServerConfig struct {
	Port               string `yaml:"port"`
	MetricsPort        string `yaml:"metrics_port"`
	RateLimitRequests  int    `yaml:"rate_limit_requests"`
	RateLimitWindowHrs int    `yaml:"rate_limit_window_hours"`
}

// Config is the complete structure for the config.yml file.
type Config struct {
	Scraper   ScraperConfig   `yaml:"scraper"`
	Smartprix SmartprixConfig `yaml:"smartprix"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Server    ServerConfig    `yaml:"server"`

	// DatabaseDSN is the path of the SQLite device store, taken from the
	// DEVICEDB_DSN environment variable. It has no default on purpose:
	// running without persistence is a startup error.
	DatabaseDSN string `yaml:"-"`
}

// Load reads config.yml, layers environment variables on top and applies
// defaults. A missing config file or store DSN is fatal.
func Load(filepath string) *Config {
	// .env in the working directory, if present. Ignored when absent so
	// deployments can rely on real environment variables instead.
	_ = godotenv.Load()

	data, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Error unmarshalling config YAML: %v", err)
	}

	cfg.applyDefaults()

	cfg.DatabaseDSN = os.Getenv("DEVICEDB_DSN")
	if cfg.DatabaseDSN == "" {
		log.Fatal("DEVICEDB_DSN not set: the device store connection string is required")
	}

	cfg.SMTP.From = os.Getenv("EMAIL_USER")
	cfg.SMTP.To = os.Getenv("EMAIL_TO")
	cfg.SMTP.Password = os.Getenv("EMAIL_PASS")

	return &cfg
}

func (cfg *Config) applyDefaults() {
	if len(cfg.Scraper.Brands) == 0 {
		cfg.Scraper.Brands = defaultBrands
	}
	cfg.Scraper.Brands = utils.UniqueStrings(cfg.Scraper.Brands)
	if cfg.Scraper.CooldownHours == 0 {
		cfg.Scraper.CooldownHours = 24
	}
	if cfg.Scraper.NavTimeoutSeconds <= 0 {
		cfg.Scraper.NavTimeoutSeconds = 60
	}
	if cfg.Scraper.SettleMillis <= 0 {
		cfg.Scraper.SettleMillis = 2000
	}
	if cfg.Scraper.MaxLoadMoreClicks <= 0 {
		cfg.Scraper.MaxLoadMoreClicks = 200
	}
	if cfg.Scraper.UserAgent == "" {
		cfg.Scraper.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	}
	if cfg.Smartprix.PhoneBaseURL == "" {
		cfg.Smartprix.PhoneBaseURL = "https://www.smartprix.com/"
	}
	if cfg.Smartprix.TabletBaseURL == "" {
		cfg.Smartprix.TabletBaseURL = "https://www.smartprix.com/tablets/"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.MetricsPort == "" {
		cfg.Server.MetricsPort = "9090"
	}
	if cfg.Server.RateLimitRequests <= 0 {
		cfg.Server.RateLimitRequests = 10
	}
	if cfg.Server.RateLimitWindowHrs <= 0 {
		cfg.Server.RateLimitWindowHrs = 24
	}
}
