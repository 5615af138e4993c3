package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config holds application configuration.
type Config struct {
	SKUFile          string        `env:"SKU_FILE" envDefault:"SKU_Ozon.txt"`
	ProductURLFormat string        `env:"PRODUCT_URL_FORMAT" envDefault:"https://www.ozon.ru/product/%s/"`
	CycleInterval    time.Duration `env:"CYCLE_INTERVAL" envDefault:"60s"`
	PageTimeout      time.Duration `env:"PAGE_TIMEOUT" envDefault:"15s"`
	FieldTimeout     time.Duration `env:"FIELD_TIMEOUT" envDefault:"10s"`

	Storage  Storage
	Browser  Browser
	RabbitMQ RabbitMQ
}

// Storage holds snapshot store configuration.
type Storage struct {
	Backend     string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBName      string `env:"DB_NAME" envDefault:"price_watcher"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"snapshots.db"`
}

// DSN returns the Postgres connection string. When DATABASE_URL is not set
// it is built from the discrete DB_* variables.
func (s Storage) DSN() string {
	if s.DatabaseURL != "" {
		return s.DatabaseURL
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.DBUser, s.DBPassword),
		Host:     fmt.Sprintf("%s:%s", s.DBHost, s.DBPort),
		Path:     s.DBName,
		RawQuery: "sslmode=disable",
	}

	return dsn.String()
}

// Browser holds browser session configuration.
type Browser struct {
	Headless     bool   `env:"HEADLESS" envDefault:"true"`
	NoSandbox    bool   `env:"NO_SANDBOX" envDefault:"true"`
	UserAgent    string `env:"USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"`
	WindowWidth  int    `env:"WINDOW_WIDTH" envDefault:"1920"`
	WindowHeight int    `env:"WINDOW_HEIGHT" envDefault:"1080"`
	Bin          string `env:"BROWSER_BIN"`
}

// RabbitMQ holds snapshot event publishing configuration.
// Publishing is disabled when URL is empty.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"price-watcher-ex"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"price-watcher.snapshots"`
}
