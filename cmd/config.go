package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`

	Storage    string `env:"STORAGE" env-default:"memory"`
	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"shopfloor"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" env-default:"shopfloor.order.changed"`

	ShopMachines    int `env:"SHOP_MACHINES" env-default:"5"`
	ShopHoursPerDay int `env:"SHOP_HOURS_PER_DAY" env-default:"8"`
	ShopDaysPerWeek int `env:"SHOP_DAYS_PER_WEEK" env-default:"5"`

	AlertCron       string `env:"ALERT_CRON" env-default:"0 7 * * *"`
	AlertWindowDays int    `env:"ALERT_WINDOW_DAYS" env-default:"3"`
	CapacityCron    string `env:"CAPACITY_CRON"`

	SeedCatalog bool `env:"SEED_CATALOG" env-default:"true"`
}

// LoadConfig reads an optional .env file into the environment and binds the
// environment onto Config. Variables already set win over the file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE %q, want %q or %q", cfg.Storage, StorageMemory, StoragePostgres)
	}
	if cfg.AlertWindowDays < 0 {
		return Config{}, fmt.Errorf("ALERT_WINDOW_DAYS must not be negative, got %d", cfg.AlertWindowDays)
	}

	return cfg, nil
}

// PostgresDSN is the gorm postgres connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
