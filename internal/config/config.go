package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port     int    `validate:"required,gt=0,lte=65535"`
	LogLevel string `validate:"required,oneof=DEBUG INFO WARN ERROR"`
	APIKey   string `validate:"required"`

	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`

	DiscordToken         string
	DiscordRewardChannel string

	Rewards Rewards
}

// Rewards holds the reward-engine constants, loaded once at startup and
// injected into components
type Rewards struct {
	EntertainerBonusAmount int           `validate:"gte=0"`
	DefaultPostRequirement int           `validate:"gt=0"`
	SubmissionMatchWindow  time.Duration `validate:"gt=0"`
	ReconciliationCron     string        `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		APIKey:               getEnv("API_KEY", ""),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "5432"),
		DBName:               getEnv("DB_NAME", "rootsbot"),
		DiscordToken:         getEnv("DISCORD_TOKEN", ""),
		DiscordRewardChannel: getEnv("DISCORD_REWARD_CHANNEL", ""),
		Rewards: Rewards{
			ReconciliationCron:    getEnv("RECONCILIATION_CRON", "0 0 1 * *"),
			SubmissionMatchWindow: 60 * time.Second,
		},
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Rewards.EntertainerBonusAmount, err = getEnvInt("ENTERTAINER_BONUS_AMOUNT", 100); err != nil {
		return nil, err
	}
	if cfg.Rewards.DefaultPostRequirement, err = getEnvInt("DEFAULT_POST_REQUIREMENT", 15); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration against its struct constraints
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
