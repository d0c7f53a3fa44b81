package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the settings of the example program.
type Config struct {
	Env   string `validate:"required,oneof=dev prod"`
	Retry struct {
		Retries      int           `validate:"gte=0,lte=10"`
		InitialDelay time.Duration `validate:"gte=0"`
	}
	Log struct {
		Level string `validate:"required,oneof=debug info warn error"`
		File  string
	}
}

var validate = validator.New()

// Load reads configuration from environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	c.Env = getenv("OUTCOME_ENV", "dev")
	c.Log.Level = strings.ToLower(getenv("OUTCOME_LOG_LEVEL", "info"))
	c.Log.File = os.Getenv("OUTCOME_LOG_FILE")

	retries, err := strconv.Atoi(getenv("OUTCOME_RETRIES", "3"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTCOME_RETRIES: %w", err)
	}
	c.Retry.Retries = retries

	delay, err := time.ParseDuration(getenv("OUTCOME_RETRY_DELAY", "200ms"))
	if err != nil {
		return Config{}, fmt.Errorf("OUTCOME_RETRY_DELAY: %w", err)
	}
	c.Retry.InitialDelay = delay

	if err := validate.Struct(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
