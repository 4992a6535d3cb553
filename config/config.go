package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/marquee-dev/marquee/internal/util"
)

type Config struct {
	Env  string
	Addr string

	DatabaseDSN string
	RedisAddr   string
	MQURL       string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// LoadConfig reads configuration from the environment, with a .env file as
// a development convenience. DATABASE_DSN and JWT_SECRET are mandatory;
// REDIS_ADDR and RABBIT_MQ_URL are optional and disable their feature when
// absent.
func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Env:         getEnv("APP_ENV", "dev"),
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		MQURL:       os.Getenv("RABBIT_MQ_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlHours, err := getEnvInt("TOKEN_TTL_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.TokenTTL = time.Duration(ttlHours) * time.Hour

	cfg.BcryptCost, err = getEnvInt("BCRYPT_COST", bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
