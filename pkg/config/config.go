package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvPath = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine: values then come from the process env.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(defaultEnvPath)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Error("loading envs error", slog.String("error", err.Error()))
				os.Exit(1)
			}
			slog.Warn("no env file found, using process environment", slog.String("path", defaultEnvPath))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
