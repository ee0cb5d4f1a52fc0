package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultDatabase   = "sample_mflix"
	defaultCollection = "movies"
)

type Config struct {
	MongoURI   string
	Database   string
	Collection string
	LogLevel   string
}

var (
	configInstance *Config
	once           sync.Once
)

// InitConfig loads the .env file if present and reads the Mongo settings
// from the environment. MONGO_URI may be empty here; the caller can still
// supply the URI as a command-line argument before connecting.
func InitConfig(logger *zap.Logger) (*Config, error) {
	var initErr error

	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Debug("No .env file found; using system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		}

		cfg := &Config{
			MongoURI:   os.Getenv("MONGO_URI"),
			Database:   os.Getenv("MONGO_DB"),
			Collection: os.Getenv("MONGO_COLLECTION"),
			LogLevel:   os.Getenv("LOG_LEVEL"),
		}
		if cfg.Database == "" {
			cfg.Database = defaultDatabase
		}
		if cfg.Collection == "" {
			cfg.Collection = defaultCollection
		}

		configInstance = cfg
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}
