package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime configuration for the SmartMart backend.
type Config struct {
	DataDir   string `envconfig:"DATA_DIR"   default:"data"`
	AppPort   string `envconfig:"APP_PORT"   default:"8080"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
}

var (
	config Config
	once   sync.Once
)

// Load reads .env (if present) and then the process environment.
// Safe to call more than once; only the first call does work.
func Load(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
	})
	return &config
}

// NewLogger builds the process-wide logrus logger at Info level; callers
// adjust the level once configuration is loaded.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}
