package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// MongoDB. DatabaseURL wins over the credential pieces when set.
	DatabaseURL  string        `mapstructure:"DATABASE_URL"`
	DBUser       string        `mapstructure:"DB_USER"`
	DBPass       string        `mapstructure:"DB_PASS"`
	DBHost       string        `mapstructure:"DB_HOST"`
	DatabaseName string        `mapstructure:"DATABASE_NAME"`
	DBTimeout    time.Duration `mapstructure:"DB_TIMEOUT"`

	// Token signing.
	TokenSecret string        `mapstructure:"ACCESS_TOKEN_SECRET"`
	TokenTTL    time.Duration `mapstructure:"TOKEN_TTL"`
}

var ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET must be set")

// Load reads defaults, an optional config.yaml, an optional .env file and the
// process environment, in increasing order of precedence.
func Load() (*Config, error) {
	// .env values never override variables already present in the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "cluster0.cnuoch3.mongodb.net")
	v.SetDefault("DATABASE_NAME", "carDoctor")
	v.SetDefault("DB_TIMEOUT", "5s")
	v.SetDefault("ACCESS_TOKEN_SECRET", "")
	v.SetDefault("TOKEN_TTL", "1h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	if c.TokenSecret == "" {
		return ErrMissingSecret
	}
	if _, err := strconv.Atoi(c.AppPort); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.AppPort, err)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT must be positive, got %s", c.DBTimeout)
	}
	return nil
}

// MongoURI returns DATABASE_URL when set, otherwise an SRV URI built from the
// credentials, otherwise a local default.
func (c *Config) MongoURI() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBUser != "" {
		creds := url.UserPassword(c.DBUser, c.DBPass).String()
		return fmt.Sprintf("mongodb+srv://%s@%s/?retryWrites=true&w=majority", creds, c.DBHost)
	}
	return "mongodb://localhost:27017"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
