// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Port           string  `mapstructure:"PORT"`
	JWTSecret      string  `mapstructure:"JWT_SECRET"`
	RedisURL       string  `mapstructure:"REDIS_URL"`
	DBPath         string  `mapstructure:"DB_PATH"`
	AuthBaseURL    string  `mapstructure:"AUTH_BASE_URL"`
	SessionKey     string  `mapstructure:"SESSION_KEY"`
	SimTickSeconds int     `mapstructure:"SIM_TICK_SECONDS"`
	SimLikeProb    float64 `mapstructure:"SIM_LIKE_PROBABILITY"`
	Env            string  `mapstructure:"APP_ENV"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The base config file is optional; defaults and env vars cover development.
	_ = viper.ReadInConfig()

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	if env != "development" {
		viper.SetConfigName("config." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("required profile-specific config 'config.%s.yml' not found: %w", env, err)
		}
		log.Printf("Loaded profile-specific configuration: config.%s.yml", env)
	}

	viper.SetDefault("PORT", "8375")
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("DB_PATH", "eventwall.db")
	viper.SetDefault("AUTH_BASE_URL", "http://localhost:8375")
	viper.SetDefault("SESSION_KEY", "eventwall_user")
	viper.SetDefault("SIM_TICK_SECONDS", 15)
	viper.SetDefault("SIM_LIKE_PROBABILITY", 0.1)
	viper.SetDefault("APP_ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and sane.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.SessionKey == "" {
		return errors.New("SESSION_KEY is required")
	}
	if c.SimTickSeconds <= 0 {
		return errors.New("SIM_TICK_SECONDS must be positive")
	}
	if c.SimLikeProb < 0 || c.SimLikeProb > 1 {
		return errors.New("SIM_LIKE_PROBABILITY must be within [0, 1]")
	}

	isProduction := c.Env == "production" || c.Env == "prod"
	if isProduction {
		if c.JWTSecret == "your-secret-key-change-in-production" {
			return errors.New("JWT_SECRET must be changed from the default value in production")
		}
		if len(c.JWTSecret) < 32 {
			return errors.New("JWT_SECRET must be at least 32 characters in production")
		}
	}

	return nil
}
