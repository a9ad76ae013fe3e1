package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	CORS     CORSConfig
	Session  SessionConfig
	Checkout CheckoutConfig
	Promo    PromoConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for the operator endpoints
}

type CORSConfig struct {
	AllowedOrigins []string
}

// SessionConfig controls the lifetime of visitor sessions and their
// transient notifications.
type SessionConfig struct {
	IdleTimeout     time.Duration
	NotificationTTL time.Duration
}

// CheckoutConfig controls the simulated order submission.
type CheckoutConfig struct {
	SubmitDelay time.Duration
	ResetDelay  time.Duration
	DeliveryFee int64
}

type PromoConfig struct {
	Sources []string // file paths or http(s) URLs, plain or gzip
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("API_KEYS", []string{"apitest"}),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
		},
		Session: SessionConfig{
			IdleTimeout:     getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			NotificationTTL: getEnvAsDuration("NOTIFICATION_TTL", 3*time.Second),
		},
		Checkout: CheckoutConfig{
			SubmitDelay: getEnvAsDuration("CHECKOUT_SUBMIT_DELAY", 2*time.Second),
			ResetDelay:  getEnvAsDuration("CHECKOUT_RESET_DELAY", 3*time.Second),
			DeliveryFee: int64(getEnvAsInt("DELIVERY_FEE", 40)),
		},
		Promo: PromoConfig{
			Sources: getEnvAsSlice("PROMO_SOURCES", nil),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}

	if c.Session.NotificationTTL <= 0 {
		return fmt.Errorf("NOTIFICATION_TTL must be positive")
	}

	if c.Checkout.SubmitDelay < 0 || c.Checkout.ResetDelay < 0 {
		return fmt.Errorf("checkout delays must not be negative")
	}

	if c.Checkout.DeliveryFee < 0 {
		return fmt.Errorf("DELIVERY_FEE must not be negative")
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
