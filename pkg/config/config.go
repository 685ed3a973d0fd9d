package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nakkulla/notification-dispatch/pkg/logging"
)

// Config holds all configuration for notification-dispatch
type Config struct {
	// Notification content
	Message        string `yaml:"message" env:"NOTIFY_DISPATCH_MESSAGE"`
	Signature      string `yaml:"signature" env:"NOTIFY_DISPATCH_SIGNATURE"`
	Timestamp      bool   `yaml:"timestamp" env:"NOTIFY_DISPATCH_TIMESTAMP"`
	LiveTimestamp  bool   `yaml:"live_timestamp" env:"NOTIFY_DISPATCH_LIVE_TIMESTAMP"`
	SignatureFirst bool   `yaml:"signature_first" env:"NOTIFY_DISPATCH_SIGNATURE_FIRST"`

	// Delivery channels
	Email string `yaml:"email" env:"NOTIFY_DISPATCH_EMAIL"`
	Phone string `yaml:"phone" env:"NOTIFY_DISPATCH_PHONE"`
	Popup bool   `yaml:"popup" env:"NOTIFY_DISPATCH_POPUP"`

	// Diagnostics
	LogLevel string `yaml:"log_level" env:"NOTIFY_DISPATCH_LOG_LEVEL"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Message:   "Your order has been shipped",
		Signature: "Amazon",
		Timestamp: true,
		Email:     "nehasaniya@gmail.com",
		Phone:     "192783816832",
		Popup:     true,
		LogLevel:  "info",
	}
}

// Load loads configuration from file and environment.
// The result is not validated; callers apply their own overrides first and
// then call Validate.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if path := os.Getenv("NOTIFY_DISPATCH_CONFIG"); path != "" {
		return path
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "notification-dispatch", "config.yaml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "notification-dispatch", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var, flag or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables.
// A string variable that is set overrides its field even when empty, so an
// empty value clears it. Boolean variables are ignored when empty.
func loadFromEnv(cfg *Config) error {
	strs := []struct {
		env    string
		target *string
	}{
		{"NOTIFY_DISPATCH_MESSAGE", &cfg.Message},
		{"NOTIFY_DISPATCH_SIGNATURE", &cfg.Signature},
		{"NOTIFY_DISPATCH_EMAIL", &cfg.Email},
		{"NOTIFY_DISPATCH_PHONE", &cfg.Phone},
		{"NOTIFY_DISPATCH_LOG_LEVEL", &cfg.LogLevel},
	}
	for _, s := range strs {
		if value, ok := os.LookupEnv(s.env); ok {
			*s.target = value
		}
	}
	cfg.Email = strings.TrimSpace(cfg.Email)
	cfg.Phone = strings.TrimSpace(cfg.Phone)

	bools := []struct {
		env    string
		target *bool
	}{
		{"NOTIFY_DISPATCH_TIMESTAMP", &cfg.Timestamp},
		{"NOTIFY_DISPATCH_LIVE_TIMESTAMP", &cfg.LiveTimestamp},
		{"NOTIFY_DISPATCH_SIGNATURE_FIRST", &cfg.SignatureFirst},
		{"NOTIFY_DISPATCH_POPUP", &cfg.Popup},
	}
	for _, b := range bools {
		value := os.Getenv(b.env)
		if value == "" {
			continue
		}
		parsed, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", b.env, err)
		}
		*b.target = parsed
	}

	if os.Getenv("NOTIFY_DISPATCH_DEBUG") == "true" {
		cfg.LogLevel = "debug"
	}

	return nil
}

func parseBool(value string) (bool, error) {
	switch value {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%q (use true/false)", value)
	}
}

// Validate validates the configuration
func Validate(cfg *Config) error {
	if cfg.Email == "" && cfg.Phone == "" && !cfg.Popup {
		return fmt.Errorf("at least one delivery channel (email, phone or popup) is required")
	}

	if cfg.Email != "" && !strings.Contains(cfg.Email, "@") {
		return fmt.Errorf("email %q is not an address", cfg.Email)
	}

	if !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log_level %q", cfg.LogLevel)
	}

	return nil
}
