package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Session store backends
const (
	SessionStoreSQLite = "sqlite"
	SessionStoreMemory = "memory"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		AllowedOrigin string `yaml:"allowed_origin" env:"SERVER_ALLOWED_ORIGIN"`
	} `yaml:"server"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		RefreshTokenExpiration string `yaml:"refresh_token_expiration" env:"JWT_REFRESH_TOKEN_EXPIRATION"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Session struct {
		Store string `yaml:"store" env:"SESSION_STORE"`
		Path  string `yaml:"path" env:"SESSION_PATH"`
	} `yaml:"session"`

	Mock struct {
		Seed            int64  `yaml:"seed" env:"MOCK_SEED"`
		StudentCount    int    `yaml:"student_count" env:"MOCK_STUDENT_COUNT"`
		MutationLatency string `yaml:"mutation_latency" env:"MOCK_MUTATION_LATENCY"`
		LoginLatency    string `yaml:"login_latency" env:"MOCK_LOGIN_LATENCY"`
	} `yaml:"mock"`

	Admin struct {
		Name     string `yaml:"name" env:"ADMIN_NAME"`
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
	} `yaml:"admin"`

	RateLimit struct {
		LoginPerMinute int `yaml:"login_per_minute" env:"RATELIMIT_LOGIN_PER_MINUTE"`
		Burst          int `yaml:"burst" env:"RATELIMIT_BURST"`
	} `yaml:"ratelimit"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine; defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.AllowedOrigin = "http://localhost:5173"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.RefreshTokenExpiration = "168h"
	config.JWT.Issuer = "admissions-crm"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Session.Store = SessionStoreSQLite
	config.Session.Path = "data/session.db"

	config.Mock.StudentCount = 75
	config.Mock.MutationLatency = "500ms"
	config.Mock.LoginLatency = "1s"

	config.Admin.Name = "Sarah Johnson"
	config.Admin.Email = "admin@example.com"
	config.Admin.Password = "password"

	config.RateLimit.LoginPerMinute = 10
	config.RateLimit.Burst = 5
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT refresh token expiration format: %w", err)
	}

	switch config.Session.Store {
	case SessionStoreSQLite:
		if config.Session.Path == "" {
			return fmt.Errorf("session path is required for the sqlite store")
		}
	case SessionStoreMemory:
	default:
		return fmt.Errorf("unknown session store %q", config.Session.Store)
	}

	if config.Mock.StudentCount < 0 {
		return fmt.Errorf("mock student count must not be negative")
	}

	for name, value := range map[string]string{
		"mutation": config.Mock.MutationLatency,
		"login":    config.Mock.LoginLatency,
	} {
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			return fmt.Errorf("invalid mock %s latency %q", name, value)
		}
	}

	if config.Admin.Email == "" || config.Admin.Password == "" {
		return fmt.Errorf("admin email and password are required")
	}

	return nil
}

// AccessTokenTTL returns the parsed access token lifetime
func (c *Config) AccessTokenTTL() time.Duration {
	return mustDuration(c.JWT.AccessTokenExpiration)
}

// RefreshTokenTTL returns the parsed refresh token lifetime
func (c *Config) RefreshTokenTTL() time.Duration {
	return mustDuration(c.JWT.RefreshTokenExpiration)
}

// MutationLatency is the simulated delay for create, update and delete calls
func (c *Config) MutationLatency() time.Duration {
	return mustDuration(c.Mock.MutationLatency)
}

// LoginLatency is the simulated delay for session calls
func (c *Config) LoginLatency() time.Duration {
	return mustDuration(c.Mock.LoginLatency)
}

// mustDuration parses a duration already checked by validateConfig
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
