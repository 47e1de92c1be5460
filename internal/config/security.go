// Package config loads the application's security policy.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SecurityConfig represents the security policy loaded from YAML.
type SecurityConfig struct {
	Security struct {
		Password struct {
			MinLength     int      `yaml:"min_length"`
			WeakPasswords []string `yaml:"weak_passwords"`
		} `yaml:"password"`
		JWT struct {
			SecretEnv   string `yaml:"secret_env"`
			ExpiryHours int    `yaml:"expiry_hours"`
		} `yaml:"jwt"`
	} `yaml:"security"`
}

// DefaultSecurityConfig returns the policy used when no config file is
// present: 8-character minimum, a small weak-password list and 72-hour
// tokens read from JWT_SECRET.
func DefaultSecurityConfig() *SecurityConfig {
	var config SecurityConfig
	config.Security.Password.MinLength = 8
	config.Security.Password.WeakPasswords = []string{"password", "12345678", "qwerty123"}
	config.Security.JWT.SecretEnv = "JWT_SECRET"
	config.Security.JWT.ExpiryHours = 72
	return &config
}

// LoadSecurityConfig loads the security policy from a YAML file.
// The path parameter is expected to come from a trusted source (command-line argument or hardcoded default).
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadSecurityConfigOrDefault loads the policy from path, falling back to
// the defaults when the file does not exist. Any other error is returned.
func LoadSecurityConfigOrDefault(path string) (*SecurityConfig, error) {
	config, err := LoadSecurityConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultSecurityConfig(), nil
		}
		return nil, err
	}
	return config, nil
}

// validateSecurityConfig validates the loaded configuration.
func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.Password.MinLength <= 0 {
		return fmt.Errorf("password min_length must be positive")
	}
	if config.Security.Password.MinLength < 8 {
		return fmt.Errorf("password min_length must be at least 8")
	}
	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.ExpiryHours <= 0 {
		return fmt.Errorf("jwt expiry_hours must be positive")
	}
	return nil
}

// GetMinPasswordLength returns the minimum password length requirement.
func (c *SecurityConfig) GetMinPasswordLength() int {
	return c.Security.Password.MinLength
}

// GetWeakPasswords returns the list of rejected weak passwords.
func (c *SecurityConfig) GetWeakPasswords() []string {
	return c.Security.Password.WeakPasswords
}

// GetJWTSecretEnv returns the environment variable name for the JWT secret.
func (c *SecurityConfig) GetJWTSecretEnv() string {
	return c.Security.JWT.SecretEnv
}

// GetJWTExpiryHours returns the JWT expiry time in hours.
func (c *SecurityConfig) GetJWTExpiryHours() int {
	return c.Security.JWT.ExpiryHours
}
