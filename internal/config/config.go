// Package config loads the tool configuration: landlord identity used as
// contract defaults, the DOCX template location, output directory, image
// fetch limits and SMTP settings for document delivery.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

type Owner struct {
	Name    string `yaml:"name"`
	DNI     string `yaml:"dni"`
	Contact string `yaml:"contact"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type ImagesConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
	MaxParallel    int `yaml:"max_parallel"`
}

type Config struct {
	Owner    Owner        `yaml:"owner"`
	Template string       `yaml:"template"`
	Output   string       `yaml:"output"`
	SMTP     SMTPConfig   `yaml:"smtp"`
	Email    EmailConfig  `yaml:"email"`
	Images   ImagesConfig `yaml:"images"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Template: "plantilla.docx",
		Output:   ".",
		Images:   ImagesConfig{TimeoutSeconds: 8, MaxParallel: 4},
	}
}

// Load reads the YAML configuration at path. A missing file is not an
// error: the defaults apply, so the tool runs with flags alone. A `.env`
// file and the SMTP_PASSWORD environment variable override the mail
// password so it can stay out of the config file.
func Load(path string) (*Config, error) {
	// Missing .env is fine; it only supplies overrides.
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults apply.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if pass := os.Getenv("SMTP_PASSWORD"); pass != "" {
		cfg.SMTP.Password = pass
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Template == "" {
		return fmt.Errorf("template path must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.Images.TimeoutSeconds < 0 {
		return fmt.Errorf("images.timeout_seconds must not be negative")
	}
	if c.Images.MaxParallel < 0 {
		return fmt.Errorf("images.max_parallel must not be negative")
	}
	return nil
}

// ImageTimeout returns the per-image fetch timeout.
func (c *Config) ImageTimeout() time.Duration {
	return time.Duration(c.Images.TimeoutSeconds) * time.Second
}
