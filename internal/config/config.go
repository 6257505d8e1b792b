package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"papagowf/internal/domain"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"disabled"`

	CredentialsFile string `envconfig:"PAPAGO_CREDENTIALS_FILE" default:"client_key.json"`
	LanguagesFile   string `envconfig:"PAPAGO_LANGUAGES_FILE" default:"available_language_codes.json"`
	BaseURL         string `envconfig:"PAPAGO_BASE_URL" default:"https://openapi.naver.com/v1/papago/"`
	IconPath        string `envconfig:"PAPAGO_ICON_PATH" default:"icon.png"`
	Locale          string `envconfig:"PAPAGO_LOCALE" default:"ko"`
}

// VarError names the environment variable that failed validation.
type VarError struct {
	Var string
	Err error
}

func (e *VarError) Error() string { return fmt.Sprintf("%s: %v", e.Var, e.Err) }

func (e *VarError) Unwrap() error { return e.Err }

// Load reads an optional .env file, then the environment, and validates the result.
// Failures carry the offending variable name as Source.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; the launcher usually passes workflow variables through the environment.
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		source := "environment"
		var parseErr *envconfig.ParseError
		if errors.As(err, &parseErr) {
			source = parseErr.KeyName
		}
		return nil, &domain.ConfigurationError{Code: domain.CodeConfigInvalid, Source: source, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		source := "environment"
		var varErr *VarError
		if errors.As(err, &varErr) {
			source = varErr.Var
		}
		return nil, &domain.ConfigurationError{Code: domain.CodeConfigInvalid, Source: source, Err: err}
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.CredentialsFile) == "" {
		return &VarError{Var: "PAPAGO_CREDENTIALS_FILE", Err: fmt.Errorf("is required")}
	}
	if strings.TrimSpace(c.LanguagesFile) == "" {
		return &VarError{Var: "PAPAGO_LANGUAGES_FILE", Err: fmt.Errorf("is required")}
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return &VarError{Var: "PAPAGO_BASE_URL", Err: fmt.Errorf("invalid (%q): %w", c.BaseURL, err)}
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return &VarError{Var: "PAPAGO_BASE_URL", Err: fmt.Errorf("invalid (%q): http(s) scheme and host required", c.BaseURL)}
	}
	return nil
}
