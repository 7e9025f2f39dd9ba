package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// DefaultSessionCost is applied when a config file does not set one.
const DefaultSessionCost = 25

// Config represents the application configuration.
type Config struct {
	// DatabaseURL may be left empty and supplied via the DATABASE_URL
	// environment variable instead; connecting without either fails
	// with a configuration-missing error before any network attempt.
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// DefaultSessionCost is the fallback cost for sessions whose cost
	// is unset or zero.
	DefaultSessionCost float64 `yaml:"defaultSessionCost,omitempty" validate:"omitempty,gt=0"`

	// ClosureRules are RRULE strings (e.g. public holidays) excluded
	// from the admin schedule. Syntax is validated at load time.
	ClosureRules []string `yaml:"closureRules,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates treinos_config.<env>.yaml, looking in
// the current directory first, then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultSessionCost == 0 {
		cfg.DefaultSessionCost = DefaultSessionCost
	}
	return &cfg, nil
}

// Validate validates the configuration struct and checks closure rule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.ClosureRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for treinos_config.<env>.yaml in the current
// directory and the home directory.
func findConfigFile(env string) (string, error) {
	configFileName := fmt.Sprintf("treinos_config.%s.yaml", env)

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
