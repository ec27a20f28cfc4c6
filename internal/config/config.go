package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/Penny-Liu/parttime/pkg/core/model"
)

// Config represents the application configuration
type Config struct {
	// EndpointURL is the Apps Script web app backing the roster sheet.
	EndpointURL string `yaml:"endpointURL" validate:"required,url"`

	// DefaultWorkerName fills calendar cells with no assigned worker on the
	// printed table.
	DefaultWorkerName string `yaml:"defaultWorkerName,omitempty"`

	// Duty hours shown on the print table. Holiday hours also apply to
	// Sundays.
	WeekdayHours string `yaml:"weekdayHours,omitempty"`
	HolidayHours string `yaml:"holidayHours,omitempty"`

	// RecurringClosures are RRULE strings for days the clinic is always
	// closed (e.g. FREQ=WEEKLY;BYDAY=SA). They render like holidays.
	RecurringClosures []string `yaml:"recurringClosures,omitempty"`
}

const (
	defaultWorkerName  = "放射師"
	defaultWeekdayTime = "10:00-18:00"
	defaultHolidayTime = "10:00-17:00"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration for the given environment, looking for
// parttime_config.<env>.yaml first and falling back to parttime_config.yaml.
func LoadWithEnv(env string) (*Config, error) {
	names := []string{"parttime_config.yaml"}
	if env != "" {
		names = append([]string{fmt.Sprintf("parttime_config.%s.yaml", env)}, names...)
	}

	configPath, err := findConfigFile(names)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.DefaultWorkerName == "" {
		cfg.DefaultWorkerName = defaultWorkerName
	}
	if cfg.WeekdayHours == "" {
		cfg.WeekdayHours = defaultWeekdayTime
	}
	if cfg.HolidayHours == "" {
		cfg.HolidayHours = defaultHolidayTime
	}
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, closure := range cfg.RecurringClosures {
		if _, err := rrule.StrToRRule(closure); err != nil {
			return fmt.Errorf("invalid rrule in recurringClosures[%d]: %w", i, err)
		}
	}

	return nil
}

// ClosureDates expands the recurring closure rules over [from, to] and
// returns the matching canonical date keys.
func (c *Config) ClosureDates(from, to time.Time) (map[string]bool, error) {
	dates := make(map[string]bool)
	for i, closure := range c.RecurringClosures {
		rule, err := rrule.StrToRRule(closure)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in recurringClosures[%d]: %w", i, err)
		}
		rule.DTStart(from)
		for _, t := range rule.Between(from, to, true) {
			dates[t.Format(model.DateLayout)] = true
		}
	}
	return dates, nil
}

// findConfigFile searches for the config file in the current directory and
// the user's home directory.
func findConfigFile(names []string) (string, error) {
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	for _, name := range names {
		homeConfigPath := filepath.Join(homeDir, name)
		if _, err := os.Stat(homeConfigPath); err == nil {
			return homeConfigPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
