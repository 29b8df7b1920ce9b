package config

import (
	"errors"

	"github.com/spf13/viper"
)

// AIConfig enables category refinement for postings the keyword rules leave uncategorized.
type AIConfig struct {
	Key                  string  `mapstructure:"key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day"`
}

func (config AIConfig) Enabled() bool {
	return config.Key != ""
}

func (config AIConfig) validate() error {
	if !config.Enabled() {
		return nil
	}

	var errs []error
	if config.Model == "" {
		errs = append(errs, errors.New("missing variable: model"))
	}
	if config.MaxRequestsPerMinute <= 0 || config.MaxRequestsPerDay <= 0 {
		errs = append(errs, errors.New("request limits must be positive"))
	}
	return errors.Join(errs...)
}

func (config AIConfig) setDefaults() {
	viper.SetDefault("ai.model", "gemini-1.5-flash")
	viper.SetDefault("ai.max_requests_per_minute", 15)
	viper.SetDefault("ai.max_requests_per_day", 1500)
}

func (config AIConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("ai.key", "AI_KEY"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("ai.model", "AI_MODEL"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
