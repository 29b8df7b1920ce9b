package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ProviderConfig struct {
	URL                  string        `mapstructure:"url"`
	APIKey               string        `mapstructure:"api_key"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	Timeout              time.Duration `mapstructure:"timeout"`
}

func (config ProviderConfig) validate() error {
	var errs []error

	if config.URL == "" {
		errs = append(errs, fmt.Errorf("missing variable: url"))
	}
	if config.MaxRequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("max_requests_per_second must not be negative"))
	}
	if config.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (config ProviderConfig) setDefaults() {
	viper.SetDefault("provider.url", "http://localhost:8000")
	viper.SetDefault("provider.timeout", 2*time.Minute)
}

func (config ProviderConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("provider.url", "JOBSPY_URL"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("provider.api_key", "JOBSPY_API_KEY"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
