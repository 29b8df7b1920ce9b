package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ScraperConfig struct {
	MaxAttempts       int           `mapstructure:"max_attempts"`
	JitterMin         time.Duration `mapstructure:"jitter_min"`
	JitterMax         time.Duration `mapstructure:"jitter_max"`
	BaseDelay         time.Duration `mapstructure:"base_delay"`
	RateLimitDelay    time.Duration `mapstructure:"rate_limit_delay"`
	HoursOld          int           `mapstructure:"hours_old"`
	RetentionDays     int           `mapstructure:"retention_days"`
	DefaultCountry    string        `mapstructure:"default_country"`
	DefaultResults    int           `mapstructure:"default_results"`
	DescriptionFormat string        `mapstructure:"description_format"`
}

func (config ScraperConfig) validate() error {
	var errs []error

	if config.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max_attempts must be at least 1"))
	}
	if config.JitterMin < 0 || config.JitterMax < config.JitterMin {
		errs = append(errs, fmt.Errorf("jitter range is invalid: %v..%v", config.JitterMin, config.JitterMax))
	}
	if config.BaseDelay < 0 || config.RateLimitDelay < 0 {
		errs = append(errs, fmt.Errorf("delays must not be negative"))
	}
	if config.RetentionDays < 1 {
		errs = append(errs, fmt.Errorf("retention_days must be at least 1"))
	}
	if config.DefaultResults < 1 {
		errs = append(errs, fmt.Errorf("default_results must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (config ScraperConfig) setDefaults() {
	viper.SetDefault("scraper.max_attempts", 3)
	viper.SetDefault("scraper.jitter_min", 2*time.Second)
	viper.SetDefault("scraper.jitter_max", 5*time.Second)
	viper.SetDefault("scraper.base_delay", 5*time.Second)
	viper.SetDefault("scraper.rate_limit_delay", 10*time.Second)
	viper.SetDefault("scraper.hours_old", 168)
	viper.SetDefault("scraper.retention_days", 30)
	viper.SetDefault("scraper.default_country", "USA")
	viper.SetDefault("scraper.default_results", 20)
	viper.SetDefault("scraper.description_format", "html")
}

func (config ScraperConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("scraper.retention_days", "JOB_RETENTION_DAYS")
}
