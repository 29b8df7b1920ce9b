package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	ScrapeCron  string `mapstructure:"scrape_cron"`
	CleanupCron string `mapstructure:"cleanup_cron"`
	MetricsAddr string `mapstructure:"metrics_addr"`
	// ScrapeConfig is the JSON run configuration used for scheduled runs; empty means defaults.
	ScrapeConfig string `mapstructure:"scrape_config"`
}

func (config SchedulerConfig) validate() error {
	var errs []error

	if config.ScrapeCron == "" {
		errs = append(errs, fmt.Errorf("missing variable: scrape_cron"))
	}
	if config.CleanupCron == "" {
		errs = append(errs, fmt.Errorf("missing variable: cleanup_cron"))
	}

	return errors.Join(errs...)
}

func (config SchedulerConfig) setDefaults() {
	viper.SetDefault("scheduler.scrape_cron", "0 */6 * * *")
	viper.SetDefault("scheduler.cleanup_cron", "30 3 * * *")
	viper.SetDefault("scheduler.metrics_addr", ":8080")
}

func (config SchedulerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("scheduler.scrape_cron", "SCRAPE_CRON"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("scheduler.scrape_config", "SCRAPE_CONFIG"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
