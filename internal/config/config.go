package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	DB        DBConfig        `mapstructure:"db"`
	Provider  ProviderConfig  `mapstructure:"provider"`
	Scraper   ScraperConfig   `mapstructure:"scraper"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Notifier  NotifierConfig  `mapstructure:"notifier"`
	AI        AIConfig        `mapstructure:"ai"`
}

const defaultConfigFile = "./configs/config.yaml"

type section interface {
	bindEnvironmentVariables() error
}

type defaulted interface {
	setDefaults()
}

// Get loads the configuration and exits the process when it is invalid.
func Get() *Config {
	config, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return config
}

// Load reads CONFIG_PATH (or ./configs/config.yaml) when present and applies environment overrides.
func Load() (*Config, error) {
	if value := os.Getenv("CONFIG_PATH"); value != "" {
		return loadConfig(value, true)
	}
	return loadConfig(defaultConfigFile, false)
}

func loadConfig(file string, required bool) (*Config, error) {

	viper.Reset()
	viper.AutomaticEnv()

	sections := sectionsOf(&Config{})
	for _, s := range sections {
		if d, ok := s.(defaulted); ok {
			d.setDefaults()
		}
	}

	if err := bindEnvironmentVariables(sections); err != nil {
		return nil, err
	}

	if _, err := os.Stat(file); err == nil {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", file, err)
		}
	} else if required {
		return nil, fmt.Errorf("config file %s: %w", file, err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func sectionsOf(config *Config) map[string]section {
	return map[string]section{
		"LoggerConfig":    config.Logger,
		"DBConfig":        config.DB,
		"ProviderConfig":  config.Provider,
		"ScraperConfig":   config.Scraper,
		"SchedulerConfig": config.Scheduler,
		"NotifierConfig":  config.Notifier,
		"AIConfig":        config.AI,
	}
}

func bindEnvironmentVariables(sections map[string]section) error {
	var errs []error

	for name, s := range sections {
		if err := s.bindEnvironmentVariables(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.Provider.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ProviderConfig: %w", err))
	}

	if err := config.Scraper.validate(); err != nil {
		errs = append(errs, fmt.Errorf("ScraperConfig: %w", err))
	}

	if err := config.Scheduler.validate(); err != nil {
		errs = append(errs, fmt.Errorf("SchedulerConfig: %w", err))
	}

	if err := config.Notifier.validate(); err != nil {
		errs = append(errs, fmt.Errorf("NotifierConfig: %w", err))
	}

	if err := config.AI.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
