package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
}

func (config DBConfig) validate() error {
	if config.ConnectionString == "" {
		return fmt.Errorf("missing variable: DATABASE_URL")
	}
	return nil
}

// DATABASE_URL takes precedence over DB_CONNECTION_STRING.
func (config DBConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("db.connection_string", "DATABASE_URL", "DB_CONNECTION_STRING")
}
