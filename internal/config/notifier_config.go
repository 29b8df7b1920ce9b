package config

import (
	"errors"

	"github.com/spf13/viper"
)

// NotifierConfig is optional: without a token no summaries are sent.
type NotifierConfig struct {
	Token  string `mapstructure:"token"`
	ChatID int64  `mapstructure:"chat_id"`
}

func (config NotifierConfig) Enabled() bool {
	return config.Token != "" && config.ChatID != 0
}

func (config NotifierConfig) validate() error {
	if config.Token != "" && config.ChatID == 0 {
		return errors.New("chat_id is required when token is set")
	}
	return nil
}

func (config NotifierConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("notifier.token", "TG_TOKEN"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("notifier.chat_id", "TG_CHAT_ID"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
