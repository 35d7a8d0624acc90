package server

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/aggregates"
)

const configFilePath = "config.json"

// Config represents the dashboard service configuration.
type Config struct {
	Address     string `json:"address" mapstructure:"address"`
	DataPath    string `json:"data-path" mapstructure:"data-path"`
	LogLevel    string `json:"log-level" mapstructure:"log-level"`
	DefaultTopN int    `json:"default-top-n" mapstructure:"default-top-n"`
}

var requiredFields = []string{
	"address",
	"data-path",
}

// field: default value
var optionalFields = map[string]interface{}{
	"log-level":     "INFO",
	"default-top-n": aggregates.DefaultTopN,
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file.
func InitConfig() (*Config, error) {
	v := viper.New()

	// Set config file type and name
	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for optField, defaultValue := range optionalFields {
		v.SetDefault(optField, defaultValue)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	return &config, nil
}
