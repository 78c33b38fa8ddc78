package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const configFilePath = "config.json"

// Config holds everything the process needs: where to listen, where the
// remote storefront API lives, and where order notifications arrive.
type Config struct {
	ListenAddress string `json:"listen-address" mapstructure:"listen-address"`
	APIBaseURL    string `json:"api-base-url" mapstructure:"api-base-url"`
	// ProofBaseURL is the public host payment proof image paths resolve
	// against. Defaults to the API base URL.
	ProofBaseURL string `json:"payment-proof-base-url" mapstructure:"payment-proof-base-url"`
	WebsocketURL string `json:"websocket-url" mapstructure:"websocket-url"`
	LogLevel     string `json:"log-level" mapstructure:"log-level"`
}

var requiredFields = []string{
	"api-base-url",
	"websocket-url",
}

// field: default value
var optionalFields = map[string]interface{}{
	"listen-address": ":8080",
	"log-level":      "INFO",
}

// InitConfig reads configuration from a JSON file and environment variables.
// Environment variables take precedence over the config file, which may be
// absent entirely.
func InitConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("json")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, field := range requiredFields {
		v.BindEnv(field)
	}
	for field := range optionalFields {
		v.BindEnv(field)
	}
	v.BindEnv("payment-proof-base-url")

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(configFilePath); statErr == nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	for _, field := range requiredFields {
		if !v.IsSet(field) {
			return nil, fmt.Errorf("missing required config field: %s", field)
		}
	}

	for optField, defaultValue := range optionalFields {
		if !v.IsSet(optField) {
			v.Set(optField, defaultValue)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if config.ProofBaseURL == "" {
		config.ProofBaseURL = config.APIBaseURL
	}

	return &config, nil
}
