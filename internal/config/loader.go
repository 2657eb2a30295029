// Package config loads and validates propsmith configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".propsmith"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for propsmith settings.
const envPrefix = "PROPSMITH"

// Default thresholds and scan set applied when the config file omits them.
const (
	DefaultPriorityHigh   = 10
	DefaultPriorityMedium = 3
	DefaultReportsDir     = ".propsmith-reports"
)

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("components", []string{})
	viperCfg.SetDefault("modules", []string{})
	viperCfg.SetDefault("include", []string{})
	viperCfg.SetDefault("exclude", []string{})
	viperCfg.SetDefault("update_existing", false)
	viperCfg.SetDefault("extensions", []string{".jsx", ".tsx"})
	viperCfg.SetDefault("priority.high", DefaultPriorityHigh)
	viperCfg.SetDefault("priority.medium", DefaultPriorityMedium)
	viperCfg.SetDefault("reports_dir", DefaultReportsDir)
}
