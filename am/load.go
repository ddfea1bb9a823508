package am

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/teranos/jobs/errors"
)

// Config file name searched at every level of the cascade
const ConfigFileName = "am.toml"

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the jobs configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// GetViper returns the shared Viper instance. Commands set flag values on it
// before calling LoadWithViper.
func GetViper() *viper.Viper {
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path on top of the defaults
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	return LoadWithViper(v)
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("JOBS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// ConfigPaths returns the config files checked, lowest precedence first.
// The project entry is omitted when no am.toml is found walking up.
func ConfigPaths() []string {
	paths := []string{filepath.Join("/etc/jobs", ConfigFileName)}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".jobs", ConfigFileName))
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		paths = append(paths, projectConfig)
	}
	return paths
}

// findProjectConfig searches for am.toml by walking up the directory tree
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// mergeConfigFiles merges configuration files in precedence order
// (system < user < project); env vars and flags still win over all of them
func mergeConfigFiles(v *viper.Viper) {
	for _, configPath := range ConfigPaths() {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(configPath)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
				continue
			}
		}
	}
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return initViper().Get(key)
}
