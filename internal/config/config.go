package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	appName   = "gitlab-client"
	envPrefix = "GITLAB_CLIENT"

	DefaultEndpoint = "https://gitlab.com"
)

func DefaultConfig() *Config {

	v := viper.New()

	setDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		log.Fatalf("error unmarshaling default config: %v", err)
	}

	return &config
}

// Load loads the configuration from the config file, the environment
// and a .env file in the working directory, in increasing precedence
// of environment over file.
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()

	setupViperConfig(v, configFile)

	config, err := readAndUnmarshalConfig(v)
	if err != nil {
		return nil, err
	}

	if err := setupLogging(config, v); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile loads the .env file if it exists
func loadEnvFile() error {
	if err := gotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("Warning: Error loading .env file: %v\n", err)
		}
	}
	return nil
}

// setupViperConfig configures viper with file paths and defaults
func setupViperConfig(v *viper.Viper, configFile string) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join("/etc", appName))

	if home, err := os.UserHomeDir(); err == nil && len(home) > 0 {
		v.AddConfigPath(filepath.Join(home, ".config", appName))
	}

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	setDefaults(v)

	// GITLAB_CLIENT_GITLAB_TOKEN overrides gitlab.token and so on
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
}

func readAndUnmarshalConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; proceed with defaults and environment variables
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setupLogging configures the logging system based on the config
func setupLogging(config *Config, v *viper.Viper) error {
	logrusLevel, err := logrus.ParseLevel(config.Logging.Level)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	logrus.SetLevel(logrusLevel)
	logrus.SetOutput(os.Stderr)

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		logrus.WithFields(logrus.Fields{
			"format": config.Logging.Format,
		}).Warn("Unknown log format")
	}

	if logrusLevel >= logrus.DebugLevel {
		for key, value := range v.AllSettings() {
			if key == "gitlab" {
				value = redact(value)
			}
			logrus.Debugf("Config '%s': %v", key, value)
		}
	}

	return nil
}

// redact hides the token when settings are dumped in debug mode.
func redact(value any) any {
	settings, ok := value.(map[string]any)
	if !ok {
		return value
	}
	out := make(map[string]any, len(settings))
	for k, v := range settings {
		if k == "token" && v != "" {
			v = "********"
		}
		out[k] = v
	}
	return out
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {

	v.SetDefault("gitlab.endpoint", DefaultEndpoint)
	v.SetDefault("gitlab.token", "")
	v.SetDefault("gitlab.token_type", "private")
	v.SetDefault("gitlab.timeout", "30s")
	v.SetDefault("gitlab.retries", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.format", OutputFormatJSON)
}
