// config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	API     APIConfiguration
	Session SessionConfiguration
	Log     LogConfiguration
}

// APIConfiguration stores connection settings for the billing backend
type APIConfiguration struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfiguration stores where the login session is persisted
type SessionConfiguration struct {
	File string
}

// LogConfiguration stores log output settings
type LogConfiguration struct {
	Dir string
}

var config *Configuration

// InitConfig loads jupiterctl.yaml from the working directory or
// ~/.jupiterctl, with JUPITERCTL_* environment overrides.
func InitConfig() error {
	viper.SetConfigName("jupiterctl")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".jupiterctl"))
	}

	viper.SetEnvPrefix("jupiterctl")
	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("api.baseurl", "http://localhost:8000")
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("session.file", defaultSessionFile())
	viper.SetDefault("log.dir", defaultLogDir())

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	config = &Configuration{}
	if err := viper.Unmarshal(config); err != nil {
		return err
	}

	return nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jupiterctl-session.toml"
	}
	return filepath.Join(home, ".jupiterctl", "session.toml")
}

func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "logs"
	}
	return filepath.Join(home, ".jupiterctl", "logs")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}
