// Package config loads homebills settings from a YAML file and HOMEBILLS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server  ServerConfig  `validate:"required"`
	Storage StorageConfig `validate:"required"`
	Logging LoggingConfig `validate:"required"`
}

type ServerConfig struct {
	Address string `mapstructure:"address" validate:"required"`
}

type StorageConfig struct {
	// Backend selects the registry implementation. Both keep data in memory only.
	Backend string `mapstructure:"backend" validate:"required,oneof=memory sqlite"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// Load reads homebills.yaml from the usual paths, if present, applies
// environment overrides (HOMEBILLS_SERVER_ADDRESS, ...) and validates.
func Load() (*Configuration, error) {
	return load(viper.New(), true)
}

// LoadFile reads the configuration from an explicit file path.
func LoadFile(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v, false)
}

func load(v *viper.Viper, search bool) (*Configuration, error) {
	setDefaults(v)

	if search {
		v.SetConfigName("homebills")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/homebills")
	}

	v.SetEnvPrefix("HOMEBILLS")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !search || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	d := GetDefaultConfig()
	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("storage.backend", d.Storage.Backend)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// GetDefaultConfig returns the configuration used when nothing is set.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Storage: StorageConfig{Backend: "memory"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}
