package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	MaxConns int32
}

type AuthConfig struct {
	// TokenPrefix is prepended to a user ID to form a bearer token. The token
	// is a lookup key, not a verifiable credential.
	TokenPrefix string `validate:"required"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TOKEN_PREFIX", "fake-token-")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Auth: AuthConfig{
			TokenPrefix: viper.GetString("TOKEN_PREFIX"),
		},
	}

	if errs := ValidateStruct(config.Database); len(errs) > 0 {
		return nil, fmt.Errorf("invalid database config: %s", FormatValidationErrors(errs))
	}
	if errs := ValidateStruct(config.Auth); len(errs) > 0 {
		return nil, fmt.Errorf("invalid auth config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
