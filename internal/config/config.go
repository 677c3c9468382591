package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

type StorageConfig struct {
	DatabasePath   string `mapstructure:"database_path" validate:"required"`
	CacheDirectory string `mapstructure:"cache_directory" validate:"required"`
}

type ProvidersConfig struct {
	Dictionary  DictionaryAPIConfig  `mapstructure:"dictionary"`
	Translation TranslationAPIConfig `mapstructure:"translation"`
	Datamuse    DatamuseConfig       `mapstructure:"datamuse"`
}

type DictionaryAPIConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type TranslationAPIConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Email   string `mapstructure:"email" validate:"omitempty,email"`
}

type DatamuseConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	Enabled bool   `mapstructure:"enabled"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/hanlexi")
	}

	v.SetDefault("storage.database_path", filepath.Join("data", "hanlexi.db"))
	v.SetDefault("storage.cache_directory", filepath.Join("data", "definitions"))
	v.SetDefault("providers.dictionary.base_url", "https://api.dictionaryapi.dev/api/v2")
	v.SetDefault("providers.dictionary.retry_attempts", 2)
	v.SetDefault("providers.translation.base_url", "https://api.mymemory.translated.net")
	v.SetDefault("providers.datamuse.base_url", "https://api.datamuse.com")
	v.SetDefault("providers.datamuse.enabled", true)

	// The contact email raises the translation API quota; keep it out of
	// checked-in config files.
	if err := v.BindEnv("providers.translation.email", "MYMEMORY_EMAIL"); err != nil {
		return nil, fmt.Errorf("failed to bind MYMEMORY_EMAIL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
