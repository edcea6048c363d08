package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Classifier struct {
		Provider       string `mapstructure:"provider"` // "gemini", "openai" or "heuristic"
		Model          string `mapstructure:"model"`
		GeminiApiKey   string `mapstructure:"gemini_api_key"`
		OpenaiApiKey   string `mapstructure:"openai_api_key"`
		PromptTemplate string `mapstructure:"prompt_template"` // path to an override template, optional
	} `mapstructure:"classifier"`

	Analysis struct {
		Concurrency int           `mapstructure:"concurrency"`
		ItemTimeout time.Duration `mapstructure:"item_timeout"`
	} `mapstructure:"analysis"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	// API keys are conventionally passed through the environment; bind them
	// explicitly so no prefix or naming convention is required.
	viper.BindEnv("classifier.gemini_api_key", "GEMINI_API_KEY")
	viper.BindEnv("classifier.openai_api_key", "OPENAI_API_KEY")

	viper.SetDefault("classifier.provider", "gemini")
	viper.SetDefault("classifier.model", "gemini-pro")
	viper.SetDefault("analysis.concurrency", 4)
	viper.SetDefault("analysis.item_timeout", "30s")
	viper.SetDefault("server.addr", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("worker.concurrency", 5)

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, env vars and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
