package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	ExerciseDB ExerciseDBConfig `mapstructure:"exercisedb"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
}

type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // "dev" or "prod"
}

// ExerciseDBConfig configures the outbound catalog client. The API key is
// the RapidAPI credential; without it every catalog call fails.
type ExerciseDBConfig struct {
	Host      string `mapstructure:"host"`
	APIKey    string `mapstructure:"api_key"`
	PageLimit int    `mapstructure:"page_limit"`
}

// AnthropicConfig configures the plan generator.
type AnthropicConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing config file is fine; credentials usually arrive via env
// (EXERCISEDB_API_KEY, ANTHROPIC_API_KEY).
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars, e.g. exercisedb.api_key -> EXERCISEDB_API_KEY
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("server.cors_origins", []string{
		"http://localhost:5173",
		"http://localhost:3000",
		"http://127.0.0.1:5173",
	})
	viper.SetDefault("log.mode", "dev")
	viper.SetDefault("exercisedb.host", "exercise-db-with-videos-and-images-by-ascendapi.p.rapidapi.com")
	viper.SetDefault("exercisedb.page_limit", 200)
	viper.SetDefault("anthropic.model", "claude-sonnet-4-20250514")
	viper.SetDefault("anthropic.max_tokens", 2048)

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; rely on defaults and env vars.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
