package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Coach     CoachConfig     `mapstructure:"coach"`
	Assistant AssistantConfig `mapstructure:"assistant"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// CoachConfig tunes the program generator and substitution engine.
type CoachConfig struct {
	// Weeks is the generated program length.
	Weeks int `mapstructure:"weeks"`
	// SubstitutionHistory bounds the per-slot memory of recent
	// substitutions before old entries become eligible again.
	SubstitutionHistory int `mapstructure:"substitution_history"`
}

// AssistantConfig configures the optional plan-edit assistant. An empty
// APIKey disables the assistant entirely; everything else keeps working.
type AssistantConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override file values, e.g.
	// database.uri -> DATABASE_URI, assistant.api_key -> ASSISTANT_API_KEY.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fitness_coach")
	viper.SetDefault("coach.weeks", 4)
	viper.SetDefault("coach.substitution_history", 3)
	viper.SetDefault("assistant.model", "gemini-1.5-flash")

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry the app.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
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
