package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Quartz specifics
	Gemini     GeminiConfig
	GoldenTime GoldenTimeConfig
	CORS       CORSConfig
	Rate       RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GeminiConfig struct {
	APIKey   string
	Model    string
	Timezone string // IANA timezone for relative due dates
}

type GoldenTimeConfig struct {
	Minutes int // default focus session length
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/quartz/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/quartz/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timezone = viper.GetString("gemini.timezone")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Golden time
	cfg.GoldenTime.Minutes = viper.GetInt("golden_time.minutes")

	// CORS: comma-separated so a plain env var works too
	if raw := viper.GetString("cors.allowed_origins"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
	}

	// Rate limit
	cfg.Rate.RPS = viper.GetFloat64("rate_limit.rps")
	cfg.Rate.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.timezone", "UTC")
	viper.SetDefault("golden_time.minutes", 25)
	viper.SetDefault("rate_limit.rps", 20)
	viper.SetDefault("rate_limit.burst", 40)
}
