package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Things      ThingsConfig
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

// ThingsConfig configures the scripting bridge and the URL-scheme
// channel.
type ThingsConfig struct {
	// AuthToken is the Things URL-scheme authorization token. Required
	// only for the checklist tools; Things > Settings > General >
	// Enable Things URLs > Manage.
	AuthToken string

	// Timezone is the IANA timezone used to resolve relative dates.
	Timezone string

	// RateLimitPerMin caps tool calls per client per minute.
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Things.AuthToken = viper.GetString("things.auth_token")
	cfg.Things.Timezone = viper.GetString("things.timezone")
	cfg.Things.RateLimitPerMin = viper.GetInt("things.rate_limit_per_min")

	// Flat env overrides for container/launchd deployments.
	if token := viper.GetString("things_auth_token"); token != "" {
		cfg.Things.AuthToken = token
	}
	if tz := viper.GetString("things_timezone"); tz != "" {
		cfg.Things.Timezone = tz
	}

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
	viper.SetDefault("things.timezone", "UTC")
	viper.SetDefault("things.rate_limit_per_min", 600)
}
