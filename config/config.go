package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task list specifics
	Storage      StorageConfig
	Session      SessionConfig
	Notification NotificationConfig
	Locale       LocaleConfig
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
	Output       []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// StorageConfig selects the durable slot backend: memory, file, sqlite or mysql.
type StorageConfig struct {
	Driver string
	Path   string
	DSN    string
	Key    string
}

type SessionConfig struct {
	CookieName string
	MaxEntries int
	TTL        time.Duration
}

type NotificationConfig struct {
	Duration time.Duration
}

type LocaleConfig struct {
	Timezone string
}

var storageDrivers = map[string]bool{"memory": true, "file": true, "sqlite": true, "mysql": true}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the default locations.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/app/")
	}

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
	cfg.Logger.Output = splitList(viper.GetString("logger.output"))
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Path = viper.GetString("storage.path")
	cfg.Storage.DSN = expandEnvVar(viper.GetString("storage.dsn"))
	cfg.Storage.Key = viper.GetString("storage.key")

	// Sessions & notifications
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Notification.Duration = viper.GetDuration("notification.duration")

	cfg.Locale.Timezone = viper.GetString("locale.timezone")

	if err := validate(cfg); err != nil {
		return nil, err
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
	viper.SetDefault("logger.output", "stdout")
	viper.SetDefault("rate_limit.requests_per_min", 600)

	viper.SetDefault("storage.driver", "file")
	viper.SetDefault("storage.path", "./data")
	viper.SetDefault("storage.key", "tasks")

	viper.SetDefault("session.cookie_name", "task_session")
	viper.SetDefault("session.max_entries", 1000)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("notification.duration", "3s")
}

func validate(cfg *Config) error {
	if !storageDrivers[cfg.Storage.Driver] {
		return fmt.Errorf("storage.driver %q must be one of memory, file, sqlite, mysql", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == "mysql" && cfg.Storage.DSN == "" {
		return fmt.Errorf("storage.dsn is required for the mysql driver")
	}
	if cfg.Storage.Key == "" {
		return fmt.Errorf("storage.key is required")
	}
	if cfg.Notification.Duration <= 0 {
		return fmt.Errorf("notification.duration must be positive")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList splits a comma separated value since viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
