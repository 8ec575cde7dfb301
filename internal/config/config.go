package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageBackendFile  = "file"
	StorageBackendRedis = "redis"
)

type Config struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`

	// set from the env flag, not from the config file
	Environment string `toml:"-"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// persistence
	StorageBackend string `toml:"storage_backend"` // file | redis
	DataDirPath    string `toml:"data_dir_path"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	// namespaces under which the two collections are persisted
	WorkoutLogsNamespace string `toml:"workout_logs_namespace"`
	PlansNamespace       string `toml:"plans_namespace"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendFile:
		if c.DataDirPath == "" {
			return fmt.Errorf("storage backend [%s] requires data_dir_path", c.StorageBackend)
		}
	case StorageBackendRedis:
		if c.RedisHost == "" || c.RedisPort == "" {
			return fmt.Errorf("storage backend [%s] requires redis_host and redis_port", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
	if c.WorkoutLogsNamespace == "" || c.PlansNamespace == "" {
		return fmt.Errorf("workout_logs_namespace and plans_namespace must be set")
	}
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found in %s", env, path)
	}

	cfg.Environment = env

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
