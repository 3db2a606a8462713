package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Cache   CacheConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Dataset.ensureSources(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ORDERLENS_APP_ENV" required:"true"`
	Port         string `envconfig:"ORDERLENS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ORDERLENS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ORDERLENS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DatasetConfig struct {
	// Path and URL are tried in order; at least one is required.
	Path        string        `envconfig:"ORDERLENS_DATASET_PATH"`
	URL         string        `envconfig:"ORDERLENS_DATASET_URL"`
	HTTPTimeout time.Duration `envconfig:"ORDERLENS_DATASET_HTTP_TIMEOUT" default:"30s"`
}

// Sources returns the configured snapshot sources in priority order.
func (d DatasetConfig) Sources() []string {
	sources := []string{}
	if d.Path != "" {
		sources = append(sources, d.Path)
	}
	if d.URL != "" {
		sources = append(sources, d.URL)
	}
	return sources
}

func (d *DatasetConfig) ensureSources() error {
	if d.Path == "" && d.URL == "" {
		return fmt.Errorf("either %s or %s is required", EnvDatasetPath, EnvDatasetURL)
	}
	return nil
}

type CacheConfig struct {
	Enabled bool          `envconfig:"ORDERLENS_SNAPSHOT_CACHE_ENABLED" default:"false"`
	TTL     time.Duration `envconfig:"ORDERLENS_SNAPSHOT_CACHE_TTL" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ORDERLENS_REDIS_URL"`
	Address      string        `envconfig:"ORDERLENS_REDIS_ADDR"`
	Password     string        `envconfig:"ORDERLENS_REDIS_PASSWORD"`
	DB           int           `envconfig:"ORDERLENS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ORDERLENS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ORDERLENS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ORDERLENS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ORDERLENS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ORDERLENS_REDIS_WRITE_TIMEOUT" default:"5s"`
}
