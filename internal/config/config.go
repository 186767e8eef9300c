// Package config loads service configuration from a YAML file with
// .env file support and environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName    = "medcoder"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultInvokeTimeout  = 3 * time.Second
	defaultInvokeRPS      = 10
	defaultTopKPerType    = 5
	defaultRegion         = "us-west-2"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Config holds all configuration for the prediction service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Endpoint EndpointConfig `yaml:"endpoint"`
	Cache    CacheConfig    `yaml:"cache"`
	Codes    CodesConfig    `yaml:"codes"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"MEDCODER_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"     yaml:"debug"`
}

// EndpointConfig describes the remote inference endpoint. An empty URL and
// empty Name mean "not configured", which is a first-class state: the
// service then always answers from the local predictor.
type EndpointConfig struct {
	// URL is the full invocations URL. Takes precedence over Name/Region.
	URL string `env:"ENDPOINT_URL" yaml:"url"`
	// Name and Region identify a SageMaker-style endpoint; when URL is
	// empty the invocations URL is derived from them.
	Name    string        `env:"ENDPOINT_NAME" yaml:"name"`
	Region  string        `env:"AWS_REGION"    yaml:"region"`
	Timeout time.Duration `env:"ENDPOINT_TIMEOUT" yaml:"timeout"`
	// InvokesPerSecond bounds outbound invocations; 0 uses the default.
	InvokesPerSecond int `yaml:"invokes_per_second"`
}

// CacheConfig holds prediction cache settings.
type CacheConfig struct {
	// TTL of cache entries. Zero means entries never expire.
	TTL time.Duration `env:"CACHE_TTL" yaml:"ttl"`
}

// CodesConfig holds knowledge-base settings.
type CodesConfig struct {
	// TopKPerType limits candidates per code type in a result.
	TopKPerType int `yaml:"top_k_per_type"`
}

// DatabaseConfig describes the optional code catalog store. An empty DSN
// disables the store and the built-in candidate tables are used.
type DatabaseConfig struct {
	Driver string `env:"CATALOG_DRIVER" yaml:"driver"` // "sqlite3" or "postgres"
	DSN    string `env:"CATALOG_DSN"    yaml:"dsn"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// setDefaults applies default values to unset fields.
func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Endpoint.Region == "" {
		cfg.Endpoint.Region = defaultRegion
	}
	if cfg.Endpoint.Timeout == 0 {
		cfg.Endpoint.Timeout = defaultInvokeTimeout
	}
	if cfg.Endpoint.InvokesPerSecond == 0 {
		cfg.Endpoint.InvokesPerSecond = defaultInvokeRPS
	}
	if cfg.Codes.TopKPerType == 0 {
		cfg.Codes.TopKPerType = defaultTopKPerType
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite3"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}
